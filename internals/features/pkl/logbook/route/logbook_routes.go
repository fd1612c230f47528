// file: internals/features/pkl/logbook/route/logbook_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logbookCtrl "pklku_backend/internals/features/pkl/logbook/controller"
)

// Rute mahasiswa (prefix /api/m)
func LogbookMahasiswaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := logbookCtrl.NewLogbookController(db)

	g := r.Group("/logbook")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.ListMine)
	g.Get("/export", ctl.ExportCSV)
	g.Put("/:id", ctl.Update)
	g.Post("/:id/submit", ctl.Submit)
	g.Delete("/:id", ctl.Delete)
}

// Rute dosen pembimbing (prefix /api/d)
func LogbookDosenRoutes(r fiber.Router, db *gorm.DB) {
	ctl := logbookCtrl.NewLogbookController(db)

	g := r.Group("/logbook")
	g.Get("/", ctl.ListForDosen)
	g.Post("/:id/review", ctl.Review)
}
