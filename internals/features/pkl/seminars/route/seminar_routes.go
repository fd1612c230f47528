// file: internals/features/pkl/seminars/route/seminar_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	seminarCtrl "pklku_backend/internals/features/pkl/seminars/controller"
)

// Rute mahasiswa (prefix /api/m)
func SeminarMahasiswaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := seminarCtrl.NewSeminarController(db)

	g := r.Group("/seminar")
	g.Post("/", ctl.Submit)   // ajukan / perbarui pendaftaran seminar
	g.Get("/", ctl.MySeminar) // seminar milik sendiri + nilai akhir
}

// Rute dosen pembimbing/penguji (prefix /api/d)
func SeminarDosenRoutes(r fiber.Router, db *gorm.DB) {
	ctl := seminarCtrl.NewSeminarController(db)
	asc := seminarCtrl.NewAssessmentController(db)

	g := r.Group("/seminar")
	g.Get("/", ctl.ListForDosen)
	g.Get("/:id", ctl.GetForDosen)
	g.Get("/:id/assessment", asc.Mine)
	g.Put("/:id/assessment", asc.Upsert)
}

// Rute koordinator PKL (prefix /api/k)
func SeminarKoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := seminarCtrl.NewSeminarController(db)

	g := r.Group("/seminar")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/:id/schedule", ctl.Schedule)
	g.Post("/:id/close", ctl.Close)
}
