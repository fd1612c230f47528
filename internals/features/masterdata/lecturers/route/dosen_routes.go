// file: internals/features/masterdata/lecturers/route/dosen_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dosenCtrl "pklku_backend/internals/features/masterdata/lecturers/controller"
)

// Rute koordinator PKL (prefix /api/k)
func DosenKoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := dosenCtrl.NewDosenController(db)

	g := r.Group("/dosen")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
