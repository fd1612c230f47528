// file: internals/features/masterdata/partners/route/mitra_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mitraCtrl "pklku_backend/internals/features/masterdata/partners/controller"
)

// Rute koordinator PKL (prefix /api/k)
func MitraKoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mitraCtrl.NewMitraController(db)

	g := r.Group("/mitra")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}

// Mahasiswa hanya boleh lihat daftar mitra (prefix /api/m)
func MitraMahasiswaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mitraCtrl.NewMitraController(db)
	r.Get("/mitra", ctl.List)
}
