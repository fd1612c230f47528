// file: internals/features/pkl/guidance/route/bimbingan_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bimbinganCtrl "pklku_backend/internals/features/pkl/guidance/controller"
)

// Rute mahasiswa (prefix /api/m)
func BimbinganMahasiswaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bimbinganCtrl.NewBimbinganController(db)

	g := r.Group("/bimbingan")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.ListMine)
}

// Rute dosen pembimbing (prefix /api/d)
func BimbinganDosenRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bimbinganCtrl.NewBimbinganController(db)

	g := r.Group("/bimbingan")
	g.Get("/", ctl.ListForDosen)
	g.Post("/:id/validate", ctl.ValidateSession)
}
