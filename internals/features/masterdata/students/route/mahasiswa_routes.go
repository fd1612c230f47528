// file: internals/features/masterdata/students/route/mahasiswa_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mhsCtrl "pklku_backend/internals/features/masterdata/students/controller"
)

// Rute koordinator PKL (prefix /api/k)
func MahasiswaKoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mhsCtrl.NewMahasiswaController(db)

	g := r.Group("/mahasiswa")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}

// Rute mahasiswa (prefix /api/m)
func MahasiswaSelfRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mhsCtrl.NewMahasiswaController(db)
	r.Get("/profile", ctl.MyProfile)
}

// Rute dosen pembimbing (prefix /api/d)
func MahasiswaDosenRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mhsCtrl.NewMahasiswaController(db)
	r.Get("/mahasiswa", ctl.ListBimbingan)
}
