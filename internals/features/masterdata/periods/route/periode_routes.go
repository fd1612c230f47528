// file: internals/features/masterdata/periods/route/periode_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodeCtrl "pklku_backend/internals/features/masterdata/periods/controller"
)

// Rute koordinator PKL (prefix /api/k)
func PeriodeKoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := periodeCtrl.NewPeriodeController(db)

	g := r.Group("/periode")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}

// Daftar periode untuk dropdown pendaftaran mahasiswa (prefix /api/m)
func PeriodeMahasiswaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := periodeCtrl.NewPeriodeController(db)
	r.Get("/periode", ctl.List)
}
