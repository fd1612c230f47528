// file: internals/features/pkl/applications/route/pendaftaran_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pendaftaranCtrl "pklku_backend/internals/features/pkl/applications/controller"
)

// Rute mahasiswa (prefix /api/m)
func PendaftaranMahasiswaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pendaftaranCtrl.NewPendaftaranController(db)

	g := r.Group("/pendaftaran")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.ListMine)
}

// Rute koordinator PKL (prefix /api/k)
func PendaftaranKoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pendaftaranCtrl.NewPendaftaranController(db)

	g := r.Group("/pendaftaran")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/:id/approve", ctl.Approve)
	g.Post("/:id/reject", ctl.Reject)
}
