// file: internals/route/details/koordinator_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	DosenRoutesPkg "pklku_backend/internals/features/masterdata/lecturers/route"
	MitraRoutes "pklku_backend/internals/features/masterdata/partners/route"
	PeriodeRoutes "pklku_backend/internals/features/masterdata/periods/route"
	MahasiswaRoutesPkg "pklku_backend/internals/features/masterdata/students/route"
	PendaftaranRoutes "pklku_backend/internals/features/pkl/applications/route"
	SeminarRoutes "pklku_backend/internals/features/pkl/seminars/route"
)

// Panel koordinator PKL: masterdata penuh, persetujuan pendaftaran,
// penjadwalan & penutupan seminar.
func KoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	DosenRoutesPkg.DosenKoordinatorRoutes(r, db)
	MahasiswaRoutesPkg.MahasiswaKoordinatorRoutes(r, db)
	MitraRoutes.MitraKoordinatorRoutes(r, db)
	PeriodeRoutes.PeriodeKoordinatorRoutes(r, db)

	PendaftaranRoutes.PendaftaranKoordinatorRoutes(r, db)
	SeminarRoutes.SeminarKoordinatorRoutes(r, db)
}
