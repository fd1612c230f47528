// file: internals/route/details/mahasiswa_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	MitraRoutes "pklku_backend/internals/features/masterdata/partners/route"
	PeriodeRoutes "pklku_backend/internals/features/masterdata/periods/route"
	MahasiswaRoutesPkg "pklku_backend/internals/features/masterdata/students/route"
	PendaftaranRoutes "pklku_backend/internals/features/pkl/applications/route"
	BimbinganRoutes "pklku_backend/internals/features/pkl/guidance/route"
	LogbookRoutes "pklku_backend/internals/features/pkl/logbook/route"
	SeminarRoutes "pklku_backend/internals/features/pkl/seminars/route"
)

// Portal mahasiswa: profil, referensi mitra/periode, alur PKL lengkap
// (daftar → logbook → bimbingan → seminar).
func MahasiswaRoutes(r fiber.Router, db *gorm.DB) {
	MahasiswaRoutesPkg.MahasiswaSelfRoutes(r, db)
	MitraRoutes.MitraMahasiswaRoutes(r, db)
	PeriodeRoutes.PeriodeMahasiswaRoutes(r, db)

	PendaftaranRoutes.PendaftaranMahasiswaRoutes(r, db)
	LogbookRoutes.LogbookMahasiswaRoutes(r, db)
	BimbinganRoutes.BimbinganMahasiswaRoutes(r, db)
	SeminarRoutes.SeminarMahasiswaRoutes(r, db)
}
