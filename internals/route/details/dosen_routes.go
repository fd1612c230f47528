// file: internals/route/details/dosen_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	MahasiswaRoutesPkg "pklku_backend/internals/features/masterdata/students/route"
	BimbinganRoutes "pklku_backend/internals/features/pkl/guidance/route"
	LogbookRoutes "pklku_backend/internals/features/pkl/logbook/route"
	SeminarRoutes "pklku_backend/internals/features/pkl/seminars/route"
)

// Portal dosen: mahasiswa bimbingan, review logbook, validasi
// bimbingan, penilaian seminar.
func DosenRoutes(r fiber.Router, db *gorm.DB) {
	MahasiswaRoutesPkg.MahasiswaDosenRoutes(r, db)
	LogbookRoutes.LogbookDosenRoutes(r, db)
	BimbinganRoutes.BimbinganDosenRoutes(r, db)
	SeminarRoutes.SeminarDosenRoutes(r, db)
}
