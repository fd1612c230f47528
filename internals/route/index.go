// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pklku_backend/internals/constants"
	authMiddleware "pklku_backend/internals/middlewares/auth"
	details "pklku_backend/internals/route/details"
)

// SetupRoutes memasang seluruh rute aplikasi.
//
//	/api/auth — publik + akun (login, register, me)
//	/api/m    — mahasiswa
//	/api/d    — dosen (pembimbing/penguji)
//	/api/k    — dosen dengan flag koordinator PKL
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===== AUTH =====
	auth := api.Group("/auth")
	details.AuthPublic(auth, db)
	auth.Use(authMiddleware.AuthMiddleware(db))
	details.AuthProtected(auth, db)

	// ===== MAHASISWA =====
	m := api.Group("/m",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorMahasiswa("portal mahasiswa"),
			constants.RoleMahasiswa,
		),
	)
	details.MahasiswaRoutes(m, db)

	// ===== DOSEN =====
	d := api.Group("/d",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorDosen("portal dosen"),
			constants.RoleDosen,
		),
	)
	details.DosenRoutes(d, db)

	// ===== KOORDINATOR PKL =====
	k := api.Group("/k",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorKoordinator("panel koordinator"),
			constants.RoleDosen,
		),
		authMiddleware.IsKoordinator(),
	)
	details.KoordinatorRoutes(k, db)
}
