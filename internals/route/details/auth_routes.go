// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AuthRoutes "pklku_backend/internals/features/users/auth/route"
)

func AuthPublic(r fiber.Router, db *gorm.DB) {
	AuthRoutes.AuthPublicRoutes(r, db)
}

func AuthProtected(r fiber.Router, db *gorm.DB) {
	AuthRoutes.AuthProtectedRoutes(r, db)
}
