// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pklku_backend/internals/features/users/auth/controller"
	rateLimiter "pklku_backend/internals/middlewares"
)

// Endpoint publik: login/register (dengan rate limiter khusus).
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	r.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	r.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	r.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
}

// Endpoint yang butuh token valid (dipasang setelah auth middleware).
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	r.Get("/me", authController.Me)
	r.Post("/logout", authController.Logout)
	r.Post("/change-password", authController.ChangePassword)
}
