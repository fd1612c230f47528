package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "pklku_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validasi role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// IsKoordinator menolak dosen biasa; dipasang setelah AuthMiddleware.
func IsKoordinator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		a := helper.GetActor(c)
		if a.Kind != helper.ActorDosen || !a.IsKoordinator {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "❌ Hanya koordinator PKL yang boleh mengakses fitur ini.",
			})
		}
		return c.Next()
	}
}
