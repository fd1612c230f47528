// internals/features/users/auth/service/password_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDTO "pklku_backend/internals/features/users/auth/dto"
	authModel "pklku_backend/internals/features/users/auth/model"
	helper "pklku_backend/internals/helpers"
)

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	// Ambil user_id dari Locals dengan aman
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var user authModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	newHash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := db.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", newHash).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.Success(c, "Password berhasil diubah", nil)
}
