// internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"pklku_backend/internals/configs"
	"pklku_backend/internals/constants"
	authDTO "pklku_backend/internals/features/users/auth/dto"
	authModel "pklku_backend/internals/features/users/auth/model"
	helper "pklku_backend/internals/helpers"
)

var validate = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "23505") || strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

// Akun Google tidak punya password lokal; isi hash acak supaya kolom
// NOT NULL terpenuhi dan login password selalu gagal.
func generateDummyPassword() string {
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	h, _ := HashPassword(hex.EncodeToString(b))
	return h
}

func setAccessCookie(c *fiber.Ctx, accessToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTokenTTL),
	})
}

/* ==========================
   REGISTER
========================== */

// Registrasi self-service selalu menghasilkan akun mahasiswa; akun dosen
// dibuat koordinator lewat masterdata.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		UserName: input.UserName,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: hash,
		Role:     constants.RoleMahasiswa,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	var user authModel.UserModel
	if err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(input.Email))).Error; err != nil {
		// pesan sengaja generik
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi koordinator PKL.")
	}

	return issueToken(c, db, &user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginGoogleRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user authModel.UserModel
	err = db.First(&user, "google_id = ?", googleID).Error
	if err != nil {
		// User belum ada -> buat baru (role default mahasiswa)
		user = authModel.UserModel{
			UserName: name,
			Email:    strings.ToLower(email),
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			Role:     constants.RoleMahasiswa,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar dengan metode login lain")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
	}

	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi koordinator PKL.")
	}

	return issueToken(c, db, &user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// raw_token diisi auth middleware; fallback ke cookie untuk logout
	// tanpa header (idempotent)
	accessToken, _ := c.Locals("raw_token").(string)
	if accessToken == "" {
		accessToken = strings.TrimSpace(c.Cookies("access_token"))
	}

	if accessToken != "" {
		if err := db.Create(&authModel.TokenBlacklistModel{
			Token:     accessToken,
			ExpiredAt: resolveBlacklistTTL(accessToken),
		}).Error; err != nil && !isUniqueViolation(err) {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout tanpa access token; lanjut clear cookie (idempotent)")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  nowUTC().Add(-time.Hour),
	})

	return helper.Success(c, "Logout berhasil", nil)
}

// resolveBlacklistTTL mengambil exp dari token supaya baris blacklist
// bisa dibersihkan setelah token memang kedaluwarsa.
func resolveBlacklistTTL(tokenString string) time.Time {
	fallback := nowUTC().Add(accessTokenTTL)

	parser := jwt.Parser{SkipClaimsValidation: true}
	tok, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return fallback
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return fallback
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0).UTC()
	}
	return fallback
}

/* ==========================
   Shared
========================== */

func issueToken(c *fiber.Ctx, db *gorm.DB, user *authModel.UserModel) error {
	access, err := GenerateAccessToken(db, user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	setAccessCookie(c, access, nowUTC())

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}
