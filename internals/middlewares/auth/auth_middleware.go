// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pklku_backend/internals/configs"
	authModel "pklku_backend/internals/features/users/auth/model"
	helper "pklku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi JWT + blacklist, lalu me-resolve Actor
// (mahasiswa/dosen + flag koordinator) sekali per request dari klaim token.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// Cek blacklist (sekali per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token ditemukan di blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			log.Println("[ERROR] actorFromClaims:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid claims")
		}

		c.Locals("user_id", actor.UserID.String())
		c.Locals("userRole", string(actor.Kind))
		c.Locals("raw_token", tokenString)
		helper.StoreActor(c, actor)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}
	// fallback cookie
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expVal.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

// actorFromClaims membaca klaim yang disusun saat login:
// user_id, role, profile_id, is_koordinator.
func actorFromClaims(claims jwt.MapClaims) (helper.Actor, error) {
	actor := helper.Actor{Kind: helper.ActorUnknown}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return actor, errors.New("invalid user_id claim")
	}
	actor.UserID = userID

	role, _ := claims["role"].(string)
	switch role {
	case "mahasiswa":
		actor.Kind = helper.ActorMahasiswa
	case "dosen":
		actor.Kind = helper.ActorDosen
	default:
		return actor, errors.New("unknown role claim")
	}

	if rawProfile, ok := claims["profile_id"].(string); ok && rawProfile != "" {
		profileID, err := uuid.Parse(rawProfile)
		if err != nil {
			return actor, errors.New("invalid profile_id claim")
		}
		actor.ProfileID = profileID
	}

	if v, ok := claims["is_koordinator"].(bool); ok {
		actor.IsKoordinator = v
	}

	return actor, nil
}
