// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pklku_backend/internals/configs"
	"pklku_backend/internals/constants"
	dosenModel "pklku_backend/internals/features/masterdata/lecturers/model"
	mhsModel "pklku_backend/internals/features/masterdata/students/model"
	authModel "pklku_backend/internals/features/users/auth/model"
)

const accessTokenTTL = 2 * time.Hour

// profileClaims hasil resolve profil dosen/mahasiswa untuk satu user.
// profile_id nil artinya akun belum ditautkan ke profil masterdata.
type profileClaims struct {
	ProfileID     *uuid.UUID
	IsKoordinator bool
}

// resolveProfile mencari baris dosen/mahasiswa milik user sesuai role.
// Dipanggil sekali saat login, hasilnya dibekukan ke dalam claims token.
func resolveProfile(db *gorm.DB, user *authModel.UserModel) (profileClaims, error) {
	var pc profileClaims

	switch user.Role {
	case constants.RoleDosen:
		var d dosenModel.DosenModel
		err := db.First(&d, "dosen_user_id = ?", user.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pc, nil
		}
		if err != nil {
			return pc, err
		}
		pc.ProfileID = &d.DosenID
		pc.IsKoordinator = d.DosenIsKoordinatorPKL

	case constants.RoleMahasiswa:
		var m mhsModel.MahasiswaModel
		err := db.First(&m, "mahasiswa_user_id = ?", user.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pc, nil
		}
		if err != nil {
			return pc, err
		}
		pc.ProfileID = &m.MahasiswaID
	}

	return pc, nil
}

// GenerateAccessToken menandatangani JWT HS256 berisi identitas + profil.
func GenerateAccessToken(db *gorm.DB, user *authModel.UserModel) (string, error) {
	pc, err := resolveProfile(db, user)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":        user.ID.String(),
		"role":           user.Role,
		"is_koordinator": pc.IsKoordinator,
		"iat":            now.Unix(),
		"exp":            now.Add(accessTokenTTL).Unix(),
	}
	if pc.ProfileID != nil {
		claims["profile_id"] = pc.ProfileID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
