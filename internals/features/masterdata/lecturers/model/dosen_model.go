package model

import (
	"time"

	"github.com/google/uuid"
)

// DosenModel — map ke tabel dosen.
// Dirujuk sebagai pembimbing, penguji 1, dan penguji 2 pada seminar.
type DosenModel struct {
	DosenID     uuid.UUID  `json:"dosen_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:dosen_id"`
	DosenUserID *uuid.UUID `json:"dosen_user_id,omitempty" gorm:"type:uuid;unique;column:dosen_user_id"`

	DosenNIDN  string  `json:"dosen_nidn" gorm:"size:20;unique;not null;column:dosen_nidn"`
	DosenNama  string  `json:"dosen_nama" gorm:"size:100;not null;column:dosen_nama"`
	DosenEmail *string `json:"dosen_email,omitempty" gorm:"size:255;column:dosen_email"`
	DosenNoHP  *string `json:"dosen_no_hp,omitempty" gorm:"size:20;column:dosen_no_hp"`

	DosenProdi string `json:"dosen_prodi" gorm:"size:100;not null;default:'Sains Data';column:dosen_prodi"`

	// Maksimal mahasiswa PKL yang dibimbing dalam satu periode (advisory, warn-only)
	DosenKuotaBimbingan int `json:"dosen_kuota_bimbingan" gorm:"not null;default:10;column:dosen_kuota_bimbingan"`

	DosenIsKoordinatorPKL bool `json:"dosen_is_koordinator_pkl" gorm:"not null;default:false;column:dosen_is_koordinator_pkl"`

	DosenCreatedAt time.Time `json:"dosen_created_at" gorm:"column:dosen_created_at;not null;autoCreateTime"`
	DosenUpdatedAt time.Time `json:"dosen_updated_at" gorm:"column:dosen_updated_at;not null;autoUpdateTime"`
}

func (DosenModel) TableName() string {
	return "dosen"
}
