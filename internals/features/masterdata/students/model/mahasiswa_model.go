package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Enum status PKL mahasiswa
   ======================================================= */

type StatusPKL string

const (
	StatusBelumPKL   StatusPKL = "BELUM"
	StatusSedangPKL  StatusPKL = "SEDANG"
	StatusSelesaiPKL StatusPKL = "SELESAI"
)

/* =======================================================
   MahasiswaModel — map ke tabel mahasiswa
   ======================================================= */

type MahasiswaModel struct {
	MahasiswaID     uuid.UUID  `json:"mahasiswa_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:mahasiswa_id"`
	MahasiswaUserID *uuid.UUID `json:"mahasiswa_user_id,omitempty" gorm:"type:uuid;unique;column:mahasiswa_user_id"`

	MahasiswaNIM      string  `json:"mahasiswa_nim" gorm:"size:20;unique;not null;column:mahasiswa_nim"`
	MahasiswaNama     string  `json:"mahasiswa_nama" gorm:"size:100;not null;column:mahasiswa_nama"`
	MahasiswaEmail    *string `json:"mahasiswa_email,omitempty" gorm:"size:255;column:mahasiswa_email"`
	MahasiswaNoHP     *string `json:"mahasiswa_no_hp,omitempty" gorm:"size:20;column:mahasiswa_no_hp"`
	MahasiswaAngkatan int     `json:"mahasiswa_angkatan" gorm:"not null;column:mahasiswa_angkatan"`
	MahasiswaProdi    string  `json:"mahasiswa_prodi" gorm:"size:100;not null;default:'Sains Data';column:mahasiswa_prodi"`

	MahasiswaStatusPKL StatusPKL `json:"mahasiswa_status_pkl" gorm:"type:varchar(10);not null;default:'BELUM';column:mahasiswa_status_pkl"`

	// Denormalisasi penugasan PKL aktif (diisi saat pendaftaran disetujui)
	MahasiswaDosenPembimbingID *uuid.UUID `json:"mahasiswa_dosen_pembimbing_id,omitempty" gorm:"type:uuid;column:mahasiswa_dosen_pembimbing_id"`
	MahasiswaMitraID           *uuid.UUID `json:"mahasiswa_mitra_id,omitempty" gorm:"type:uuid;column:mahasiswa_mitra_id"`
	MahasiswaPeriodeID         *uuid.UUID `json:"mahasiswa_periode_id,omitempty" gorm:"type:uuid;column:mahasiswa_periode_id"`

	MahasiswaCreatedAt time.Time `json:"mahasiswa_created_at" gorm:"column:mahasiswa_created_at;not null;autoCreateTime"`
	MahasiswaUpdatedAt time.Time `json:"mahasiswa_updated_at" gorm:"column:mahasiswa_updated_at;not null;autoUpdateTime"`
}

func (MahasiswaModel) TableName() string {
	return "mahasiswa"
}
