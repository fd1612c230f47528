package model

import (
	"time"

	"github.com/google/uuid"
)

type Semester string

const (
	SemesterGasal  Semester = "GASAL"
	SemesterGenap  Semester = "GENAP"
	SemesterPendek Semester = "PENDEK"
)

// PeriodePKLModel — map ke tabel periode_pkl (periode/gelombang PKL).
type PeriodePKLModel struct {
	PeriodeID uuid.UUID `json:"periode_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:periode_id"`

	PeriodeNama        string   `json:"periode_nama" gorm:"size:100;not null;column:periode_nama"`
	PeriodeTahunAjaran string   `json:"periode_tahun_ajaran" gorm:"size:20;not null;column:periode_tahun_ajaran"`
	PeriodeSemester    Semester `json:"periode_semester" gorm:"type:varchar(10);not null;column:periode_semester"`

	PeriodeTanggalMulai   time.Time `json:"periode_tanggal_mulai" gorm:"type:date;not null;column:periode_tanggal_mulai"`
	PeriodeTanggalSelesai time.Time `json:"periode_tanggal_selesai" gorm:"type:date;not null;column:periode_tanggal_selesai"`

	PeriodeAktif bool `json:"periode_aktif" gorm:"not null;default:true;column:periode_aktif"`

	PeriodeCreatedAt time.Time `json:"periode_created_at" gorm:"column:periode_created_at;not null;autoCreateTime"`
	PeriodeUpdatedAt time.Time `json:"periode_updated_at" gorm:"column:periode_updated_at;not null;autoUpdateTime"`
}

func (PeriodePKLModel) TableName() string {
	return "periode_pkl"
}
