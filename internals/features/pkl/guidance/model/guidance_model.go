package model

import (
	"time"

	"github.com/google/uuid"
)

type StatusBimbingan string

const (
	BimbinganPlanned   StatusBimbingan = "PLANNED"
	BimbinganDone      StatusBimbingan = "DONE"
	BimbinganCancelled StatusBimbingan = "CANCELLED"
)

type MetodeBimbingan string

const (
	MetodeOnline  MetodeBimbingan = "ONLINE"
	MetodeOffline MetodeBimbingan = "OFFLINE"
	MetodeHybrid  MetodeBimbingan = "HYBRID"
)

// GuidanceSessionModel — map ke tabel guidance_sessions (sesi bimbingan PKL).
type GuidanceSessionModel struct {
	BimbinganID uuid.UUID `json:"bimbingan_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:bimbingan_id"`

	BimbinganMahasiswaID       uuid.UUID  `json:"bimbingan_mahasiswa_id" gorm:"type:uuid;not null;column:bimbingan_mahasiswa_id"`
	BimbinganDosenPembimbingID *uuid.UUID `json:"bimbingan_dosen_pembimbing_id,omitempty" gorm:"type:uuid;column:bimbingan_dosen_pembimbing_id"`
	BimbinganPeriodeID         *uuid.UUID `json:"bimbingan_periode_id,omitempty" gorm:"type:uuid;column:bimbingan_periode_id"`

	BimbinganPertemuanKe *int `json:"bimbingan_pertemuan_ke,omitempty" gorm:"column:bimbingan_pertemuan_ke"`

	BimbinganTanggal    time.Time  `json:"bimbingan_tanggal" gorm:"type:date;not null;column:bimbingan_tanggal"`
	BimbinganJamMulai   *time.Time `json:"bimbingan_jam_mulai,omitempty" gorm:"type:time;column:bimbingan_jam_mulai"`
	BimbinganJamSelesai *time.Time `json:"bimbingan_jam_selesai,omitempty" gorm:"type:time;column:bimbingan_jam_selesai"`

	BimbinganMetode   MetodeBimbingan `json:"bimbingan_metode" gorm:"type:varchar(10);not null;default:'ONLINE';column:bimbingan_metode"`
	BimbinganPlatform *string         `json:"bimbingan_platform,omitempty" gorm:"size:100;column:bimbingan_platform"`

	BimbinganTopik            string  `json:"bimbingan_topik" gorm:"size:200;not null;column:bimbingan_topik"`
	BimbinganRingkasanDiskusi string  `json:"bimbingan_ringkasan_diskusi" gorm:"type:text;not null;column:bimbingan_ringkasan_diskusi"`
	BimbinganTindakLanjut     *string `json:"bimbingan_tindak_lanjut,omitempty" gorm:"type:text;column:bimbingan_tindak_lanjut"`

	BimbinganStatus StatusBimbingan `json:"bimbingan_status" gorm:"type:varchar(10);not null;default:'PLANNED';column:bimbingan_status"`

	BimbinganCreatedAt time.Time `json:"bimbingan_created_at" gorm:"column:bimbingan_created_at;not null;autoCreateTime"`
	BimbinganUpdatedAt time.Time `json:"bimbingan_updated_at" gorm:"column:bimbingan_updated_at;not null;autoUpdateTime"`
}

func (GuidanceSessionModel) TableName() string {
	return "guidance_sessions"
}
