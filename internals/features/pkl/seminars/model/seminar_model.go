package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Enum status seminar
   DIKIRIM → DIJADWALKAN → SELESAI, atau DITOLAK (terminal)
   ======================================================= */

type StatusSeminar string

const (
	SeminarDikirim     StatusSeminar = "DIKIRIM"
	SeminarDijadwalkan StatusSeminar = "DIJADWALKAN"
	SeminarSelesai     StatusSeminar = "SELESAI"
	SeminarDitolak     StatusSeminar = "DITOLAK"
)

/* =======================================================
   SeminarModel — map ke tabel seminar_hasil_pkl
   Unique: (mahasiswa_id, periode_id) — satu seminar per
   mahasiswa per periode.
   ======================================================= */

type SeminarModel struct {
	SeminarID uuid.UUID `json:"seminar_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:seminar_id"`

	SeminarMahasiswaID uuid.UUID `json:"seminar_mahasiswa_id" gorm:"type:uuid;not null;column:seminar_mahasiswa_id;uniqueIndex:uq_seminar_mahasiswa_periode"`
	SeminarPeriodeID   uuid.UUID `json:"seminar_periode_id" gorm:"type:uuid;not null;column:seminar_periode_id;uniqueIndex:uq_seminar_mahasiswa_periode"`

	// Otomatis mengikuti dosen pembimbing mahasiswa saat pengajuan
	SeminarDosenPembimbingID *uuid.UUID `json:"seminar_dosen_pembimbing_id,omitempty" gorm:"type:uuid;column:seminar_dosen_pembimbing_id"`

	SeminarJudulLaporan string  `json:"seminar_judul_laporan" gorm:"size:255;not null;column:seminar_judul_laporan"`
	SeminarFileLaporan  *string `json:"seminar_file_laporan,omitempty" gorm:"type:text;column:seminar_file_laporan"`

	SeminarStatus StatusSeminar `json:"seminar_status" gorm:"type:varchar(15);not null;default:'DIKIRIM';column:seminar_status"`

	// Diisi koordinator saat penjadwalan
	SeminarDosenPenguji1ID *uuid.UUID `json:"seminar_dosen_penguji_1_id,omitempty" gorm:"type:uuid;column:seminar_dosen_penguji_1_id"`
	SeminarDosenPenguji2ID *uuid.UUID `json:"seminar_dosen_penguji_2_id,omitempty" gorm:"type:uuid;column:seminar_dosen_penguji_2_id"`
	SeminarJadwal          *time.Time `json:"seminar_jadwal,omitempty" gorm:"type:timestamptz;column:seminar_jadwal"`
	SeminarRuang           *string    `json:"seminar_ruang,omitempty" gorm:"size:100;column:seminar_ruang"`

	SeminarCreatedAt time.Time `json:"seminar_created_at" gorm:"column:seminar_created_at;not null;autoCreateTime"`
	SeminarUpdatedAt time.Time `json:"seminar_updated_at" gorm:"column:seminar_updated_at;not null;autoUpdateTime"`
}

func (SeminarModel) TableName() string {
	return "seminar_hasil_pkl"
}

// Schedulable: penjadwalan hanya sah saat DIKIRIM (jadwal baru) atau
// DIJADWALKAN (reschedule). SELESAI/DITOLAK ditolak di hulu.
func (s *SeminarModel) Schedulable() bool {
	return s.SeminarStatus == SeminarDikirim || s.SeminarStatus == SeminarDijadwalkan
}

// HasPenguji true jika dosen tsb penguji 1 atau 2 pada seminar ini.
func (s *SeminarModel) HasPenguji(dosenID uuid.UUID) bool {
	if s.SeminarDosenPenguji1ID != nil && *s.SeminarDosenPenguji1ID == dosenID {
		return true
	}
	if s.SeminarDosenPenguji2ID != nil && *s.SeminarDosenPenguji2ID == dosenID {
		return true
	}
	return false
}
