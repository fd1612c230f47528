package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type StatusLogbook string

const (
	LogbookDraft     StatusLogbook = "DRAFT"
	LogbookSubmit    StatusLogbook = "SUBMIT"
	LogbookRevisi    StatusLogbook = "REVISI"
	LogbookDisetujui StatusLogbook = "DISETUJUI"
)

// LogbookEntryModel — map ke tabel logbook_entries (catatan harian PKL).
type LogbookEntryModel struct {
	LogbookID uuid.UUID `json:"logbook_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:logbook_id"`

	LogbookMahasiswaID       uuid.UUID  `json:"logbook_mahasiswa_id" gorm:"type:uuid;not null;column:logbook_mahasiswa_id"`
	LogbookDosenPembimbingID *uuid.UUID `json:"logbook_dosen_pembimbing_id,omitempty" gorm:"type:uuid;column:logbook_dosen_pembimbing_id"`
	LogbookPeriodeID         *uuid.UUID `json:"logbook_periode_id,omitempty" gorm:"type:uuid;column:logbook_periode_id"`

	LogbookTanggal    time.Time  `json:"logbook_tanggal" gorm:"type:date;not null;column:logbook_tanggal"`
	LogbookJamMulai   *time.Time `json:"logbook_jam_mulai,omitempty" gorm:"type:time;column:logbook_jam_mulai"`
	LogbookJamSelesai *time.Time `json:"logbook_jam_selesai,omitempty" gorm:"type:time;column:logbook_jam_selesai"`

	LogbookAktivitas string         `json:"logbook_aktivitas" gorm:"type:text;not null;column:logbook_aktivitas"`
	LogbookTools     pq.StringArray `json:"logbook_tools,omitempty" gorm:"type:text[];column:logbook_tools"`
	LogbookOutput    *string        `json:"logbook_output,omitempty" gorm:"type:text;column:logbook_output"`

	LogbookStatus       StatusLogbook `json:"logbook_status" gorm:"type:varchar(10);not null;default:'DRAFT';column:logbook_status"`
	LogbookCatatanDosen *string       `json:"logbook_catatan_dosen,omitempty" gorm:"type:text;column:logbook_catatan_dosen"`

	LogbookCreatedAt time.Time `json:"logbook_created_at" gorm:"column:logbook_created_at;not null;autoCreateTime"`
	LogbookUpdatedAt time.Time `json:"logbook_updated_at" gorm:"column:logbook_updated_at;not null;autoUpdateTime"`
}

func (LogbookEntryModel) TableName() string {
	return "logbook_entries"
}

// Editable: mahasiswa hanya boleh mengubah entri yang belum final.
func (l *LogbookEntryModel) Editable() bool {
	return l.LogbookStatus == LogbookDraft || l.LogbookStatus == LogbookRevisi
}
