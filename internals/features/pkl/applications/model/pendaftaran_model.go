package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   Enum jenis & status pendaftaran
   ======================================================= */

type JenisPKL string

const (
	JenisIndividu JenisPKL = "INDIVIDU"
	JenisKelompok JenisPKL = "KELOMPOK"
)

type StatusPendaftaran string

const (
	PendaftaranDikirim   StatusPendaftaran = "DIKIRIM"
	PendaftaranDisetujui StatusPendaftaran = "DISETUJUI"
	PendaftaranDitolak   StatusPendaftaran = "DITOLAK"
)

/* =======================================================
   PendaftaranPKLModel — map ke tabel pendaftaran_pkl
   Unique: (mahasiswa_id, periode_id)
   ======================================================= */

type PendaftaranPKLModel struct {
	PendaftaranID uuid.UUID `json:"pendaftaran_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pendaftaran_id"`

	PendaftaranMahasiswaID uuid.UUID `json:"pendaftaran_mahasiswa_id" gorm:"type:uuid;not null;column:pendaftaran_mahasiswa_id;uniqueIndex:uq_pendaftaran_mahasiswa_periode"`
	PendaftaranPeriodeID   uuid.UUID `json:"pendaftaran_periode_id" gorm:"type:uuid;not null;column:pendaftaran_periode_id;uniqueIndex:uq_pendaftaran_mahasiswa_periode"`
	PendaftaranMitraID     uuid.UUID `json:"pendaftaran_mitra_id" gorm:"type:uuid;not null;column:pendaftaran_mitra_id"`

	PendaftaranJenisPKL JenisPKL `json:"pendaftaran_jenis_pkl" gorm:"type:varchar(10);not null;column:pendaftaran_jenis_pkl"`

	// Daftar anggota kelompok [{"nim":"...","nama":"..."}]; kosong untuk INDIVIDU
	PendaftaranAnggotaKelompok datatypes.JSON `json:"pendaftaran_anggota_kelompok,omitempty" gorm:"type:jsonb;column:pendaftaran_anggota_kelompok"`

	// Lokasi file surat penerimaan; validasi & penyimpanan file di luar lingkup service ini
	PendaftaranSuratPenerimaan *string `json:"pendaftaran_surat_penerimaan,omitempty" gorm:"type:text;column:pendaftaran_surat_penerimaan"`

	PendaftaranStatus StatusPendaftaran `json:"pendaftaran_status" gorm:"type:varchar(10);not null;default:'DIKIRIM';column:pendaftaran_status"`

	// Diisi koordinator saat menyetujui
	PendaftaranDosenPembimbingID *uuid.UUID `json:"pendaftaran_dosen_pembimbing_id,omitempty" gorm:"type:uuid;column:pendaftaran_dosen_pembimbing_id"`
	PendaftaranCatatanKoordinator *string   `json:"pendaftaran_catatan_koordinator,omitempty" gorm:"type:text;column:pendaftaran_catatan_koordinator"`

	PendaftaranCreatedAt time.Time `json:"pendaftaran_created_at" gorm:"column:pendaftaran_created_at;not null;autoCreateTime"`
	PendaftaranUpdatedAt time.Time `json:"pendaftaran_updated_at" gorm:"column:pendaftaran_updated_at;not null;autoUpdateTime"`
}

func (PendaftaranPKLModel) TableName() string {
	return "pendaftaran_pkl"
}
