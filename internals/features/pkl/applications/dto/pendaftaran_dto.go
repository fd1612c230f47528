package dto

import "gorm.io/datatypes"

type PendaftaranCreateRequest struct {
	PeriodeID string         `json:"periode_id" validate:"required,uuid"`
	MitraID   string         `json:"mitra_id" validate:"required,uuid"`
	JenisPKL  string         `json:"jenis_pkl" validate:"required,oneof=INDIVIDU KELOMPOK"`
	// [{"nim":"...","nama":"..."}] — wajib untuk KELOMPOK
	AnggotaKelompok datatypes.JSON `json:"anggota_kelompok,omitempty"`
	SuratPenerimaan *string        `json:"surat_penerimaan,omitempty"`
}

type PendaftaranApproveRequest struct {
	DosenPembimbingID string  `json:"dosen_pembimbing_id" validate:"required,uuid"`
	Catatan           *string `json:"catatan,omitempty" validate:"omitempty,max=2000"`
}

type PendaftaranRejectRequest struct {
	Catatan string `json:"catatan" validate:"required,max=2000"`
}
