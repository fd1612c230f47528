package dto

type MahasiswaCreateRequest struct {
	UserID   *string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	NIM      string  `json:"nim" validate:"required,max=20"`
	Nama     string  `json:"nama" validate:"required,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	NoHP     *string `json:"no_hp,omitempty" validate:"omitempty,max=20"`
	Angkatan int     `json:"angkatan" validate:"required,min=2000,max=2100"`
	Prodi    *string `json:"prodi,omitempty" validate:"omitempty,max=100"`
}

// Partial update: hanya field non-nil yang disentuh. Penugasan
// pembimbing/mitra/periode lewat sini juga (koordinator).
type MahasiswaUpdateRequest struct {
	UserID            *string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	Nama              *string `json:"nama,omitempty" validate:"omitempty,max=100"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	NoHP              *string `json:"no_hp,omitempty" validate:"omitempty,max=20"`
	Angkatan          *int    `json:"angkatan,omitempty" validate:"omitempty,min=2000,max=2100"`
	Prodi             *string `json:"prodi,omitempty" validate:"omitempty,max=100"`
	StatusPKL         *string `json:"status_pkl,omitempty" validate:"omitempty,oneof=BELUM SEDANG SELESAI"`
	DosenPembimbingID *string `json:"dosen_pembimbing_id,omitempty" validate:"omitempty,uuid"`
	MitraID           *string `json:"mitra_id,omitempty" validate:"omitempty,uuid"`
	PeriodeID         *string `json:"periode_id,omitempty" validate:"omitempty,uuid"`
}
