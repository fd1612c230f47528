package dto

type DosenCreateRequest struct {
	UserID           *string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	NIDN             string  `json:"nidn" validate:"required,max=20"`
	Nama             string  `json:"nama" validate:"required,max=100"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	NoHP             *string `json:"no_hp,omitempty" validate:"omitempty,max=20"`
	Prodi            *string `json:"prodi,omitempty" validate:"omitempty,max=100"`
	KuotaBimbingan   *int    `json:"kuota_bimbingan,omitempty" validate:"omitempty,min=0"`
	IsKoordinatorPKL *bool   `json:"is_koordinator_pkl,omitempty"`
}

// Partial update: hanya field non-nil yang disentuh.
type DosenUpdateRequest struct {
	UserID           *string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	Nama             *string `json:"nama,omitempty" validate:"omitempty,max=100"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	NoHP             *string `json:"no_hp,omitempty" validate:"omitempty,max=20"`
	Prodi            *string `json:"prodi,omitempty" validate:"omitempty,max=100"`
	KuotaBimbingan   *int    `json:"kuota_bimbingan,omitempty" validate:"omitempty,min=0"`
	IsKoordinatorPKL *bool   `json:"is_koordinator_pkl,omitempty"`
}
