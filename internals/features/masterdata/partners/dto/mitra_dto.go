package dto

type MitraCreateRequest struct {
	Nama        string  `json:"nama" validate:"required,max=200"`
	Alamat      *string `json:"alamat,omitempty"`
	Kota        *string `json:"kota,omitempty" validate:"omitempty,max=100"`
	PICNama     *string `json:"pic_nama,omitempty" validate:"omitempty,max=100"`
	PICEmail    *string `json:"pic_email,omitempty" validate:"omitempty,email"`
	PICNoHP     *string `json:"pic_no_hp,omitempty" validate:"omitempty,max=20"`
	BidangUsaha *string `json:"bidang_usaha,omitempty" validate:"omitempty,max=200"`
	KuotaPKL    *int    `json:"kuota_pkl,omitempty" validate:"omitempty,min=0"`
}

type MitraUpdateRequest struct {
	Nama        *string `json:"nama,omitempty" validate:"omitempty,max=200"`
	Alamat      *string `json:"alamat,omitempty"`
	Kota        *string `json:"kota,omitempty" validate:"omitempty,max=100"`
	PICNama     *string `json:"pic_nama,omitempty" validate:"omitempty,max=100"`
	PICEmail    *string `json:"pic_email,omitempty" validate:"omitempty,email"`
	PICNoHP     *string `json:"pic_no_hp,omitempty" validate:"omitempty,max=20"`
	BidangUsaha *string `json:"bidang_usaha,omitempty" validate:"omitempty,max=200"`
	KuotaPKL    *int    `json:"kuota_pkl,omitempty" validate:"omitempty,min=0"`
}
