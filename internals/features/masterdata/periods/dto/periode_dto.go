package dto

// Tanggal pakai format "2006-01-02".
type PeriodeCreateRequest struct {
	Nama           string `json:"nama" validate:"required,max=100"`
	TahunAjaran    string `json:"tahun_ajaran" validate:"required,max=20"`
	Semester       string `json:"semester" validate:"required,oneof=GASAL GENAP PENDEK"`
	TanggalMulai   string `json:"tanggal_mulai" validate:"required,datetime=2006-01-02"`
	TanggalSelesai string `json:"tanggal_selesai" validate:"required,datetime=2006-01-02"`
	Aktif          *bool  `json:"aktif,omitempty"`
}

type PeriodeUpdateRequest struct {
	Nama           *string `json:"nama,omitempty" validate:"omitempty,max=100"`
	TahunAjaran    *string `json:"tahun_ajaran,omitempty" validate:"omitempty,max=20"`
	Semester       *string `json:"semester,omitempty" validate:"omitempty,oneof=GASAL GENAP PENDEK"`
	TanggalMulai   *string `json:"tanggal_mulai,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TanggalSelesai *string `json:"tanggal_selesai,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Aktif          *bool   `json:"aktif,omitempty"`
}
