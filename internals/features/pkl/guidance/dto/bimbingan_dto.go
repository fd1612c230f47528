package dto

type BimbinganCreateRequest struct {
	Tanggal          string  `json:"tanggal" validate:"required,datetime=2006-01-02"`
	JamMulai         *string `json:"jam_mulai,omitempty" validate:"omitempty,datetime=15:04"`
	JamSelesai       *string `json:"jam_selesai,omitempty" validate:"omitempty,datetime=15:04"`
	Metode           string  `json:"metode" validate:"required,oneof=ONLINE OFFLINE HYBRID"`
	Platform         *string `json:"platform,omitempty" validate:"omitempty,max=100"`
	Topik            string  `json:"topik" validate:"required,max=200"`
	RingkasanDiskusi string  `json:"ringkasan_diskusi" validate:"required"`
	TindakLanjut     *string `json:"tindak_lanjut,omitempty"`
}

// Dosen memvalidasi sesi: hadir (DONE) atau batal (CANCELLED).
type BimbinganValidateRequest struct {
	Status string `json:"status" validate:"required,oneof=DONE CANCELLED"`
}
