package dto

// Tanggal "2006-01-02", jam "15:04".
type LogbookCreateRequest struct {
	Tanggal    string   `json:"tanggal" validate:"required,datetime=2006-01-02"`
	JamMulai   *string  `json:"jam_mulai,omitempty" validate:"omitempty,datetime=15:04"`
	JamSelesai *string  `json:"jam_selesai,omitempty" validate:"omitempty,datetime=15:04"`
	Aktivitas  string   `json:"aktivitas" validate:"required"`
	Tools      []string `json:"tools,omitempty" validate:"omitempty,dive,max=100"`
	Output     *string  `json:"output,omitempty"`
}

type LogbookUpdateRequest struct {
	Tanggal    *string  `json:"tanggal,omitempty" validate:"omitempty,datetime=2006-01-02"`
	JamMulai   *string  `json:"jam_mulai,omitempty" validate:"omitempty,datetime=15:04"`
	JamSelesai *string  `json:"jam_selesai,omitempty" validate:"omitempty,datetime=15:04"`
	Aktivitas  *string  `json:"aktivitas,omitempty"`
	Tools      []string `json:"tools,omitempty" validate:"omitempty,dive,max=100"`
	Output     *string  `json:"output,omitempty"`
}

// Dosen pembimbing menilai entri yang sudah di-submit.
type LogbookReviewRequest struct {
	Status  string  `json:"status" validate:"required,oneof=DISETUJUI REVISI"`
	Catatan *string `json:"catatan,omitempty" validate:"omitempty,max=2000"`
}
