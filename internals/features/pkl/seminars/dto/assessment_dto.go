package dto

// Dosen penguji/pembimbing mengirim atau memperbarui penilaian.
// Komponen nilai divalidasi 0-100 di sini; turunan (nilai_angka,
// nilai_huruf) dihitung service, bukan dikirim klien.
type AssessmentUpsertRequest struct {
	PemahamanMateri    int     `json:"pemahaman_materi" validate:"min=0,max=100"`
	KualitasLaporan    int     `json:"kualitas_laporan" validate:"min=0,max=100"`
	Presentasi         int     `json:"presentasi" validate:"min=0,max=100"`
	PenguasaanLapangan int     `json:"penguasaan_lapangan" validate:"min=0,max=100"`
	SikapProfesional   int     `json:"sikap_profesional" validate:"min=0,max=100"`
	Catatan            *string `json:"catatan,omitempty" validate:"omitempty,max=2000"`
}
