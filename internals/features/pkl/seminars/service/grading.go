// file: internals/features/pkl/seminars/service/grading.go
package service

import (
	"math"

	m "pklku_backend/internals/features/pkl/seminars/model"
)

/* =======================================================
   Agregasi nilai seminar.

   Semua fungsi di sini pure — tanpa akses DB. Komponen nilai
   diasumsikan sudah divalidasi 0-100 oleh pemanggil (DTO).
   ======================================================= */

// round2 membulatkan ke 2 desimal, half-up.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// AverageScore menghitung rata-rata lima komponen nilai, 2 desimal.
func AverageScore(pemahaman, kualitas, presentasi, penguasaan, sikap int) float64 {
	total := pemahaman + kualitas + presentasi + penguasaan + sikap
	return round2(float64(total) / 5)
}

// GradeOf mengonversi nilai angka ke huruf. Ambang mengikuti skala
// penilaian prodi; batas bawah pita D ditetapkan di atas 40.
func GradeOf(score float64) string {
	switch {
	case score > 80:
		return "A"
	case score > 75:
		return "A-"
	case score > 70:
		return "B+"
	case score > 65:
		return "B"
	case score > 60:
		return "B-"
	case score > 55:
		return "C+"
	case score > 50:
		return "C"
	case score > 46:
		return "C-"
	case score > 42:
		return "D+"
	case score > 40:
		return "D"
	default:
		return "E"
	}
}

// Recalculate mengisi ulang nilai_angka & nilai_huruf dari lima komponen.
// Dipanggil eksplisit oleh controller sebelum setiap save — bukan hook ORM —
// supaya aturannya terlihat di call site dan bisa diuji terpisah.
func Recalculate(a *m.SeminarAssessmentModel) {
	a.AssessmentNilaiAngka = AverageScore(
		a.AssessmentPemahamanMateri,
		a.AssessmentKualitasLaporan,
		a.AssessmentPresentasi,
		a.AssessmentPenguasaanLapangan,
		a.AssessmentSikapProfesional,
	)
	a.AssessmentNilaiHuruf = GradeOf(a.AssessmentNilaiAngka)
}

// FinalGrade menggabungkan seluruh penilaian satu seminar menjadi nilai
// akhir. Dihitung saat dibaca, tidak pernah disimpan. ok=false jika belum
// ada penilaian sama sekali (tanpa nilai sentinel).
func FinalGrade(assessments []m.SeminarAssessmentModel) (score float64, grade string, ok bool) {
	if len(assessments) == 0 {
		return 0, "", false
	}
	var total float64
	for _, a := range assessments {
		total += a.AssessmentNilaiAngka
	}
	score = round2(total / float64(len(assessments)))
	return score, GradeOf(score), true
}
