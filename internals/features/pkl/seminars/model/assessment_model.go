package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   SeminarAssessmentModel — map ke tabel seminar_assessments
   Unique: (seminar_id, penguji_id) — satu penilaian per
   dosen per seminar.
   ======================================================= */

type SeminarAssessmentModel struct {
	AssessmentID uuid.UUID `json:"assessment_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assessment_id"`

	AssessmentSeminarID uuid.UUID `json:"assessment_seminar_id" gorm:"type:uuid;not null;column:assessment_seminar_id;uniqueIndex:uq_assessment_seminar_penguji"`
	AssessmentPengujiID uuid.UUID `json:"assessment_penguji_id" gorm:"type:uuid;not null;column:assessment_penguji_id;uniqueIndex:uq_assessment_seminar_penguji"`

	// Lima komponen nilai, masing-masing 0-100
	AssessmentPemahamanMateri    int `json:"assessment_pemahaman_materi" gorm:"not null;column:assessment_pemahaman_materi"`
	AssessmentKualitasLaporan    int `json:"assessment_kualitas_laporan" gorm:"not null;column:assessment_kualitas_laporan"`
	AssessmentPresentasi         int `json:"assessment_presentasi" gorm:"not null;column:assessment_presentasi"`
	AssessmentPenguasaanLapangan int `json:"assessment_penguasaan_lapangan" gorm:"not null;column:assessment_penguasaan_lapangan"`
	AssessmentSikapProfesional   int `json:"assessment_sikap_profesional" gorm:"not null;column:assessment_sikap_profesional"`

	// Turunan — dihitung ulang setiap kali disimpan, tidak pernah basi
	AssessmentNilaiAngka float64 `json:"assessment_nilai_angka" gorm:"type:numeric(5,2);not null;column:assessment_nilai_angka"`
	AssessmentNilaiHuruf string  `json:"assessment_nilai_huruf" gorm:"size:2;not null;column:assessment_nilai_huruf"`

	AssessmentCatatan *string `json:"assessment_catatan,omitempty" gorm:"type:text;column:assessment_catatan"`

	AssessmentCreatedAt time.Time `json:"assessment_created_at" gorm:"column:assessment_created_at;not null;autoCreateTime"`
	AssessmentUpdatedAt time.Time `json:"assessment_updated_at" gorm:"column:assessment_updated_at;not null;autoUpdateTime"`
}

func (SeminarAssessmentModel) TableName() string {
	return "seminar_assessments"
}
