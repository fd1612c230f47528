package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "pklku_backend/internals/features/pkl/seminars/model"
)

func TestGradeOfBoundary(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{81, "A"},
		{80, "A-"},
		{76, "A-"},
		{72, "B+"},
		{68, "B"},
		{64, "B-"},
		{58, "C+"},
		{54, "C"},
		{50, "C-"},
		{46, "D+"},
		{42, "D"},
		{40, "E"},
		{0, "E"},
		{100, "A"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GradeOf(tc.score), "GradeOf(%v)", tc.score)
	}
}

func TestAverageScore(t *testing.T) {
	avg := AverageScore(80, 70, 75, 85, 90)
	assert.Equal(t, 80.0, avg)
	assert.Equal(t, "A-", GradeOf(avg))

	// pembulatan 2 desimal
	assert.Equal(t, 80.4, AverageScore(80, 80, 80, 81, 81))
	assert.Equal(t, 33.2, AverageScore(33, 33, 33, 33, 34))
}

func TestAverageScoreRange(t *testing.T) {
	// mean dari komponen 0-100 selalu di [0,100]
	assert.Equal(t, 0.0, AverageScore(0, 0, 0, 0, 0))
	assert.Equal(t, 100.0, AverageScore(100, 100, 100, 100, 100))
}

func TestRecalculate(t *testing.T) {
	a := m.SeminarAssessmentModel{
		AssessmentPemahamanMateri:    80,
		AssessmentKualitasLaporan:    70,
		AssessmentPresentasi:         75,
		AssessmentPenguasaanLapangan: 85,
		AssessmentSikapProfesional:   90,
	}
	Recalculate(&a)
	assert.Equal(t, 80.0, a.AssessmentNilaiAngka)
	assert.Equal(t, "A-", a.AssessmentNilaiHuruf)
}

func TestFinalGrade(t *testing.T) {
	score, grade, ok := FinalGrade([]m.SeminarAssessmentModel{
		{AssessmentNilaiAngka: 80.0},
		{AssessmentNilaiAngka: 70.0},
	})
	assert.True(t, ok)
	assert.Equal(t, 75.0, score)
	assert.Equal(t, "B+", grade)
}

func TestFinalGradeKosong(t *testing.T) {
	_, _, ok := FinalGrade(nil)
	assert.False(t, ok, "tanpa penilaian, nilai akhir tidak terdefinisi")
}

func TestFinalGradeSatuPenilaian(t *testing.T) {
	score, grade, ok := FinalGrade([]m.SeminarAssessmentModel{
		{AssessmentNilaiAngka: 66.5},
	})
	assert.True(t, ok)
	assert.Equal(t, 66.5, score)
	assert.Equal(t, "B", grade)
}
