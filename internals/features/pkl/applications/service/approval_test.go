package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pklku_backend/internals/features/pkl/applications/model"
	studentModel "pklku_backend/internals/features/masterdata/students/model"
)

func TestApplyApprovalToStudent(t *testing.T) {
	periodeID := uuid.New()
	mitraID := uuid.New()
	pembimbingID := uuid.New()

	mhs := studentModel.MahasiswaModel{
		MahasiswaID:        uuid.New(),
		MahasiswaNIM:       "2110511001",
		MahasiswaStatusPKL: studentModel.StatusBelumPKL,
	}
	p := m.PendaftaranPKLModel{
		PendaftaranID:          uuid.New(),
		PendaftaranMahasiswaID: mhs.MahasiswaID,
		PendaftaranPeriodeID:   periodeID,
		PendaftaranMitraID:     mitraID,
		PendaftaranStatus:      m.PendaftaranDikirim,
	}

	ApplyApprovalToStudent(&mhs, &p, pembimbingID)

	require.NotNil(t, mhs.MahasiswaPeriodeID)
	require.NotNil(t, mhs.MahasiswaMitraID)
	require.NotNil(t, mhs.MahasiswaDosenPembimbingID)
	assert.Equal(t, periodeID, *mhs.MahasiswaPeriodeID)
	assert.Equal(t, mitraID, *mhs.MahasiswaMitraID)
	assert.Equal(t, pembimbingID, *mhs.MahasiswaDosenPembimbingID)
	assert.Equal(t, studentModel.StatusSedangPKL, mhs.MahasiswaStatusPKL)
}

func TestApplyApprovalToStudentTimpaPenugasanLama(t *testing.T) {
	lamaDosen := uuid.New()
	baruDosen := uuid.New()

	mhs := studentModel.MahasiswaModel{
		MahasiswaID:                uuid.New(),
		MahasiswaDosenPembimbingID: &lamaDosen,
		MahasiswaStatusPKL:         studentModel.StatusBelumPKL,
	}
	p := m.PendaftaranPKLModel{
		PendaftaranPeriodeID: uuid.New(),
		PendaftaranMitraID:   uuid.New(),
	}

	ApplyApprovalToStudent(&mhs, &p, baruDosen)

	assert.Equal(t, baruDosen, *mhs.MahasiswaDosenPembimbingID)
}
