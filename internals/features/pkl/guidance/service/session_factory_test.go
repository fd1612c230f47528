package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentModel "pklku_backend/internals/features/masterdata/students/model"
	m "pklku_backend/internals/features/pkl/guidance/model"
)

func TestNewGuidanceSessionSalinProfilMahasiswa(t *testing.T) {
	dosenID := uuid.New()
	periodeID := uuid.New()
	mhs := studentModel.MahasiswaModel{
		MahasiswaID:                uuid.New(),
		MahasiswaDosenPembimbingID: &dosenID,
		MahasiswaPeriodeID:         &periodeID,
	}

	sesi := NewGuidanceSession(&mhs, SessionInput{
		Tanggal:          time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Metode:           m.MetodeOnline,
		Topik:            "Progress bab 2",
		RingkasanDiskusi: "Review metodologi",
	}, 0)

	assert.Equal(t, mhs.MahasiswaID, sesi.BimbinganMahasiswaID)
	require.NotNil(t, sesi.BimbinganDosenPembimbingID)
	require.NotNil(t, sesi.BimbinganPeriodeID)
	assert.Equal(t, dosenID, *sesi.BimbinganDosenPembimbingID)
	assert.Equal(t, periodeID, *sesi.BimbinganPeriodeID)
	assert.Equal(t, m.BimbinganPlanned, sesi.BimbinganStatus)
}

func TestNewGuidanceSessionNomorPertemuan(t *testing.T) {
	mhs := studentModel.MahasiswaModel{MahasiswaID: uuid.New()}

	sesi := NewGuidanceSession(&mhs, SessionInput{
		Tanggal:          time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Metode:           m.MetodeOffline,
		Topik:            "Finalisasi laporan",
		RingkasanDiskusi: "Revisi bab 4",
	}, 5)

	require.NotNil(t, sesi.BimbinganPertemuanKe)
	assert.Equal(t, 6, *sesi.BimbinganPertemuanKe)
}

func TestNewGuidanceSessionTanpaPembimbing(t *testing.T) {
	// Mahasiswa belum punya pembimbing: kolom relasi dibiarkan kosong,
	// bukan error — guard eligibility ada di layer controller.
	mhs := studentModel.MahasiswaModel{MahasiswaID: uuid.New()}

	sesi := NewGuidanceSession(&mhs, SessionInput{
		Tanggal:          time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Metode:           m.MetodeHybrid,
		Topik:            "Diskusi awal",
		RingkasanDiskusi: "Pemilihan topik",
	}, 0)

	assert.Nil(t, sesi.BimbinganDosenPembimbingID)
	assert.Nil(t, sesi.BimbinganPeriodeID)
}
