// file: internals/features/pkl/guidance/service/session_factory.go
package service

import (
	"time"

	studentModel "pklku_backend/internals/features/masterdata/students/model"
	m "pklku_backend/internals/features/pkl/guidance/model"
)

// SessionInput data dari mahasiswa saat mengajukan sesi bimbingan.
type SessionInput struct {
	Tanggal          time.Time
	JamMulai         *time.Time
	JamSelesai       *time.Time
	Metode           m.MetodeBimbingan
	Platform         *string
	Topik            string
	RingkasanDiskusi string
	TindakLanjut     *string
}

// NewGuidanceSession membangun sesi bimbingan baru: pembimbing &
// periode disalin dari profil mahasiswa, nomor pertemuan dihitung dari
// jumlah sesi sebelumnya. Status awal selalu PLANNED; dosen yang
// menandai DONE/CANCELLED.
func NewGuidanceSession(mhs *studentModel.MahasiswaModel, in SessionInput, sesiSebelumnya int) m.GuidanceSessionModel {
	pertemuanKe := sesiSebelumnya + 1

	return m.GuidanceSessionModel{
		BimbinganMahasiswaID:       mhs.MahasiswaID,
		BimbinganDosenPembimbingID: mhs.MahasiswaDosenPembimbingID,
		BimbinganPeriodeID:         mhs.MahasiswaPeriodeID,
		BimbinganPertemuanKe:       &pertemuanKe,
		BimbinganTanggal:           in.Tanggal,
		BimbinganJamMulai:          in.JamMulai,
		BimbinganJamSelesai:        in.JamSelesai,
		BimbinganMetode:            in.Metode,
		BimbinganPlatform:          in.Platform,
		BimbinganTopik:             in.Topik,
		BimbinganRingkasanDiskusi:  in.RingkasanDiskusi,
		BimbinganTindakLanjut:      in.TindakLanjut,
		BimbinganStatus:            m.BimbinganPlanned,
	}
}
