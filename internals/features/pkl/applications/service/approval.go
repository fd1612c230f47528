// file: internals/features/pkl/applications/service/approval.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "pklku_backend/internals/features/pkl/applications/model"
	studentModel "pklku_backend/internals/features/masterdata/students/model"
)

var (
	ErrPendaftaranSudahDiproses = errors.New("pendaftaran sudah diproses")
)

// ApplyApprovalToStudent menyalin hasil persetujuan pendaftaran ke
// profil mahasiswa: periode, mitra, pembimbing, dan status PKL berjalan.
// Murni in-memory; penulisan DB dilakukan pemanggil.
func ApplyApprovalToStudent(mhs *studentModel.MahasiswaModel, p *m.PendaftaranPKLModel, pembimbingID uuid.UUID) {
	mhs.MahasiswaPeriodeID = &p.PendaftaranPeriodeID
	mhs.MahasiswaMitraID = &p.PendaftaranMitraID
	mhs.MahasiswaDosenPembimbingID = &pembimbingID
	mhs.MahasiswaStatusPKL = studentModel.StatusSedangPKL
}

// ApproveApplication menyetujui pendaftaran dan menyinkronkan profil
// mahasiswa dalam satu transaksi. Hanya pendaftaran DIKIRIM yang bisa
// disetujui.
func ApproveApplication(db *gorm.DB, pendaftaranID, pembimbingID uuid.UUID, catatan *string) (*m.PendaftaranPKLModel, error) {
	var result *m.PendaftaranPKLModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var p m.PendaftaranPKLModel
		if err := tx.First(&p, "pendaftaran_id = ?", pendaftaranID).Error; err != nil {
			return err
		}
		if p.PendaftaranStatus != m.PendaftaranDikirim {
			return fmt.Errorf("%w (status %s)", ErrPendaftaranSudahDiproses, p.PendaftaranStatus)
		}

		var mhs studentModel.MahasiswaModel
		if err := tx.First(&mhs, "mahasiswa_id = ?", p.PendaftaranMahasiswaID).Error; err != nil {
			return err
		}

		p.PendaftaranStatus = m.PendaftaranDisetujui
		p.PendaftaranDosenPembimbingID = &pembimbingID
		p.PendaftaranCatatanKoordinator = catatan
		if err := tx.Save(&p).Error; err != nil {
			return err
		}

		ApplyApprovalToStudent(&mhs, &p, pembimbingID)
		if err := tx.Save(&mhs).Error; err != nil {
			return err
		}

		result = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RejectApplication menolak pendaftaran DIKIRIM dengan catatan wajib.
// Profil mahasiswa tidak disentuh.
func RejectApplication(db *gorm.DB, pendaftaranID uuid.UUID, catatan string) (*m.PendaftaranPKLModel, error) {
	var p m.PendaftaranPKLModel
	if err := db.First(&p, "pendaftaran_id = ?", pendaftaranID).Error; err != nil {
		return nil, err
	}
	if p.PendaftaranStatus != m.PendaftaranDikirim {
		return nil, fmt.Errorf("%w (status %s)", ErrPendaftaranSudahDiproses, p.PendaftaranStatus)
	}

	p.PendaftaranStatus = m.PendaftaranDitolak
	p.PendaftaranCatatanKoordinator = &catatan
	if err := db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
