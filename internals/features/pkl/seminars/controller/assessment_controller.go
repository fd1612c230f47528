// file: internals/features/pkl/seminars/controller/assessment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "pklku_backend/internals/features/pkl/seminars/dto"
	m "pklku_backend/internals/features/pkl/seminars/model"
	svc "pklku_backend/internals/features/pkl/seminars/service"
	helper "pklku_backend/internals/helpers"
)

type AssessmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db, Validate: validator.New()}
}

// PUT /api/d/seminar/:id/assessment
// Dosen penguji/pembimbing mengisi (atau merevisi) penilaian seminar.
// Nilai angka & huruf dihitung ulang setiap simpan, satu baris per
// (seminar, penguji).
func (ctl *AssessmentController) Upsert(c *fiber.Ctx) error {
	dosenID, err := helper.GetDosenID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	seminarID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "seminar id invalid")
	}

	var req d.AssessmentUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var seminar m.SeminarModel
	if err := ctl.DB.First(&seminar, "seminar_id = ?", seminarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Seminar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	boleh := seminar.HasPenguji(dosenID) ||
		(seminar.SeminarDosenPembimbingID != nil && *seminar.SeminarDosenPembimbingID == dosenID)
	if !boleh {
		return helper.Error(c, fiber.StatusForbidden, "Anda bukan penilai seminar ini.")
	}

	// Penilaian hanya dibuka setelah seminar terjadwal.
	if seminar.SeminarStatus != m.SeminarDijadwalkan && seminar.SeminarStatus != m.SeminarSelesai {
		return helper.Error(c, fiber.StatusConflict,
			"Penilaian hanya dapat diisi setelah seminar dijadwalkan.")
	}

	var row m.SeminarAssessmentModel
	err = ctl.DB.
		Where("assessment_seminar_id = ? AND assessment_penguji_id = ?", seminarID, dosenID).
		First(&row).Error

	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if isNew {
		row = m.SeminarAssessmentModel{
			AssessmentSeminarID: seminarID,
			AssessmentPengujiID: dosenID,
		}
	}

	row.AssessmentPemahamanMateri = req.PemahamanMateri
	row.AssessmentKualitasLaporan = req.KualitasLaporan
	row.AssessmentPresentasi = req.Presentasi
	row.AssessmentPenguasaanLapangan = req.PenguasaanLapangan
	row.AssessmentSikapProfesional = req.SikapProfesional
	row.AssessmentCatatan = req.Catatan
	svc.Recalculate(&row)

	if isNew {
		if err := ctl.DB.Create(&row).Error; err != nil {
			if isDuplicateKey(err) {
				return helper.Error(c, fiber.StatusConflict, "Penilaian Anda untuk seminar ini sudah ada.")
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Penilaian tersimpan.", row)
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Penilaian diperbarui.", row)
}

// GET /api/d/seminar/:id/assessment
// Penilaian milik dosen ini pada seminar tsb (kalau sudah ada).
func (ctl *AssessmentController) Mine(c *fiber.Ctx) error {
	dosenID, err := helper.GetDosenID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	seminarID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "seminar id invalid")
	}

	var row m.SeminarAssessmentModel
	if err := ctl.DB.
		Where("assessment_seminar_id = ? AND assessment_penguji_id = ?", seminarID, dosenID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anda belum mengisi penilaian untuk seminar ini.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Penilaian", row)
}
