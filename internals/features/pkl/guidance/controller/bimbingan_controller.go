// file: internals/features/pkl/guidance/controller/bimbingan_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "pklku_backend/internals/features/masterdata/students/model"
	d "pklku_backend/internals/features/pkl/guidance/dto"
	m "pklku_backend/internals/features/pkl/guidance/model"
	svc "pklku_backend/internals/features/pkl/guidance/service"
	helper "pklku_backend/internals/helpers"
)

type BimbinganController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBimbinganController(db *gorm.DB) *BimbinganController {
	return &BimbinganController{DB: db, Validate: validator.New()}
}

func parseJam(s *string, tanggal time.Time) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("15:04", *s)
	if err != nil {
		return nil
	}
	j := time.Date(tanggal.Year(), tanggal.Month(), tanggal.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	return &j
}

/* =========================
   Mahasiswa
   ========================= */

// POST /api/m/bimbingan
func (ctl *BimbinganController) Create(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.BimbinganCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mhs studentModel.MahasiswaModel
	if err := ctl.DB.First(&mhs, "mahasiswa_id = ?", mhsID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if mhs.MahasiswaDosenPembimbingID == nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Dosen pembimbing belum ditetapkan. Silakan hubungi koordinator PKL.")
	}

	var sebelumnya int64
	if err := ctl.DB.Model(&m.GuidanceSessionModel{}).
		Where("bimbingan_mahasiswa_id = ?", mhsID).
		Count(&sebelumnya).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	tanggal, _ := time.Parse("2006-01-02", req.Tanggal)
	row := svc.NewGuidanceSession(&mhs, svc.SessionInput{
		Tanggal:          tanggal,
		JamMulai:         parseJam(req.JamMulai, tanggal),
		JamSelesai:       parseJam(req.JamSelesai, tanggal),
		Metode:           m.MetodeBimbingan(req.Metode),
		Platform:         req.Platform,
		Topik:            req.Topik,
		RingkasanDiskusi: req.RingkasanDiskusi,
		TindakLanjut:     req.TindakLanjut,
	}, int(sebelumnya))

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi bimbingan diajukan", row)
}

// GET /api/m/bimbingan
func (ctl *BimbinganController) ListMine(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []m.GuidanceSessionModel
	if err := ctl.DB.
		Where("bimbingan_mahasiswa_id = ?", mhsID).
		Order("bimbingan_pertemuan_ke ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var selesai int64
	if err := ctl.DB.Model(&m.GuidanceSessionModel{}).
		Where("bimbingan_mahasiswa_id = ? AND bimbingan_status = ?", mhsID, m.BimbinganDone).
		Count(&selesai).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Riwayat bimbingan", fiber.Map{
		"sessions":       rows,
		"total_selesai":  selesai,
		"syarat_seminar": selesai >= 6,
	})
}

/* =========================
   Dosen pembimbing
   ========================= */

// GET /api/d/bimbingan?mahasiswa_id=&status=
func (ctl *BimbinganController) ListForDosen(c *fiber.Ctx) error {
	dosenID, err := helper.GetDosenID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctl.DB.Model(&m.GuidanceSessionModel{}).Where("bimbingan_dosen_pembimbing_id = ?", dosenID)
	if raw := strings.TrimSpace(c.Query("mahasiswa_id")); raw != "" {
		mid, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "mahasiswa_id invalid")
		}
		db = db.Where("bimbingan_mahasiswa_id = ?", mid)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		db = db.Where("bimbingan_status = ?", status)
	}

	var rows []m.GuidanceSessionModel
	if err := db.Order("bimbingan_tanggal ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Sesi bimbingan", rows)
}

// POST /api/d/bimbingan/:id/validate — PLANNED → DONE/CANCELLED.
func (ctl *BimbinganController) ValidateSession(c *fiber.Ctx) error {
	dosenID, err := helper.GetDosenID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "bimbingan id invalid")
	}

	var req d.BimbinganValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.GuidanceSessionModel
	if err := ctl.DB.First(&row, "bimbingan_id = ? AND bimbingan_dosen_pembimbing_id = ?", id, dosenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sesi bimbingan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.BimbinganStatus != m.BimbinganPlanned {
		return helper.Error(c, fiber.StatusConflict, "Sesi sudah divalidasi.")
	}

	row.BimbinganStatus = m.StatusBimbingan(req.Status)
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Validasi bimbingan tersimpan", row)
}
