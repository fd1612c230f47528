// file: internals/features/masterdata/periods/controller/periode_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "pklku_backend/internals/features/masterdata/periods/dto"
	m "pklku_backend/internals/features/masterdata/periods/model"
	helper "pklku_backend/internals/helpers"
)

type PeriodeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPeriodeController(db *gorm.DB) *PeriodeController {
	return &PeriodeController{DB: db, Validate: validator.New()}
}

func parseTanggal(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// POST /api/k/periode
func (ctl *PeriodeController) Create(c *fiber.Ctx) error {
	var req d.PeriodeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	mulai, _ := parseTanggal(req.TanggalMulai)
	selesai, _ := parseTanggal(req.TanggalSelesai)
	if !selesai.After(mulai) {
		return helper.Error(c, fiber.StatusBadRequest, "tanggal_selesai harus setelah tanggal_mulai")
	}

	row := m.PeriodePKLModel{
		PeriodeNama:           strings.TrimSpace(req.Nama),
		PeriodeTahunAjaran:    req.TahunAjaran,
		PeriodeSemester:       m.Semester(req.Semester),
		PeriodeTanggalMulai:   mulai,
		PeriodeTanggalSelesai: selesai,
		PeriodeAktif:          true,
	}
	if req.Aktif != nil {
		row.PeriodeAktif = *req.Aktif
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Periode PKL ditambahkan", row)
}

// GET /api/k/periode?aktif=true
func (ctl *PeriodeController) List(c *fiber.Ctx) error {
	db := ctl.DB.Model(&m.PeriodePKLModel{})
	if aktif := c.Query("aktif"); aktif != "" {
		db = db.Where("periode_aktif = ?", aktif == "true")
	}

	var rows []m.PeriodePKLModel
	if err := db.Order("periode_tanggal_mulai DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Daftar periode PKL", rows)
}

// GET /api/k/periode/:id
func (ctl *PeriodeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "periode id invalid")
	}

	var row m.PeriodePKLModel
	if err := ctl.DB.First(&row, "periode_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Periode tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detail periode PKL", row)
}

// PUT /api/k/periode/:id
func (ctl *PeriodeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "periode id invalid")
	}

	var req d.PeriodeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.PeriodePKLModel
	if err := ctl.DB.First(&row, "periode_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Periode tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Nama != nil {
		row.PeriodeNama = strings.TrimSpace(*req.Nama)
	}
	if req.TahunAjaran != nil {
		row.PeriodeTahunAjaran = *req.TahunAjaran
	}
	if req.Semester != nil {
		row.PeriodeSemester = m.Semester(*req.Semester)
	}
	if req.TanggalMulai != nil {
		t, _ := parseTanggal(*req.TanggalMulai)
		row.PeriodeTanggalMulai = t
	}
	if req.TanggalSelesai != nil {
		t, _ := parseTanggal(*req.TanggalSelesai)
		row.PeriodeTanggalSelesai = t
	}
	if !row.PeriodeTanggalSelesai.After(row.PeriodeTanggalMulai) {
		return helper.Error(c, fiber.StatusBadRequest, "tanggal_selesai harus setelah tanggal_mulai")
	}
	if req.Aktif != nil {
		row.PeriodeAktif = *req.Aktif
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Periode PKL diperbarui", row)
}

// DELETE /api/k/periode/:id
func (ctl *PeriodeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "periode id invalid")
	}

	res := ctl.DB.Delete(&m.PeriodePKLModel{}, "periode_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Periode tidak ditemukan")
	}

	return helper.Success(c, "Periode PKL dihapus", nil)
}
