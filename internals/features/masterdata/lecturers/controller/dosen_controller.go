// file: internals/features/masterdata/lecturers/controller/dosen_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "pklku_backend/internals/features/masterdata/lecturers/dto"
	m "pklku_backend/internals/features/masterdata/lecturers/model"
	studentModel "pklku_backend/internals/features/masterdata/students/model"
	helper "pklku_backend/internals/helpers"
)

type DosenController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDosenController(db *gorm.DB) *DosenController {
	return &DosenController{DB: db, Validate: validator.New()}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "23505") || strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// bebanBimbingan menghitung mahasiswa aktif yang dibimbing dosen ini.
func (ctl *DosenController) bebanBimbingan(dosenID uuid.UUID) (int64, error) {
	var n int64
	err := ctl.DB.Model(&studentModel.MahasiswaModel{}).
		Where("mahasiswa_dosen_pembimbing_id = ? AND mahasiswa_status_pkl = ?", dosenID, studentModel.StatusSedangPKL).
		Count(&n).Error
	return n, err
}

// POST /api/k/dosen
func (ctl *DosenController) Create(c *fiber.Ctx) error {
	var req d.DosenCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := m.DosenModel{
		DosenNIDN:  strings.TrimSpace(req.NIDN),
		DosenNama:  strings.TrimSpace(req.Nama),
		DosenEmail: req.Email,
		DosenNoHP:  req.NoHP,
	}
	if req.UserID != nil {
		uid, err := uuid.Parse(*req.UserID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "user_id invalid")
		}
		row.DosenUserID = &uid
	}
	if req.Prodi != nil {
		row.DosenProdi = *req.Prodi
	}
	if req.KuotaBimbingan != nil {
		row.DosenKuotaBimbingan = *req.KuotaBimbingan
	}
	if req.IsKoordinatorPKL != nil {
		row.DosenIsKoordinatorPKL = *req.IsKoordinatorPKL
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "NIDN atau akun dosen sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Dosen ditambahkan", row)
}

// GET /api/k/dosen?search=
func (ctl *DosenController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.DosenModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		db = db.Where("dosen_nama ILIKE ? OR dosen_nidn ILIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.DosenModel
	if err := db.Order("dosen_nama ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar dosen", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/k/dosen/:id — detail + beban bimbingan berjalan.
func (ctl *DosenController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "dosen id invalid")
	}

	var row m.DosenModel
	if err := ctl.DB.First(&row, "dosen_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Dosen tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	beban, err := ctl.bebanBimbingan(row.DosenID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detail dosen", fiber.Map{
		"dosen":           row,
		"beban_bimbingan": beban,
		"kuota_bimbingan": row.DosenKuotaBimbingan,
		"melebihi_kuota":  beban > int64(row.DosenKuotaBimbingan),
	})
}

// PUT /api/k/dosen/:id
// Kuota bimbingan hanya soft limit: penugasan di atas kuota tetap
// diperbolehkan, cukup dicatat sebagai peringatan.
func (ctl *DosenController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "dosen id invalid")
	}

	var req d.DosenUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.DosenModel
	if err := ctl.DB.First(&row, "dosen_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Dosen tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.UserID != nil {
		uid, err := uuid.Parse(*req.UserID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "user_id invalid")
		}
		row.DosenUserID = &uid
	}
	if req.Nama != nil {
		row.DosenNama = strings.TrimSpace(*req.Nama)
	}
	if req.Email != nil {
		row.DosenEmail = req.Email
	}
	if req.NoHP != nil {
		row.DosenNoHP = req.NoHP
	}
	if req.Prodi != nil {
		row.DosenProdi = *req.Prodi
	}
	if req.KuotaBimbingan != nil {
		row.DosenKuotaBimbingan = *req.KuotaBimbingan
		if beban, err := ctl.bebanBimbingan(row.DosenID); err == nil && beban > int64(row.DosenKuotaBimbingan) {
			log.Printf("[WARN] kuota dosen %s (%d) di bawah beban bimbingan berjalan (%d)",
				row.DosenNIDN, row.DosenKuotaBimbingan, beban)
		}
	}
	if req.IsKoordinatorPKL != nil {
		row.DosenIsKoordinatorPKL = *req.IsKoordinatorPKL
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "Akun dosen sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Dosen diperbarui", row)
}

// DELETE /api/k/dosen/:id
func (ctl *DosenController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "dosen id invalid")
	}

	res := ctl.DB.Delete(&m.DosenModel{}, "dosen_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Dosen tidak ditemukan")
	}

	return helper.Success(c, "Dosen dihapus", nil)
}
