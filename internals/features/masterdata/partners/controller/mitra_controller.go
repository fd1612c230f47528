// file: internals/features/masterdata/partners/controller/mitra_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "pklku_backend/internals/features/masterdata/partners/dto"
	m "pklku_backend/internals/features/masterdata/partners/model"
	studentModel "pklku_backend/internals/features/masterdata/students/model"
	helper "pklku_backend/internals/helpers"
)

type MitraController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMitraController(db *gorm.DB) *MitraController {
	return &MitraController{DB: db, Validate: validator.New()}
}

// POST /api/k/mitra
func (ctl *MitraController) Create(c *fiber.Ctx) error {
	var req d.MitraCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := m.MitraModel{
		MitraNama:        strings.TrimSpace(req.Nama),
		MitraAlamat:      req.Alamat,
		MitraKota:        req.Kota,
		MitraPICNama:     req.PICNama,
		MitraPICEmail:    req.PICEmail,
		MitraPICNoHP:     req.PICNoHP,
		MitraBidangUsaha: req.BidangUsaha,
	}
	if req.KuotaPKL != nil {
		row.MitraKuotaPKL = *req.KuotaPKL
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mitra ditambahkan", row)
}

// GET /api/k/mitra?search=&kota=
// Juga dipakai mahasiswa (read-only) saat memilih tempat PKL.
func (ctl *MitraController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.MitraModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		db = db.Where("mitra_nama ILIKE ? OR mitra_bidang_usaha ILIKE ?", like, like)
	}
	if kota := strings.TrimSpace(c.Query("kota")); kota != "" {
		db = db.Where("mitra_kota ILIKE ?", kota)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.MitraModel
	if err := db.Order("mitra_nama ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar mitra", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/k/mitra/:id — detail + jumlah mahasiswa aktif di mitra ini.
func (ctl *MitraController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "mitra id invalid")
	}

	var row m.MitraModel
	if err := ctl.DB.First(&row, "mitra_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mitra tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var terisi int64
	if err := ctl.DB.Model(&studentModel.MahasiswaModel{}).
		Where("mahasiswa_mitra_id = ? AND mahasiswa_status_pkl = ?", id, studentModel.StatusSedangPKL).
		Count(&terisi).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detail mitra", fiber.Map{
		"mitra":          row,
		"kuota_pkl":      row.MitraKuotaPKL,
		"kuota_terpakai": terisi,
		"melebihi_kuota": terisi > int64(row.MitraKuotaPKL),
	})
}

// PUT /api/k/mitra/:id
func (ctl *MitraController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "mitra id invalid")
	}

	var req d.MitraUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.MitraModel
	if err := ctl.DB.First(&row, "mitra_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mitra tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Nama != nil {
		row.MitraNama = strings.TrimSpace(*req.Nama)
	}
	if req.Alamat != nil {
		row.MitraAlamat = req.Alamat
	}
	if req.Kota != nil {
		row.MitraKota = req.Kota
	}
	if req.PICNama != nil {
		row.MitraPICNama = req.PICNama
	}
	if req.PICEmail != nil {
		row.MitraPICEmail = req.PICEmail
	}
	if req.PICNoHP != nil {
		row.MitraPICNoHP = req.PICNoHP
	}
	if req.BidangUsaha != nil {
		row.MitraBidangUsaha = req.BidangUsaha
	}
	if req.KuotaPKL != nil {
		row.MitraKuotaPKL = *req.KuotaPKL
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Mitra diperbarui", row)
}

// DELETE /api/k/mitra/:id
func (ctl *MitraController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "mitra id invalid")
	}

	res := ctl.DB.Delete(&m.MitraModel{}, "mitra_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Mitra tidak ditemukan")
	}

	return helper.Success(c, "Mitra dihapus", nil)
}
