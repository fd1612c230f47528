// file: internals/features/masterdata/students/controller/mahasiswa_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "pklku_backend/internals/features/masterdata/students/dto"
	m "pklku_backend/internals/features/masterdata/students/model"
	helper "pklku_backend/internals/helpers"
)

type MahasiswaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMahasiswaController(db *gorm.DB) *MahasiswaController {
	return &MahasiswaController{DB: db, Validate: validator.New()}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "23505") || strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

func parseUUIDPtr(s *string, field string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, field+" invalid")
	}
	return &id, nil
}

// POST /api/k/mahasiswa
func (ctl *MahasiswaController) Create(c *fiber.Ctx) error {
	var req d.MahasiswaCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := m.MahasiswaModel{
		MahasiswaNIM:      strings.TrimSpace(req.NIM),
		MahasiswaNama:     strings.TrimSpace(req.Nama),
		MahasiswaEmail:    req.Email,
		MahasiswaNoHP:     req.NoHP,
		MahasiswaAngkatan: req.Angkatan,
	}
	uid, err := parseUUIDPtr(req.UserID, "user_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	row.MahasiswaUserID = uid
	if req.Prodi != nil {
		row.MahasiswaProdi = *req.Prodi
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "NIM atau akun mahasiswa sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mahasiswa ditambahkan", row)
}

// GET /api/k/mahasiswa?search=&angkatan=&status_pkl=
func (ctl *MahasiswaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.MahasiswaModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		db = db.Where("mahasiswa_nama ILIKE ? OR mahasiswa_nim ILIKE ?", like, like)
	}
	if angkatan := c.QueryInt("angkatan"); angkatan > 0 {
		db = db.Where("mahasiswa_angkatan = ?", angkatan)
	}
	if status := strings.TrimSpace(c.Query("status_pkl")); status != "" {
		db = db.Where("mahasiswa_status_pkl = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.MahasiswaModel
	if err := db.Order("mahasiswa_nim ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar mahasiswa", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/k/mahasiswa/:id
func (ctl *MahasiswaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "mahasiswa id invalid")
	}

	var row m.MahasiswaModel
	if err := ctl.DB.First(&row, "mahasiswa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mahasiswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detail mahasiswa", row)
}

// PUT /api/k/mahasiswa/:id
func (ctl *MahasiswaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "mahasiswa id invalid")
	}

	var req d.MahasiswaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.MahasiswaModel
	if err := ctl.DB.First(&row, "mahasiswa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mahasiswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	uid, err := parseUUIDPtr(req.UserID, "user_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if uid != nil {
		row.MahasiswaUserID = uid
	}
	if req.Nama != nil {
		row.MahasiswaNama = strings.TrimSpace(*req.Nama)
	}
	if req.Email != nil {
		row.MahasiswaEmail = req.Email
	}
	if req.NoHP != nil {
		row.MahasiswaNoHP = req.NoHP
	}
	if req.Angkatan != nil {
		row.MahasiswaAngkatan = *req.Angkatan
	}
	if req.Prodi != nil {
		row.MahasiswaProdi = *req.Prodi
	}
	if req.StatusPKL != nil {
		row.MahasiswaStatusPKL = m.StatusPKL(*req.StatusPKL)
	}

	for _, f := range []struct {
		src   *string
		dst   **uuid.UUID
		field string
	}{
		{req.DosenPembimbingID, &row.MahasiswaDosenPembimbingID, "dosen_pembimbing_id"},
		{req.MitraID, &row.MahasiswaMitraID, "mitra_id"},
		{req.PeriodeID, &row.MahasiswaPeriodeID, "periode_id"},
	} {
		v, err := parseUUIDPtr(f.src, f.field)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if v != nil {
			*f.dst = v
		}
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "Akun mahasiswa sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Mahasiswa diperbarui", row)
}

// DELETE /api/k/mahasiswa/:id
func (ctl *MahasiswaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "mahasiswa id invalid")
	}

	res := ctl.DB.Delete(&m.MahasiswaModel{}, "mahasiswa_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Mahasiswa tidak ditemukan")
	}

	return helper.Success(c, "Mahasiswa dihapus", nil)
}

// GET /api/m/profile — profil mahasiswa yang sedang login.
func (ctl *MahasiswaController) MyProfile(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.MahasiswaModel
	if err := ctl.DB.First(&row, "mahasiswa_id = ?", mhsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Profil mahasiswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Profil mahasiswa", row)
}

// GET /api/d/mahasiswa — mahasiswa bimbingan dosen yang login.
func (ctl *MahasiswaController) ListBimbingan(c *fiber.Ctx) error {
	dosenID, err := helper.GetDosenID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []m.MahasiswaModel
	if err := ctl.DB.
		Where("mahasiswa_dosen_pembimbing_id = ?", dosenID).
		Order("mahasiswa_nim ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Mahasiswa bimbingan", rows)
}
