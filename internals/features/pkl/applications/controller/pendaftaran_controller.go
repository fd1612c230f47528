// file: internals/features/pkl/applications/controller/pendaftaran_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "pklku_backend/internals/features/pkl/applications/dto"
	m "pklku_backend/internals/features/pkl/applications/model"
	svc "pklku_backend/internals/features/pkl/applications/service"
	helper "pklku_backend/internals/helpers"
)

type PendaftaranController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPendaftaranController(db *gorm.DB) *PendaftaranController {
	return &PendaftaranController{DB: db, Validate: validator.New()}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "23505") || strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

/* =========================
   Mahasiswa
   ========================= */

// POST /api/m/pendaftaran
func (ctl *PendaftaranController) Create(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.PendaftaranCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	jenis := m.JenisPKL(req.JenisPKL)
	if jenis == m.JenisKelompok && len(req.AnggotaKelompok) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "anggota_kelompok wajib untuk PKL kelompok")
	}

	periodeID, _ := uuid.Parse(req.PeriodeID)
	mitraID, _ := uuid.Parse(req.MitraID)

	row := m.PendaftaranPKLModel{
		PendaftaranMahasiswaID:     mhsID,
		PendaftaranPeriodeID:       periodeID,
		PendaftaranMitraID:         mitraID,
		PendaftaranJenisPKL:        jenis,
		PendaftaranAnggotaKelompok: req.AnggotaKelompok,
		PendaftaranSuratPenerimaan: req.SuratPenerimaan,
		PendaftaranStatus:          m.PendaftaranDikirim,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "Anda sudah mendaftar PKL untuk periode ini.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Pendaftaran PKL terkirim. Menunggu persetujuan koordinator.", row)
}

// GET /api/m/pendaftaran
func (ctl *PendaftaranController) ListMine(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []m.PendaftaranPKLModel
	if err := ctl.DB.
		Where("pendaftaran_mahasiswa_id = ?", mhsID).
		Order("pendaftaran_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Riwayat pendaftaran PKL", rows)
}

/* =========================
   Koordinator
   ========================= */

// GET /api/k/pendaftaran?status=
func (ctl *PendaftaranController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.PendaftaranPKLModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		db = db.Where("pendaftaran_status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.PendaftaranPKLModel
	if err := db.Order("pendaftaran_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar pendaftaran PKL", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/k/pendaftaran/:id
func (ctl *PendaftaranController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "pendaftaran id invalid")
	}

	var row m.PendaftaranPKLModel
	if err := ctl.DB.First(&row, "pendaftaran_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detail pendaftaran PKL", row)
}

// POST /api/k/pendaftaran/:id/approve
// Persetujuan sekaligus menyinkronkan profil mahasiswa (periode, mitra,
// pembimbing, status SEDANG) dalam satu transaksi.
func (ctl *PendaftaranController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "pendaftaran id invalid")
	}

	var req d.PendaftaranApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	pembimbingID, _ := uuid.Parse(req.DosenPembimbingID)

	row, err := svc.ApproveApplication(ctl.DB, id, pembimbingID, req.Catatan)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		if errors.Is(err, svc.ErrPendaftaranSudahDiproses) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Pendaftaran disetujui. Profil mahasiswa diperbarui.", row)
}

// POST /api/k/pendaftaran/:id/reject
func (ctl *PendaftaranController) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "pendaftaran id invalid")
	}

	var req d.PendaftaranRejectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := svc.RejectApplication(ctl.DB, id, req.Catatan)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		if errors.Is(err, svc.ErrPendaftaranSudahDiproses) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Pendaftaran ditolak.", row)
}
