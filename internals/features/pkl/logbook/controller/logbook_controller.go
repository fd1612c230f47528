// file: internals/features/pkl/logbook/controller/logbook_controller.go
package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "pklku_backend/internals/features/masterdata/students/model"
	d "pklku_backend/internals/features/pkl/logbook/dto"
	m "pklku_backend/internals/features/pkl/logbook/model"
	helper "pklku_backend/internals/helpers"
)

type LogbookController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLogbookController(db *gorm.DB) *LogbookController {
	return &LogbookController{DB: db, Validate: validator.New()}
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

// POST /api/m/logbook
// Entri baru selalu DRAFT; pembimbing & periode disalin dari profil.
func (ctl *LogbookController) Create(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.LogbookCreateRequest
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

	tanggal, _ := time.Parse("2006-01-02", req.Tanggal)
	row := m.LogbookEntryModel{
		LogbookMahasiswaID:       mhsID,
		LogbookDosenPembimbingID: mhs.MahasiswaDosenPembimbingID,
		LogbookPeriodeID:         mhs.MahasiswaPeriodeID,
		LogbookTanggal:           tanggal,
		LogbookJamMulai:          parseJam(req.JamMulai, tanggal),
		LogbookJamSelesai:        parseJam(req.JamSelesai, tanggal),
		LogbookAktivitas:         req.Aktivitas,
		LogbookTools:             req.Tools,
		LogbookOutput:            req.Output,
		LogbookStatus:            m.LogbookDraft,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Entri logbook tersimpan", row)
}

// GET /api/m/logbook?status=
func (ctl *LogbookController) ListMine(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.LogbookEntryModel{}).Where("logbook_mahasiswa_id = ?", mhsID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		db = db.Where("logbook_status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.LogbookEntryModel
	if err := db.Order("logbook_tanggal DESC, logbook_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Logbook", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// findMine memastikan entri milik mahasiswa yang login.
func (ctl *LogbookController) findMine(c *fiber.Ctx) (*m.LogbookEntryModel, error) {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "logbook id invalid")
	}

	var row m.LogbookEntryModel
	if err := ctl.DB.First(&row, "logbook_id = ? AND logbook_mahasiswa_id = ?", id, mhsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Entri logbook tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &row, nil
}

// PUT /api/m/logbook/:id — hanya DRAFT/REVISI yang boleh diubah.
func (ctl *LogbookController) Update(c *fiber.Ctx) error {
	row, err := ctl.findMine(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !row.Editable() {
		return helper.Error(c, fiber.StatusConflict, "Entri sudah dikirim/disetujui dan tidak bisa diubah.")
	}

	var req d.LogbookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Tanggal != nil {
		t, _ := time.Parse("2006-01-02", *req.Tanggal)
		row.LogbookTanggal = t
	}
	if req.JamMulai != nil {
		row.LogbookJamMulai = parseJam(req.JamMulai, row.LogbookTanggal)
	}
	if req.JamSelesai != nil {
		row.LogbookJamSelesai = parseJam(req.JamSelesai, row.LogbookTanggal)
	}
	if req.Aktivitas != nil {
		row.LogbookAktivitas = *req.Aktivitas
	}
	if req.Tools != nil {
		row.LogbookTools = req.Tools
	}
	if req.Output != nil {
		row.LogbookOutput = req.Output
	}

	// Perbaikan atas entri REVISI kembali ke DRAFT untuk dikirim ulang
	if row.LogbookStatus == m.LogbookRevisi {
		row.LogbookStatus = m.LogbookDraft
	}

	if err := ctl.DB.Save(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Entri logbook diperbarui", row)
}

// POST /api/m/logbook/:id/submit
func (ctl *LogbookController) Submit(c *fiber.Ctx) error {
	row, err := ctl.findMine(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !row.Editable() {
		return helper.Error(c, fiber.StatusConflict, "Entri sudah dikirim/disetujui.")
	}

	row.LogbookStatus = m.LogbookSubmit
	if err := ctl.DB.Save(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Entri logbook dikirim ke dosen pembimbing", row)
}

// DELETE /api/m/logbook/:id — hanya DRAFT.
func (ctl *LogbookController) Delete(c *fiber.Ctx) error {
	row, err := ctl.findMine(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if row.LogbookStatus != m.LogbookDraft {
		return helper.Error(c, fiber.StatusConflict, "Hanya entri DRAFT yang bisa dihapus.")
	}

	if err := ctl.DB.Delete(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Entri logbook dihapus", nil)
}

// GET /api/m/logbook/export — unduh CSV seluruh logbook sendiri.
func (ctl *LogbookController) ExportCSV(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []m.LogbookEntryModel
	if err := ctl.DB.
		Where("logbook_mahasiswa_id = ?", mhsID).
		Order("logbook_tanggal ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"tanggal", "jam_mulai", "jam_selesai", "aktivitas", "tools", "output", "status", "catatan_dosen"})
	for _, r := range rows {
		jm, js, out, cat := "", "", "", ""
		if r.LogbookJamMulai != nil {
			jm = r.LogbookJamMulai.Format("15:04")
		}
		if r.LogbookJamSelesai != nil {
			js = r.LogbookJamSelesai.Format("15:04")
		}
		if r.LogbookOutput != nil {
			out = *r.LogbookOutput
		}
		if r.LogbookCatatanDosen != nil {
			cat = *r.LogbookCatatanDosen
		}
		_ = w.Write([]string{
			r.LogbookTanggal.Format("2006-01-02"),
			jm, js,
			r.LogbookAktivitas,
			strings.Join(r.LogbookTools, "; "),
			out,
			string(r.LogbookStatus),
			cat,
		})
	}
	w.Flush()

	filename := fmt.Sprintf("logbook_%s.csv", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(sb.String())
}

/* =========================
   Dosen pembimbing
   ========================= */

// GET /api/d/logbook?mahasiswa_id=&status=
func (ctl *LogbookController) ListForDosen(c *fiber.Ctx) error {
	dosenID, err := helper.GetDosenID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.LogbookEntryModel{}).Where("logbook_dosen_pembimbing_id = ?", dosenID)
	if raw := strings.TrimSpace(c.Query("mahasiswa_id")); raw != "" {
		mid, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "mahasiswa_id invalid")
		}
		db = db.Where("logbook_mahasiswa_id = ?", mid)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		db = db.Where("logbook_status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.LogbookEntryModel
	if err := db.Order("logbook_tanggal ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Logbook bimbingan", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/d/logbook/:id/review — setujui atau minta revisi.
func (ctl *LogbookController) Review(c *fiber.Ctx) error {
	dosenID, err := helper.GetDosenID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "logbook id invalid")
	}

	var req d.LogbookReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.LogbookEntryModel
	if err := ctl.DB.First(&row, "logbook_id = ? AND logbook_dosen_pembimbing_id = ?", id, dosenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Entri logbook tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.LogbookStatus != m.LogbookSubmit {
		return helper.Error(c, fiber.StatusConflict, "Hanya entri SUBMIT yang bisa dinilai.")
	}

	row.LogbookStatus = m.StatusLogbook(req.Status)
	row.LogbookCatatanDosen = req.Catatan
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Penilaian logbook tersimpan", row)
}
