// file: internals/features/pkl/seminars/controller/seminar_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	guidanceModel "pklku_backend/internals/features/pkl/guidance/model"
	d "pklku_backend/internals/features/pkl/seminars/dto"
	m "pklku_backend/internals/features/pkl/seminars/model"
	svc "pklku_backend/internals/features/pkl/seminars/service"
	studentModel "pklku_backend/internals/features/masterdata/students/model"
	helper "pklku_backend/internals/helpers"
)

// Minimal sesi bimbingan DONE sebelum mahasiswa boleh mendaftar seminar
const minBimbinganSelesai = 6

/* =========================
   Controller & Constructor
   ========================= */

type SeminarController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSeminarController(db *gorm.DB) *SeminarController {
	return &SeminarController{DB: db, Validate: validator.New()}
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

// POST /api/m/seminar
// Mahasiswa mengajukan (atau memperbarui selama masih DIKIRIM) seminar hasil.
// Pembimbing & periode diisi otomatis dari data mahasiswa saat pengajuan.
func (ctl *SeminarController) Submit(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.SeminarSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mhs studentModel.MahasiswaModel
	if err := ctl.DB.First(&mhs, "mahasiswa_id = ?", mhsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data mahasiswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// Syarat pendaftaran: pembimbing & periode sudah ditetapkan + minimal
	// 6 sesi bimbingan berstatus DONE.
	if mhs.MahasiswaDosenPembimbingID == nil || mhs.MahasiswaPeriodeID == nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Dosen pembimbing / periode PKL belum ditetapkan. Silakan hubungi koordinator PKL.")
	}

	var selesai int64
	if err := ctl.DB.Model(&guidanceModel.GuidanceSessionModel{}).
		Where("bimbingan_mahasiswa_id = ? AND bimbingan_status = ?", mhsID, guidanceModel.BimbinganDone).
		Count(&selesai).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if selesai < minBimbinganSelesai {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"Anda belum memenuhi syarat pendaftaran seminar hasil PKL (minimal 6x bimbingan selesai).")
	}

	// Satu seminar per (mahasiswa, periode): kalau sudah ada dan masih
	// DIKIRIM, pengajuan ulang memperbarui judul/file.
	var seminar m.SeminarModel
	err = ctl.DB.
		Where("seminar_mahasiswa_id = ? AND seminar_periode_id = ?", mhsID, *mhs.MahasiswaPeriodeID).
		First(&seminar).Error

	switch {
	case err == nil:
		if seminar.SeminarStatus != m.SeminarDikirim {
			return helper.Error(c, fiber.StatusConflict,
				"Seminar sudah diproses koordinator dan tidak bisa diubah.")
		}
		seminar.SeminarJudulLaporan = req.JudulLaporan
		seminar.SeminarFileLaporan = req.FileLaporan
		if err := ctl.DB.Save(&seminar).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.Success(c, "Pendaftaran seminar diperbarui.", seminar)

	case errors.Is(err, gorm.ErrRecordNotFound):
		seminar = m.SeminarModel{
			SeminarMahasiswaID:       mhsID,
			SeminarPeriodeID:         *mhs.MahasiswaPeriodeID,
			SeminarDosenPembimbingID: mhs.MahasiswaDosenPembimbingID,
			SeminarJudulLaporan:      req.JudulLaporan,
			SeminarFileLaporan:       req.FileLaporan,
			SeminarStatus:            m.SeminarDikirim,
		}
		if err := ctl.DB.Create(&seminar).Error; err != nil {
			if isDuplicateKey(err) {
				return helper.Error(c, fiber.StatusConflict, "Seminar untuk periode ini sudah ada.")
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated,
			"Pendaftaran seminar hasil PKL berhasil dikirim. Menunggu penjadwalan oleh koordinator PKL.", seminar)

	default:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
}

// GET /api/m/seminar
// Mahasiswa melihat seminar miliknya + ringkasan nilai akhir.
func (ctl *SeminarController) MySeminar(c *fiber.Ctx) error {
	mhsID, err := helper.GetMahasiswaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var seminar m.SeminarModel
	if err := ctl.DB.
		Where("seminar_mahasiswa_id = ?", mhsID).
		Order("seminar_created_at DESC").
		First(&seminar).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Belum ada pendaftaran seminar.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return ctl.renderDetail(c, &seminar)
}

/* =========================
   Koordinator
   ========================= */

// GET /api/k/seminar?status=
func (ctl *SeminarController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.SeminarModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		db = db.Where("seminar_status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []m.SeminarModel
	if err := db.
		Order("seminar_status ASC, seminar_jadwal ASC NULLS LAST, seminar_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Daftar seminar", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/k/seminar/:id
func (ctl *SeminarController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "seminar id invalid")
	}

	var seminar m.SeminarModel
	if err := ctl.DB.First(&seminar, "seminar_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Seminar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return ctl.renderDetail(c, &seminar)
}

// POST /api/k/seminar/:id/schedule
// Validasi bentrok + commit atomik lewat service.ScheduleSeminar.
func (ctl *SeminarController) Schedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "seminar id invalid")
	}

	var req d.SeminarScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	svcReq, err := req.ToServiceRequest()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	seminar, violations, err := svc.ScheduleSeminar(ctl.DB, id, svcReq)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Seminar tidak ditemukan")
		}
		if errors.Is(err, svc.ErrSeminarNotSchedulable) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(violations) > 0 {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest,
			"Penjadwalan tidak valid, silakan periksa pesan kesalahan.", violations)
	}

	return helper.Success(c, "Penjadwalan seminar berhasil disimpan.", seminar)
}

// POST /api/k/seminar/:id/close
// Koordinator menutup seminar: SELESAI atau DITOLAK.
func (ctl *SeminarController) Close(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "seminar id invalid")
	}

	var req d.SeminarCloseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var seminar m.SeminarModel
	if err := ctl.DB.First(&seminar, "seminar_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Seminar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	seminar.SeminarStatus = m.StatusSeminar(req.Status)
	if err := ctl.DB.Save(&seminar).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Status seminar diperbarui.", seminar)
}

/* =========================
   Dosen
   ========================= */

// GET /api/d/seminar
// Daftar seminar di mana dosen ini menjadi penguji 1/2 atau pembimbing.
func (ctl *SeminarController) ListForDosen(c *fiber.Ctx) error {
	dosenID, err := helper.GetDosenID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []m.SeminarModel
	if err := ctl.DB.
		Where("seminar_dosen_penguji_1_id = ? OR seminar_dosen_penguji_2_id = ? OR seminar_dosen_pembimbing_id = ?",
			dosenID, dosenID, dosenID).
		Order("seminar_jadwal ASC NULLS LAST").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Daftar seminar", rows)
}

// GET /api/d/seminar/:id
// Detail seminar untuk dosen terkait (pembimbing/penguji) + rekap nilai.
func (ctl *SeminarController) GetForDosen(c *fiber.Ctx) error {
	dosenID, err := helper.GetDosenID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "seminar id invalid")
	}

	var seminar m.SeminarModel
	if err := ctl.DB.First(&seminar, "seminar_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Seminar tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	terkait := seminar.HasPenguji(dosenID) ||
		(seminar.SeminarDosenPembimbingID != nil && *seminar.SeminarDosenPembimbingID == dosenID)
	if !terkait {
		return helper.Error(c, fiber.StatusForbidden, "Anda tidak berhak mengakses seminar ini.")
	}

	return ctl.renderDetail(c, &seminar)
}

/* =========================
   Shared
   ========================= */

// renderDetail mengembalikan seminar + penilaian + nilai akhir (on demand).
func (ctl *SeminarController) renderDetail(c *fiber.Ctx, seminar *m.SeminarModel) error {
	var assessments []m.SeminarAssessmentModel
	if err := ctl.DB.
		Where("assessment_seminar_id = ?", seminar.SeminarID).
		Order("assessment_created_at ASC").
		Find(&assessments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	data := fiber.Map{
		"seminar":     seminar,
		"assessments": assessments,
	}
	if score, grade, ok := svc.FinalGrade(assessments); ok {
		data["final_score"] = score
		data["final_grade"] = grade
	} else {
		data["final_score"] = nil
		data["final_grade"] = nil
	}

	return helper.Success(c, "Detail seminar", data)
}
