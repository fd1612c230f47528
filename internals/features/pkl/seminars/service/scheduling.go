// file: internals/features/pkl/seminars/service/scheduling.go
package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pklku_backend/internals/constants"
	m "pklku_backend/internals/features/pkl/seminars/model"
)

/* =======================================================
   Pemeriksa bentrok jadwal seminar.

   ValidateSchedule pure: menerima seminar target, kandidat
   penjadwalan, dan seminar-seminar lain pada jam yang sama,
   lalu mengumpulkan SEMUA pelanggaran (tidak short-circuit)
   supaya koordinator melihat daftar lengkap dalam satu kali
   submit.

   ScheduleSeminar membungkus validasi + tulis dalam satu
   transaksi serializable, sehingga dua koordinator yang
   menjadwalkan bersamaan tidak bisa sama-sama lolos.
   ======================================================= */

type ViolationKind string

const (
	MissingExaminer   ViolationKind = "MISSING_EXAMINER"
	DuplicateExaminer ViolationKind = "DUPLICATE_EXAMINER"
	ExaminerIsAdvisor ViolationKind = "EXAMINER_IS_ADVISOR"
	MissingSchedule   ViolationKind = "MISSING_SCHEDULE"
	InvalidRoom       ViolationKind = "INVALID_ROOM"
	RoomConflict      ViolationKind = "ROOM_CONFLICT"
	ExaminerConflict  ViolationKind = "EXAMINER_CONFLICT"
)

type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

type ScheduleRequest struct {
	Penguji1ID *uuid.UUID
	Penguji2ID *uuid.UUID
	Jadwal     *time.Time
	Ruang      string
}

// ValidateSchedule memeriksa kandidat penjadwalan terhadap seminar lain.
// others: seminar selain sem (exclude by id) pada jadwal yang sama.
func ValidateSchedule(sem *m.SeminarModel, req ScheduleRequest, others []m.SeminarModel) []Violation {
	var vs []Violation

	if req.Penguji1ID == nil || req.Penguji2ID == nil {
		vs = append(vs, Violation{
			Kind:    MissingExaminer,
			Message: "Dua dosen penguji wajib dipilih.",
		})
	}

	if req.Penguji1ID != nil && req.Penguji2ID != nil && *req.Penguji1ID == *req.Penguji2ID {
		vs = append(vs, Violation{
			Kind:    DuplicateExaminer,
			Message: "Dosen penguji 1 dan 2 tidak boleh orang yang sama.",
		})
	}

	if sem.SeminarDosenPembimbingID != nil {
		pembimbing := *sem.SeminarDosenPembimbingID
		if (req.Penguji1ID != nil && *req.Penguji1ID == pembimbing) ||
			(req.Penguji2ID != nil && *req.Penguji2ID == pembimbing) {
			vs = append(vs, Violation{
				Kind:    ExaminerIsAdvisor,
				Message: "Dosen pembimbing tidak boleh menjadi dosen penguji.",
			})
		}
	}

	if req.Jadwal == nil {
		vs = append(vs, Violation{
			Kind:    MissingSchedule,
			Message: "Jadwal seminar wajib diisi.",
		})
	}

	if !constants.IsRuangSeminarValid(req.Ruang) {
		vs = append(vs, Violation{
			Kind:    InvalidRoom,
			Message: "Ruang seminar wajib dipilih dari daftar ruang yang tersedia.",
		})
	}

	// Bentrok sumber daya hanya relevan kalau jadwal terisi.
	if req.Jadwal == nil {
		return vs
	}

	for i := range others {
		o := &others[i]
		if o.SeminarID == sem.SeminarID {
			continue // re-submit data yang sama tidak bentrok dengan dirinya sendiri
		}
		if o.SeminarJadwal == nil || !o.SeminarJadwal.Equal(*req.Jadwal) {
			continue
		}

		if o.SeminarRuang != nil && *o.SeminarRuang == req.Ruang && req.Ruang != "" {
			vs = append(vs, Violation{
				Kind:    RoomConflict,
				Message: "Ruang ini sudah digunakan untuk seminar lain pada jam tersebut.",
			})
		}

		if (req.Penguji1ID != nil && o.HasPenguji(*req.Penguji1ID)) ||
			(req.Penguji2ID != nil && o.HasPenguji(*req.Penguji2ID)) {
			vs = append(vs, Violation{
				Kind:    ExaminerConflict,
				Message: "Salah satu dosen penguji sudah dijadwalkan menguji mahasiswa lain pada jam tersebut.",
			})
		}
	}

	return dedupeViolations(vs)
}

// Beberapa seminar lain bisa memicu kind yang sama; cukup satu per kind.
func dedupeViolations(vs []Violation) []Violation {
	seen := make(map[ViolationKind]bool, len(vs))
	out := vs[:0]
	for _, v := range vs {
		if seen[v.Kind] {
			continue
		}
		seen[v.Kind] = true
		out = append(out, v)
	}
	return out
}

var ErrSeminarNotSchedulable = errors.New("seminar sudah selesai/ditolak dan tidak bisa dijadwalkan ulang")

// ScheduleSeminar menjalankan cek bentrok + commit secara atomik.
// Transaksi serializable memastikan cek dan tulis melihat snapshot yang
// konsisten; dua penjadwalan bersamaan ke (jam, ruang) yang sama berakhir
// satu sukses dan satu gagal, tidak pernah dua-duanya lolos.
func ScheduleSeminar(db *gorm.DB, seminarID uuid.UUID, req ScheduleRequest) (*m.SeminarModel, []Violation, error) {
	var seminar m.SeminarModel
	var violations []Violation

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&seminar, "seminar_id = ?", seminarID).Error; err != nil {
			return err
		}

		if !seminar.Schedulable() {
			return ErrSeminarNotSchedulable
		}

		var others []m.SeminarModel
		if req.Jadwal != nil {
			if err := tx.
				Where("seminar_jadwal = ? AND seminar_id <> ?", *req.Jadwal, seminar.SeminarID).
				Find(&others).Error; err != nil {
				return err
			}
		}

		violations = ValidateSchedule(&seminar, req, others)
		if len(violations) > 0 {
			return errValidation // rollback; daftar pelanggaran ikut keluar
		}

		seminar.SeminarDosenPenguji1ID = req.Penguji1ID
		seminar.SeminarDosenPenguji2ID = req.Penguji2ID
		seminar.SeminarJadwal = req.Jadwal
		ruang := req.Ruang
		seminar.SeminarRuang = &ruang
		seminar.SeminarStatus = m.SeminarDijadwalkan

		return tx.Save(&seminar).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if txErr != nil {
		if errors.Is(txErr, errValidation) {
			return nil, violations, nil
		}
		if isSerializationFailure(txErr) {
			return nil, nil, fmt.Errorf("penjadwalan bentrok dengan transaksi lain, silakan coba lagi: %w", txErr)
		}
		return nil, nil, txErr
	}

	return &seminar, nil, nil
}

// sentinel internal untuk membatalkan transaksi saat validasi gagal
var errValidation = errors.New("schedule validation failed")

// SQLSTATE 40001 = serialization_failure
func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "40001") || strings.Contains(s, "could not serialize")
}
