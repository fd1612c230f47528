// file: internals/features/pkl/seminars/dto/seminar_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	svc "pklku_backend/internals/features/pkl/seminars/service"
)

/* =======================================================
   Util & parsing
   ======================================================= */

var layoutDateTime = []string{
	time.RFC3339,       // 2025-01-10T08:00:00Z
	"2006-01-02T15:04", // datetime-local dari form
}

func parseJadwal(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty datetime")
	}
	for _, layout := range layoutDateTime {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime format (want RFC3339 or YYYY-MM-DDTHH:mm)")
}

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

/* =======================================================
   Request DTOs
   ======================================================= */

// Mahasiswa mengajukan seminar hasil
type SeminarSubmitRequest struct {
	JudulLaporan string  `json:"judul_laporan" validate:"required,max=255"`
	FileLaporan  *string `json:"file_laporan,omitempty" validate:"omitempty,max=1000"`
}

// Koordinator menjadwalkan seminar
type SeminarScheduleRequest struct {
	DosenPenguji1ID *string `json:"dosen_penguji_1_id,omitempty"`
	DosenPenguji2ID *string `json:"dosen_penguji_2_id,omitempty"`
	Jadwal          *string `json:"jadwal,omitempty"` // RFC3339 atau YYYY-MM-DDTHH:mm
	Ruang           string  `json:"ruang"`
}

// ToServiceRequest menerjemahkan payload mentah ke request service.
// Field kosong dibiarkan nil supaya validator service yang memutuskan
// (pelanggaran dikumpulkan, bukan ditolak satu-satu di parsing).
func (r *SeminarScheduleRequest) ToServiceRequest() (svc.ScheduleRequest, error) {
	out := svc.ScheduleRequest{Ruang: strings.TrimSpace(r.Ruang)}

	p1, err := uuidPtrFromString(r.DosenPenguji1ID)
	if err != nil {
		return out, fmt.Errorf("dosen_penguji_1_id: %w", err)
	}
	out.Penguji1ID = p1

	p2, err := uuidPtrFromString(r.DosenPenguji2ID)
	if err != nil {
		return out, fmt.Errorf("dosen_penguji_2_id: %w", err)
	}
	out.Penguji2ID = p2

	if r.Jadwal != nil && strings.TrimSpace(*r.Jadwal) != "" {
		t, err := parseJadwal(*r.Jadwal)
		if err != nil {
			return out, fmt.Errorf("jadwal: %w", err)
		}
		out.Jadwal = &t
	}

	return out, nil
}

// Koordinator menutup seminar (SELESAI/DITOLAK)
type SeminarCloseRequest struct {
	Status string `json:"status" validate:"required,oneof=SELESAI DITOLAK"`
}
