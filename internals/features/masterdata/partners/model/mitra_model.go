package model

import (
	"time"

	"github.com/google/uuid"
)

// MitraModel — map ke tabel mitra (perusahaan/instansi tempat PKL).
type MitraModel struct {
	MitraID uuid.UUID `json:"mitra_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:mitra_id"`

	MitraNama   string  `json:"mitra_nama" gorm:"size:200;not null;column:mitra_nama"`
	MitraAlamat *string `json:"mitra_alamat,omitempty" gorm:"type:text;column:mitra_alamat"`
	MitraKota   *string `json:"mitra_kota,omitempty" gorm:"size:100;column:mitra_kota"`

	MitraPICNama  *string `json:"mitra_pic_nama,omitempty" gorm:"size:100;column:mitra_pic_nama"`
	MitraPICEmail *string `json:"mitra_pic_email,omitempty" gorm:"size:255;column:mitra_pic_email"`
	MitraPICNoHP  *string `json:"mitra_pic_no_hp,omitempty" gorm:"size:20;column:mitra_pic_no_hp"`

	MitraBidangUsaha *string `json:"mitra_bidang_usaha,omitempty" gorm:"size:200;column:mitra_bidang_usaha"`

	// Perkiraan maksimal mahasiswa PKL per periode (advisory)
	MitraKuotaPKL int `json:"mitra_kuota_pkl" gorm:"not null;default:5;column:mitra_kuota_pkl"`

	MitraCreatedAt time.Time `json:"mitra_created_at" gorm:"column:mitra_created_at;not null;autoCreateTime"`
	MitraUpdatedAt time.Time `json:"mitra_updated_at" gorm:"column:mitra_updated_at;not null;autoUpdateTime"`
}

func (MitraModel) TableName() string {
	return "mitra"
}
