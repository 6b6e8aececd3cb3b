package models

import "time"

// Worker: data induk karyawan produksi. DailyRate boleh berubah; klaim upah
// yang sudah diverifikasi menyimpan snapshot, jadi perubahan rate tidak
// mempengaruhi klaim lama.
type Worker struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Contact   string `gorm:"size:50"`
	DailyRate int    `gorm:"not null"` // upah harian (Rp)
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
