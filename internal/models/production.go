package models

import "time"

// ProductionBatch: produksi harian. Maksimal satu batch per tanggal.
type ProductionBatch struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"uniqueIndex;not null"` // satu batch per hari
	SoyKg     float64   `gorm:"not null"`             // kedelai mentah (kg)
	Qty3K     int       `gorm:"not null"`
	Qty5K     int       `gorm:"not null"`
	Qty10K    int       `gorm:"not null"`
	Total     int       `gorm:"not null"`
	Expired   bool      `gorm:"not null;default:false"` // batch basi/rusak
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WageClaim: tagihan upah satu pekerja untuk satu batch produksi.
// Amount 0 berarti belum diverifikasi; verifikasi mengunci amount ke
// gaji harian pekerja saat itu. Klaim yang sudah dibayar tidak pernah
// dihapus oleh perubahan daftar pekerja.
type WageClaim struct {
	ID        uint `gorm:"primaryKey"`
	BatchID   uint `gorm:"index;not null"`
	WorkerID  uint `gorm:"index;not null"`
	Amount    int  `gorm:"not null;default:0"`
	Paid      bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
