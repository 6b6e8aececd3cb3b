package models

import "time"

// User: identitas login. Semua user terautentikasi punya hak yang sama;
// identitas hanya dipakai untuk atribusi di audit log.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	WorkerID     *uint  `gorm:"index"` // terisi kalau user dibuat bersama karyawan
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
