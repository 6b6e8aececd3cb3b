package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionPay    AuditAction = "pay"
)

// AuditLog: jejak siapa melakukan apa. Hanya untuk atribusi, tidak pernah
// dipakai sebagai dasar otorisasi.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint   `json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"` // denormalisasi, tahan terhadap user terhapus

	// Entity apa? (mis: "penjualan", "return", "pengeluaran", "gaji_batch")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	// Kondisi setelah operasi (JSON)
	AfterData string `gorm:"type:jsonb" json:"after_data"`
}
