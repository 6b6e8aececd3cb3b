package audit

import (
	"encoding/json"
	"fmt"

	"tempe-backend/internal/models"

	"gorm.io/gorm"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	After       any
}

// WriteLog menambah satu baris audit. Kegagalan menulis audit tidak boleh
// menggagalkan operasi utamanya; pemanggil cukup me-log error-nya.
func WriteLog(db *gorm.DB, opts LogOptions) error {
	// jsonb Postgres butuh string JSON valid, bukan string kosong
	afterStr := "null"
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		AfterData:   afterStr,
	}

	if err := db.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log gagal disimpan: %w", err)
	}

	return nil
}
