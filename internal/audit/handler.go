package audit

import (
	"strconv"

	"tempe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/audit-logs?limit=50
func ListAuditLogsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 50
		if limitStr := c.Query("limit"); limitStr != "" {
			n, err := strconv.Atoi(limitStr)
			if err != nil || n < 1 || n > 500 {
				return fiber.NewError(fiber.StatusBadRequest, "limit tidak valid (1-500)")
			}
			limit = n
		}

		var logs []models.AuditLog
		if err := db.Order("created_at desc, id desc").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Audit log gagal diambil")
		}

		return c.JSON(logs)
	}
}
