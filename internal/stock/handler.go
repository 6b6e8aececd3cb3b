package stock

import (
	"tempe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// fetchLedgers mengambil ketiga ledger sumber sekaligus. Tidak ada lock
// lintas tabel; rekonsiliasi mentolerir inkonsistensi sesaat antar ledger.
func fetchLedgers(db *gorm.DB) ([]models.ProductionBatch, []models.Sale, []models.SaleReturn, error) {
	var batches []models.ProductionBatch
	if err := db.Find(&batches).Error; err != nil {
		return nil, nil, nil, err
	}
	var sales []models.Sale
	if err := db.Find(&sales).Error; err != nil {
		return nil, nil, nil, err
	}
	var returns []models.SaleReturn
	if err := db.Find(&returns).Error; err != nil {
		return nil, nil, nil, err
	}
	return batches, sales, returns, nil
}

// GET /api/stok?exclude_expired=true
func GetCurrentStockHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		excludeExpired := c.Query("exclude_expired") == "true"

		batches, sales, returns, err := fetchLedgers(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data stok gagal diambil")
		}

		return c.JSON(Current(batches, sales, returns, excludeExpired))
	}
}

// GET /api/stok/history
func GetStockHistoryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		batches, sales, returns, err := fetchLedgers(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data stok gagal diambil")
		}

		return c.JSON(History(batches, sales, returns))
	}
}

// GET /api/stok/produk
func GetStockByProductHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		batches, sales, returns, err := fetchLedgers(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data stok gagal diambil")
		}

		return c.JSON(ByProduct(batches, sales, returns))
	}
}
