package report

import (
	"errors"
	"strconv"
	"time"

	"tempe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Jendela pengambilan data dilonggarkan beberapa hari di belakang limit
// supaya tanggal tanpa penjualan tapi ada pengeluaran tetap terjaring.
const lookbackGuardDays = 5

var errBadLimit = errors.New("limit tidak valid")

// parseLimit menerima bilangan bulat utuh >= 1; sisa karakter seperti
// "30xyz" ditolak, bukan dibaca sebagai 30.
func parseLimit(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errBadLimit
	}
	return n, nil
}

func fetchWindow(db *gorm.DB, cutoff time.Time) ([]models.Sale, []models.SaleReturn, []models.Expense, error) {
	var sales []models.Sale
	if err := db.Where("date >= ?", cutoff).Find(&sales).Error; err != nil {
		return nil, nil, nil, err
	}
	var returns []models.SaleReturn
	if err := db.Where("date >= ?", cutoff).Find(&returns).Error; err != nil {
		return nil, nil, nil, err
	}
	var expenses []models.Expense
	if err := db.Where("date >= ?", cutoff).Find(&expenses).Error; err != nil {
		return nil, nil, nil, err
	}
	return sales, returns, expenses, nil
}

// GET /api/laporan/laba?limit=30
func DailyProfitHandler(db *gorm.DB, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := parseLimit(c.Query("limit"), 30)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "limit tidak valid")
		}

		cutoff := now().AddDate(0, 0, -(limit + lookbackGuardDays))
		sales, returns, expenses, err := fetchWindow(db, cutoff)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data laporan gagal diambil")
		}

		return c.JSON(DailyProfit(sales, returns, expenses, limit))
	}
}

// GET /api/dashboard/summary?tanggal=2025-12-09 (default: hari ini)
func DashboardSummaryHandler(db *gorm.DB, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("tanggal")
		if date == "" {
			date = now().Format("2006-01-02")
		}
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
		}

		var batches []models.ProductionBatch
		if err := db.Where("date = ?", d).Find(&batches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data produksi gagal diambil")
		}
		var sales []models.Sale
		if err := db.Where("date = ?", d).Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data penjualan gagal diambil")
		}
		var returns []models.SaleReturn
		if err := db.Where("date = ?", d).Find(&returns).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data retur gagal diambil")
		}
		var expenses []models.Expense
		if err := db.Where("date = ?", d).Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data pengeluaran gagal diambil")
		}

		return c.JSON(Summarize(date, batches, sales, returns, expenses))
	}
}
