package sales

import (
	"fmt"
	"time"

	"tempe-backend/internal/audit"
	"tempe-backend/internal/auth"
	"tempe-backend/internal/models"
	"tempe-backend/internal/pricing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateReturnRequest struct {
	Date   string `json:"tanggal"`
	SaleID uint   `json:"penjualan_id"`
	Ret3K  int    `json:"tempe_3k_return"`
	Ret5K  int    `json:"tempe_5k_return"`
	Ret10K int    `json:"tempe_10k_return"`
	Note   string `json:"keterangan"`
}

type ReturnResponse struct {
	ID        uint   `json:"id"`
	Date      string `json:"tanggal"`
	SaleID    uint   `json:"penjualan_id"`
	Ret3K     int    `json:"tempe_3k_return"`
	Ret5K     int    `json:"tempe_5k_return"`
	Ret10K    int    `json:"tempe_10k_return"`
	Total     int    `json:"total_return"`
	Note      string `json:"keterangan"`
	CreatedAt string `json:"created_at"`
}

func returnResponse(r models.SaleReturn) ReturnResponse {
	return ReturnResponse{
		ID:        r.ID,
		Date:      r.Date.Format("2006-01-02"),
		SaleID:    r.SaleID,
		Ret3K:     r.Ret3K,
		Ret5K:     r.Ret5K,
		Ret10K:    r.Ret10K,
		Total:     r.Total,
		Note:      r.Note,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ReturnTotal menghitung nilai retur dengan tarif kategori penjualan
// ASALNYA yang tersimpan, bukan tarif saat retur dibuat, supaya retur
// membalikkan persis nilai yang dulu ditagihkan.
func ReturnTotal(sale models.Sale, ret3K, ret5K, ret10K int) int {
	_, _, _, total := pricing.LineTotals(sale.Category, ret3K, ret5K, ret10K)
	return total
}

// POST /api/return
// Tidak ada pengecekan jumlah retur terhadap jumlah terjual.
func CreateReturnHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateReturnRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
		}

		var sale models.Sale
		if err := db.First(&sale, "id = ?", body.SaleID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Penjualan tidak ditemukan")
		}

		total := ReturnTotal(sale, body.Ret3K, body.Ret5K, body.Ret10K)

		ret := models.SaleReturn{
			SaleID: sale.ID,
			Date:   d,
			Ret3K:  body.Ret3K,
			Ret5K:  body.Ret5K,
			Ret10K: body.Ret10K,
			Total:  total,
			Note:   body.Note,
		}

		if err := db.Create(&ret).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Retur gagal disimpan")
		}

		userID, userName := auth.Identity(c)
		if logErr := audit.WriteLog(db, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "return",
			EntityID:    ret.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Retur penjualan #%d: Rp%d", sale.ID, ret.Total),
			After:       returnResponse(ret),
		}); logErr != nil {
			fmt.Printf("audit log gagal ditulis: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(returnResponse(ret))
	}
}

// GET /api/return
func ListReturnsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.SaleReturn
		if err := db.Order("date desc, id desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Retur gagal diambil")
		}

		resp := make([]ReturnResponse, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, returnResponse(r))
		}
		return c.JSON(resp)
	}
}
