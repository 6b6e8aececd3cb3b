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

type CreateSaleRequest struct {
	Date     string               `json:"tanggal"` // "2025-12-09"
	Buyer    string               `json:"pembeli"`
	Category models.BuyerCategory `json:"kategori_pembeli"`
	Qty3K    int                  `json:"tempe_3k_pcs"`
	Qty5K    int                  `json:"tempe_5k_pcs"`
	Qty10K   int                  `json:"tempe_10k_pcs"`
	Status   models.PaymentStatus `json:"status_pembayaran"`
}

type SaleResponse struct {
	ID          uint                 `json:"id"`
	Date        string               `json:"tanggal"`
	Buyer       string               `json:"pembeli"`
	Category    models.BuyerCategory `json:"kategori_pembeli"`
	Qty3K       int                  `json:"tempe_3k_pcs"`
	Qty5K       int                  `json:"tempe_5k_pcs"`
	Qty10K      int                  `json:"tempe_10k_pcs"`
	Subtotal3K  int                  `json:"subtotal_3k"`
	Subtotal5K  int                  `json:"subtotal_5k"`
	Subtotal10K int                  `json:"subtotal_10k"`
	Total       int                  `json:"total_penjualan"`
	Status      models.PaymentStatus `json:"status_pembayaran"`
	CreatedAt   string               `json:"created_at"`
}

func saleResponse(s models.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		Date:        s.Date.Format("2006-01-02"),
		Buyer:       s.Buyer,
		Category:    s.Category,
		Qty3K:       s.Qty3K,
		Qty5K:       s.Qty5K,
		Qty10K:      s.Qty10K,
		Subtotal3K:  s.Subtotal3K,
		Subtotal5K:  s.Subtotal5K,
		Subtotal10K: s.Subtotal10K,
		Total:       s.Total,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/penjualan
// Jumlah pcs tidak divalidasi (nilai negatif diterima); subtotal dan total
// dihitung sekali dari tabel harga sesuai kategori pembeli.
func CreateSaleHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if body.Category != models.CategoryGrosir && body.Category != models.CategoryEceran {
			return fiber.NewError(fiber.StatusBadRequest, "kategori_pembeli harus Grosir atau Eceran")
		}
		if body.Status != models.StatusLunas && body.Status != models.StatusTempo {
			return fiber.NewError(fiber.StatusBadRequest, "status_pembayaran harus Lunas atau Tempo")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
		}

		s3, s5, s10, total := pricing.LineTotals(body.Category, body.Qty3K, body.Qty5K, body.Qty10K)

		sale := models.Sale{
			Date:        d,
			Buyer:       body.Buyer,
			Category:    body.Category,
			Qty3K:       body.Qty3K,
			Qty5K:       body.Qty5K,
			Qty10K:      body.Qty10K,
			Subtotal3K:  s3,
			Subtotal5K:  s5,
			Subtotal10K: s10,
			Total:       total,
			Status:      body.Status,
		}

		if err := db.Create(&sale).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Penjualan gagal disimpan")
		}

		userID, userName := auth.Identity(c)
		if logErr := audit.WriteLog(db, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "penjualan",
			EntityID:    sale.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Penjualan ke %s: Rp%d (%s)", sale.Buyer, sale.Total, sale.Status),
			After:       saleResponse(sale),
		}); logErr != nil {
			fmt.Printf("audit log gagal ditulis: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(saleResponse(sale))
	}
}

// GET /api/penjualan
func ListSalesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Sale
		if err := db.Order("date desc, id desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Penjualan gagal diambil")
		}

		resp := make([]SaleResponse, 0, len(rows))
		for _, s := range rows {
			resp = append(resp, saleResponse(s))
		}
		return c.JSON(resp)
	}
}

// PATCH /api/penjualan/:id/status
// Toggle Lunas <-> Tempo. Tidak ada field lain yang tersentuh.
func ToggleSaleStatusHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var sale models.Sale
		if err := db.First(&sale, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Penjualan tidak ditemukan")
		}

		sale.Status = sale.Status.Toggled()
		if err := db.Model(&sale).Update("status", sale.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Status pembayaran gagal diubah")
		}

		return c.JSON(saleResponse(sale))
	}
}
