package wages

import (
	"fmt"
	"time"

	"tempe-backend/internal/audit"
	"tempe-backend/internal/auth"
	"tempe-backend/internal/models"
	"tempe-backend/internal/worker"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PayBatchRequest struct {
	ClaimIDs    []uint `json:"klaim_ids"`
	TotalAmount int    `json:"total_gaji"`
	WorkerLabel string `json:"label"` // mis. "Gaji mingguan: Budi, Siti"
	Date        string `json:"tanggal"`
}

type ClaimResponse struct {
	ID         uint   `json:"id"`
	BatchID    uint   `json:"produksi_id"`
	BatchDate  string `json:"tanggal_produksi"`
	WorkerID   uint   `json:"karyawan_id"`
	WorkerName string `json:"nama_karyawan"`
	Amount     int    `json:"jumlah"`
	Verified   bool   `json:"terverifikasi"`
	Paid       bool   `json:"dibayar"`
	CreatedAt  string `json:"created_at"`
}

// POST /api/gaji/:id/verify
// Mengunci amount klaim ke gaji harian pekerja SAAT INI. Perubahan rate
// setelahnya tidak mengubah klaim yang sudah diverifikasi.
func VerifyClaimHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var claim models.WageClaim
		if err := db.First(&claim, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Klaim gaji tidak ditemukan")
		}

		var w models.Worker
		if err := db.First(&w, "id = ?", claim.WorkerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Karyawan untuk klaim ini tidak ditemukan")
		}

		if err := db.Model(&claim).Update("amount", w.DailyRate).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Klaim gagal diverifikasi")
		}

		return c.JSON(fiber.Map{"id": claim.ID, "jumlah": w.DailyRate})
	}
}

// POST /api/gaji/:id/bayar
// Menandai satu klaim dibayar. Tidak ada syarat klaim harus diverifikasi
// dulu; klaim belum diverifikasi terbayar dengan jumlah 0.
func PayClaimHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var claim models.WageClaim
		if err := db.First(&claim, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Klaim gaji tidak ditemukan")
		}

		if err := db.Model(&claim).Update("paid", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Klaim gagal dibayar")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// disburseDate menentukan tanggal pencairan: tanggal dari body kalau ada,
// hari ini kalau kosong. Hasilnya selalu jatuh di tengah malam — kunci
// tanggal yang sama dengan semua jalur tulis lain dan query `date = ?`
// di rekap harian.
func disburseDate(raw string, now func() time.Time) (time.Time, error) {
	if raw == "" {
		raw = now().Format("2006-01-02")
	}
	return time.Parse("2006-01-02", raw)
}

// POST /api/gaji/bayar-batch
// Satu pencairan kas untuk banyak klaim sekaligus: semua klaim ditandai
// dibayar dan SATU pengeluaran kategori gaji dicatat dengan total dari
// pemanggil. Total tidak dihitung ulang dari klaim — angka yang dicatat
// adalah uang yang benar-benar keluar di pencairan itu.
func PayBatchHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PayBatchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if len(body.ClaimIDs) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "klaim_ids tidak boleh kosong")
		}

		d, err := disburseDate(body.Date, time.Now)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
		}

		note := body.WorkerLabel
		if note == "" {
			note = fmt.Sprintf("Pembayaran gaji %d klaim", len(body.ClaimIDs))
		}

		exp := models.Expense{
			Date:     d,
			Category: models.ExpenseGaji,
			Amount:   body.TotalAmount,
			Note:     note,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.WageClaim{}).
				Where("id IN ?", body.ClaimIDs).
				Update("paid", true).Error; err != nil {
				return err
			}
			return tx.Create(&exp).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pembayaran gaji gagal disimpan")
		}

		userID, userName := auth.Identity(c)
		if logErr := audit.WriteLog(db, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "gaji_batch",
			EntityID:    exp.ID,
			Action:      models.AuditActionPay,
			Description: fmt.Sprintf("Pencairan gaji Rp%d untuk %d klaim (%s)", body.TotalAmount, len(body.ClaimIDs), note),
			After:       body,
		}); logErr != nil {
			fmt.Printf("audit log gagal ditulis: %v\n", logErr)
		}

		return c.JSON(fiber.Map{
			"dibayar":        len(body.ClaimIDs),
			"pengeluaran_id": exp.ID,
			"total":          body.TotalAmount,
		})
	}
}

// GET /api/gaji
// Semua klaim, terbaru dulu, di-join nama karyawan dan tanggal batch.
// Referensi yang hilang dirender "Unknown"/kosong, bukan error.
func ListClaimsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var claims []models.WageClaim
		if err := db.Order("created_at desc, id desc").Find(&claims).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Klaim gaji gagal diambil")
		}

		workerIDs := make([]uint, 0, len(claims))
		batchIDs := make([]uint, 0, len(claims))
		for _, cl := range claims {
			workerIDs = append(workerIDs, cl.WorkerID)
			batchIDs = append(batchIDs, cl.BatchID)
		}

		names, err := worker.Names(db, workerIDs)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Karyawan gagal diambil")
		}

		var batches []models.ProductionBatch
		if len(batchIDs) > 0 {
			if err := db.Where("id IN ?", batchIDs).Find(&batches).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Produksi gagal diambil")
			}
		}
		batchDates := make(map[uint]string, len(batches))
		for _, b := range batches {
			batchDates[b.ID] = b.Date.Format("2006-01-02")
		}

		resp := make([]ClaimResponse, 0, len(claims))
		for _, cl := range claims {
			resp = append(resp, ClaimResponse{
				ID:         cl.ID,
				BatchID:    cl.BatchID,
				BatchDate:  batchDates[cl.BatchID], // kosong kalau batch hilang
				WorkerID:   cl.WorkerID,
				WorkerName: names[cl.WorkerID],
				Amount:     cl.Amount,
				Verified:   cl.Amount > 0,
				Paid:       cl.Paid,
				CreatedAt:  cl.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(resp)
	}
}
