package production

import (
	"errors"
	"time"

	"tempe-backend/internal/models"
	"tempe-backend/internal/worker"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateBatchRequest struct {
	Date      string  `json:"tanggal"`
	SoyKg     float64 `json:"kedelai_kg"`
	Qty3K     int     `json:"tempe_3k_produksi"`
	Qty5K     int     `json:"tempe_5k_produksi"`
	Qty10K    int     `json:"tempe_10k_produksi"`
	WorkerIDs []uint  `json:"pekerja_ids"`
}

type UpdateBatchRequest struct {
	Date      string  `json:"tanggal"`
	SoyKg     float64 `json:"kedelai_kg"`
	Qty3K     int     `json:"tempe_3k_produksi"`
	Qty5K     int     `json:"tempe_5k_produksi"`
	Qty10K    int     `json:"tempe_10k_produksi"`
	WorkerIDs []uint  `json:"pekerja_ids"`
}

type SetExpiredRequest struct {
	Expired bool `json:"expired"`
}

type BatchResponse struct {
	ID            uint     `json:"id"`
	Date          string   `json:"tanggal"`
	SoyKg         float64  `json:"kedelai_kg"`
	Qty3K         int      `json:"tempe_3k_produksi"`
	Qty5K         int      `json:"tempe_5k_produksi"`
	Qty10K        int      `json:"tempe_10k_produksi"`
	Total         int      `json:"total_produksi"`
	Expired       bool     `json:"expired"`
	WorkerCount   int      `json:"jumlah_pekerja"`
	WorkerNames   []string `json:"nama_pekerja"`
	PaidWorkerIDs []uint   `json:"pekerja_dibayar_ids"`
	CreatedAt     string   `json:"created_at"`
}

// batchResponse merangkai batch dengan anotasi daftar pekerjanya. Nama
// pekerja yang sudah terhapus dirender sebagai "Unknown", bukan error.
func batchResponse(db *gorm.DB, b models.ProductionBatch) (BatchResponse, error) {
	var claims []models.WageClaim
	if err := db.Where("batch_id = ?", b.ID).Order("id asc").Find(&claims).Error; err != nil {
		return BatchResponse{}, err
	}

	ids := make([]uint, 0, len(claims))
	paidIDs := make([]uint, 0)
	for _, cl := range claims {
		ids = append(ids, cl.WorkerID)
		if cl.Paid {
			paidIDs = append(paidIDs, cl.WorkerID)
		}
	}

	names, err := worker.Names(db, ids)
	if err != nil {
		return BatchResponse{}, err
	}
	workerNames := make([]string, 0, len(ids))
	for _, id := range ids {
		workerNames = append(workerNames, names[id])
	}

	return BatchResponse{
		ID:            b.ID,
		Date:          b.Date.Format("2006-01-02"),
		SoyKg:         b.SoyKg,
		Qty3K:         b.Qty3K,
		Qty5K:         b.Qty5K,
		Qty10K:        b.Qty10K,
		Total:         b.Total,
		Expired:       b.Expired,
		WorkerCount:   len(ids),
		WorkerNames:   workerNames,
		PaidWorkerIDs: paidIDs,
		CreatedAt:     b.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// batchStore memisahkan akses data pembuatan batch dari handler-nya,
// sehingga jalur konflik tanggal bisa dilatih tanpa Postgres.
type batchStore interface {
	// findByDate mengembalikan nil kalau tanggal sudah terisi dan
	// gorm.ErrRecordNotFound kalau slotnya kosong.
	findByDate(d time.Time) error
	create(batch *models.ProductionBatch, workerIDs []uint) error
	annotate(b models.ProductionBatch) (BatchResponse, error)
}

type gormBatchStore struct {
	db *gorm.DB
}

func (s gormBatchStore) findByDate(d time.Time) error {
	var existing models.ProductionBatch
	return s.db.Where("date = ?", d).First(&existing).Error
}

func (s gormBatchStore) create(batch *models.ProductionBatch, workerIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(batch).Error; err != nil {
			return err
		}
		toAdd, _ := RosterDiff(nil, workerIDs)
		for _, workerID := range toAdd {
			claim := models.WageClaim{BatchID: batch.ID, WorkerID: workerID}
			if err := tx.Create(&claim).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s gormBatchStore) annotate(b models.ProductionBatch) (BatchResponse, error) {
	return batchResponse(s.db, b)
}

// POST /api/produksi
// Maksimal satu batch per tanggal; tanggal yang sudah terisi ditolak 409.
// Tiap pekerja di daftar langsung dibuatkan klaim upah kosong.
func CreateBatchHandler(db *gorm.DB) fiber.Handler {
	return createBatchHandler(gormBatchStore{db: db})
}

func createBatchHandler(store batchStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBatchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
		}

		err = store.findByDate(d)
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "Produksi untuk tanggal ini sudah ada")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Produksi gagal diperiksa")
		}

		batch := models.ProductionBatch{
			Date:   d,
			SoyKg:  body.SoyKg,
			Qty3K:  body.Qty3K,
			Qty5K:  body.Qty5K,
			Qty10K: body.Qty10K,
			Total:  body.Qty3K + body.Qty5K + body.Qty10K,
		}

		if err := store.create(&batch, body.WorkerIDs); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produksi gagal disimpan")
		}

		resp, err := store.annotate(batch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produksi gagal dibaca ulang")
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// PUT /api/produksi/:id
// Field skalar diganti tanpa syarat (termasuk tanggal — memindah tanggal
// membebaskan slot lamanya). Daftar pekerja direkonsiliasi lewat RosterDiff;
// klaim yang sudah dibayar tidak pernah dihapus.
func UpdateBatchHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var batch models.ProductionBatch
		if err := db.First(&batch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produksi tidak ditemukan")
		}

		var body UpdateBatchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
		}

		batch.Date = d
		batch.SoyKg = body.SoyKg
		batch.Qty3K = body.Qty3K
		batch.Qty5K = body.Qty5K
		batch.Qty10K = body.Qty10K
		batch.Total = body.Qty3K + body.Qty5K + body.Qty10K

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&batch).Error; err != nil {
				return err
			}

			var claims []models.WageClaim
			if err := tx.Where("batch_id = ?", batch.ID).Find(&claims).Error; err != nil {
				return err
			}

			toAdd, toRemove := RosterDiff(claims, body.WorkerIDs)
			for _, workerID := range toAdd {
				claim := models.WageClaim{BatchID: batch.ID, WorkerID: workerID}
				if err := tx.Create(&claim).Error; err != nil {
					return err
				}
			}
			if len(toRemove) > 0 {
				if err := tx.Delete(&models.WageClaim{}, "id IN ?", toRemove).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produksi gagal diperbarui")
		}

		resp, err := batchResponse(db, batch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produksi gagal dibaca ulang")
		}
		return c.JSON(resp)
	}
}

// PATCH /api/produksi/:id/expired
func SetExpiredHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var batch models.ProductionBatch
		if err := db.First(&batch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produksi tidak ditemukan")
		}

		var body SetExpiredRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if err := db.Model(&batch).Update("expired", body.Expired).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Status expired gagal diubah")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/produksi
func ListBatchesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var batches []models.ProductionBatch
		if err := db.Order("date desc, id desc").Find(&batches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produksi gagal diambil")
		}

		resp := make([]BatchResponse, 0, len(batches))
		for _, b := range batches {
			r, err := batchResponse(db, b)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Produksi gagal dibaca")
			}
			resp = append(resp, r)
		}
		return c.JSON(resp)
	}
}
