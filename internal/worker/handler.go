package worker

import (
	"fmt"
	"strings"

	"tempe-backend/internal/config"
	"tempe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateWorkerRequest struct {
	Name      string `json:"nama"`
	Contact   string `json:"kontak"`
	DailyRate int    `json:"gaji_harian"`
}

type UpdateWorkerRequest struct {
	Name      *string `json:"nama"`
	Contact   *string `json:"kontak"`
	DailyRate *int    `json:"gaji_harian"`
	Active    *bool   `json:"aktif"`
}

type WorkerResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"nama"`
	Contact   string `json:"kontak"`
	DailyRate int    `json:"gaji_harian"`
	Active    bool   `json:"aktif"`
	Username  string `json:"username,omitempty"` // hanya diisi saat pembuatan
}

// POST /api/karyawan
// Selain data induk, karyawan baru langsung dibuatkan user login dengan
// username turunan namanya dan password awal dari konfigurasi.
func CreateWorkerHandler(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateWorkerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "nama wajib diisi")
		}

		w := models.Worker{
			Name:      body.Name,
			Contact:   body.Contact,
			DailyRate: body.DailyRate,
			Active:    true,
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.WorkerPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Password awal gagal di-hash")
		}

		var username string
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&w).Error; err != nil {
				return err
			}

			// username turunan; suffix angka kalau sudah terpakai
			base := DeriveUsername(w.Name)
			username = base
			for i := 2; ; i++ {
				var count int64
				if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					break
				}
				username = fmt.Sprintf("%s%d", base, i)
			}

			user := models.User{
				Username:     username,
				PasswordHash: string(hash),
				WorkerID:     &w.ID,
			}
			return tx.Create(&user).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Karyawan gagal disimpan")
		}

		return c.Status(fiber.StatusCreated).JSON(WorkerResponse{
			ID:        w.ID,
			Name:      w.Name,
			Contact:   w.Contact,
			DailyRate: w.DailyRate,
			Active:    w.Active,
			Username:  username,
		})
	}
}

// GET /api/karyawan
func ListWorkersHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var workers []models.Worker
		if err := db.Order("active desc, name asc").Find(&workers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Karyawan gagal diambil")
		}

		resp := make([]WorkerResponse, 0, len(workers))
		for _, w := range workers {
			resp = append(resp, WorkerResponse{
				ID:        w.ID,
				Name:      w.Name,
				Contact:   w.Contact,
				DailyRate: w.DailyRate,
				Active:    w.Active,
			})
		}
		return c.JSON(resp)
	}
}

// PUT /api/karyawan/:id
// Perubahan gaji harian tidak menyentuh klaim yang sudah diverifikasi;
// amount klaim adalah snapshot saat verifikasi.
func UpdateWorkerHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var w models.Worker
		if err := db.First(&w, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Karyawan tidak ditemukan")
		}

		var body UpdateWorkerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "nama tidak boleh kosong")
			}
			w.Name = name
		}
		if body.Contact != nil {
			w.Contact = *body.Contact
		}
		if body.DailyRate != nil {
			w.DailyRate = *body.DailyRate
		}
		if body.Active != nil {
			w.Active = *body.Active
		}

		if err := db.Save(&w).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Karyawan gagal diperbarui")
		}

		return c.JSON(WorkerResponse{
			ID:        w.ID,
			Name:      w.Name,
			Contact:   w.Contact,
			DailyRate: w.DailyRate,
			Active:    w.Active,
		})
	}
}
