package database

import (
	"fmt"

	"tempe-backend/internal/config"
	"tempe-backend/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open membuka koneksi Postgres, menjalankan AutoMigrate, dan memastikan
// user admin awal ada. Handle dikembalikan ke pemanggil; tidak ada state
// global di package ini.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gagal konek ke database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Worker{},
		&models.Sale{},
		&models.SaleReturn{},
		&models.ProductionBatch{},
		&models.WageClaim{},
		&models.Expense{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate gagal: %w", err)
	}

	if err := seedAdmin(db, cfg.AdminPassword); err != nil {
		return nil, err
	}

	log.Info("koneksi database siap, migrasi selesai")
	return db, nil
}

// seedAdmin membuat user "admin" kalau belum ada, supaya instalasi baru
// langsung bisa login.
func seedAdmin(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return fmt.Errorf("cek user admin gagal: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password admin gagal: %w", err)
	}

	admin := models.User{Username: "admin", PasswordHash: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed user admin gagal: %w", err)
	}
	return nil
}
