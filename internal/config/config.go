package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	DatabaseDSN    string
	JWTSecret      string
	CORSOrigins    string
	AdminPassword  string // password awal user admin yang di-seed saat startup
	WorkerPassword string // password awal untuk login karyawan yang baru dibuat
}

const defaultDSN = "host=localhost user=postgres password=postgres dbname=tempe port=5432 sslmode=disable"

// Load membaca konfigurasi dari environment. File .env dimuat kalau ada;
// kalau tidak ada, konfigurasi diambil langsung dari environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", defaultDSN),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		WorkerPassword: getEnv("WORKER_DEFAULT_PASSWORD", "karyawan123"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET wajib diisi")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, errors.New("JWT_SECRET minimal 32 karakter")
	}

	return cfg, nil
}

// UsesDefaultDSN: dipakai main untuk memberi peringatan kalau DSN default
// masih terpakai di production.
func (c *Config) UsesDefaultDSN() bool {
	return c.DatabaseDSN == defaultDSN
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
