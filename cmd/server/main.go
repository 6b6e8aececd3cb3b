package main

import (
	"strings"
	"time"

	"tempe-backend/internal/audit"
	"tempe-backend/internal/auth"
	"tempe-backend/internal/config"
	"tempe-backend/internal/database"
	"tempe-backend/internal/expense"
	"tempe-backend/internal/production"
	"tempe-backend/internal/report"
	"tempe-backend/internal/sales"
	"tempe-backend/internal/stock"
	"tempe-backend/internal/wages"
	"tempe-backend/internal/worker"
	"tempe-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("konfigurasi tidak valid", zap.Error(err))
	}
	if cfg.UsesDefaultDSN() {
		log.Warn("DATABASE_DSN masih nilai default, jangan dipakai di production")
	}

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatal("database gagal disiapkan", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error("error tak terduga", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Terjadi kesalahan di server",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	now := time.Now

	api := app.Group("/api")

	// Public
	api.Post("/auth/login", auth.LoginHandler(db, cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(db))

	// Penjualan
	protected.Post("/penjualan", sales.CreateSaleHandler(db))
	protected.Get("/penjualan", sales.ListSalesHandler(db))
	protected.Patch("/penjualan/:id/status", sales.ToggleSaleStatusHandler(db))

	// Retur penjualan
	protected.Post("/return", sales.CreateReturnHandler(db))
	protected.Get("/return", sales.ListReturnsHandler(db))

	// Produksi harian
	protected.Post("/produksi", production.CreateBatchHandler(db))
	protected.Get("/produksi", production.ListBatchesHandler(db))
	protected.Put("/produksi/:id", production.UpdateBatchHandler(db))
	protected.Patch("/produksi/:id/expired", production.SetExpiredHandler(db))

	// Gaji karyawan
	protected.Get("/gaji", wages.ListClaimsHandler(db))
	protected.Post("/gaji/:id/verify", wages.VerifyClaimHandler(db))
	protected.Post("/gaji/:id/bayar", wages.PayClaimHandler(db))
	protected.Post("/gaji/bayar-batch", wages.PayBatchHandler(db))

	// Karyawan
	protected.Post("/karyawan", worker.CreateWorkerHandler(db, cfg))
	protected.Get("/karyawan", worker.ListWorkersHandler(db))
	protected.Put("/karyawan/:id", worker.UpdateWorkerHandler(db))

	// Pengeluaran
	protected.Post("/pengeluaran", expense.CreateExpenseHandler(db))
	protected.Get("/pengeluaran", expense.ListExpensesHandler(db))

	// Stok
	protected.Get("/stok", stock.GetCurrentStockHandler(db))
	protected.Get("/stok/history", stock.GetStockHistoryHandler(db))
	protected.Get("/stok/produk", stock.GetStockByProductHandler(db))

	// Laporan
	protected.Get("/laporan/laba", report.DailyProfitHandler(db, now))
	protected.Get("/laporan/laba/export", report.ExportProfitHandler(db, now))
	protected.Get("/dashboard/summary", report.DashboardSummaryHandler(db, now))

	// Audit log
	protected.Get("/audit-logs", audit.ListAuditLogsHandler(db))

	log.Info("server berjalan", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal("server berhenti", zap.Error(err))
	}
}
