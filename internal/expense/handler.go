package expense

import (
	"fmt"
	"time"

	"tempe-backend/internal/audit"
	"tempe-backend/internal/auth"
	"tempe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateExpenseRequest struct {
	Date     string                 `json:"tanggal"` // "2025-12-09"
	Category models.ExpenseCategory `json:"kategori_pengeluaran"`
	Amount   int                    `json:"jumlah"`
	Note     string                 `json:"keterangan"`
}

type ExpenseResponse struct {
	ID        uint                   `json:"id"`
	Date      string                 `json:"tanggal"`
	Category  models.ExpenseCategory `json:"kategori_pengeluaran"`
	Amount    int                    `json:"jumlah"`
	Note      string                 `json:"keterangan"`
	CreatedAt string                 `json:"created_at"`
}

func expenseResponse(e models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		Date:      e.Date.Format("2006-01-02"),
		Category:  e.Category,
		Amount:    e.Amount,
		Note:      e.Note,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/pengeluaran
func CreateExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if !models.ValidExpenseCategory(body.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "kategori_pengeluaran tidak dikenal")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus 'YYYY-MM-DD'")
		}

		exp := models.Expense{
			Date:     d,
			Category: body.Category,
			Amount:   body.Amount,
			Note:     body.Note,
		}

		if err := db.Create(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pengeluaran gagal disimpan")
		}

		userID, userName := auth.Identity(c)
		if logErr := audit.WriteLog(db, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "pengeluaran",
			EntityID:    exp.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Pengeluaran %s: Rp%d", exp.Category, exp.Amount),
			After:       expenseResponse(exp),
		}); logErr != nil {
			fmt.Printf("audit log gagal ditulis: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(expenseResponse(exp))
	}
}

// GET /api/pengeluaran
func ListExpensesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Expense
		if err := db.Order("date desc, id desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pengeluaran gagal diambil")
		}

		resp := make([]ExpenseResponse, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, expenseResponse(r))
		}
		return c.JSON(resp)
	}
}
