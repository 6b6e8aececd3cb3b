package models

import "time"

type ExpenseCategory string

const (
	ExpenseKedelai ExpenseCategory = "kedelai"
	ExpensePlastik ExpenseCategory = "plastik"
	ExpenseRagi    ExpenseCategory = "ragi"
	ExpenseAir     ExpenseCategory = "air"
	ExpenseListrik ExpenseCategory = "listrik"
	ExpenseGaji    ExpenseCategory = "gaji" // dipakai pembayaran upah batch
)

// ValidExpenseCategory memeriksa kategori terhadap enumerasi tetap di atas.
func ValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseKedelai, ExpensePlastik, ExpenseRagi, ExpenseAir, ExpenseListrik, ExpenseGaji:
		return true
	}
	return false
}

type Expense struct {
	ID        uint            `gorm:"primaryKey"`
	Date      time.Time       `gorm:"index;not null"`
	Category  ExpenseCategory `gorm:"size:20;not null"`
	Amount    int             `gorm:"not null"`
	Note      string          `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
