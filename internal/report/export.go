package report

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// GET /api/laporan/laba/export?limit=30
// Laporan laba yang sama dengan endpoint JSON, dirender sebagai file xlsx
// untuk rekap bulanan di Excel.
func ExportProfitHandler(db *gorm.DB, now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := parseLimit(c.Query("limit"), 30)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "limit tidak valid")
		}

		cutoff := now().AddDate(0, 0, -(limit + lookbackGuardDays))
		sales, returns, expenses, err := fetchWindow(db, cutoff)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Data laporan gagal diambil")
		}

		rows := DailyProfit(sales, returns, expenses, limit)

		f := excelize.NewFile()
		defer f.Close()

		const sheet = "Laporan Laba"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Tanggal", "Omzet", "Pengeluaran", "Laba"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		var totalOmzet, totalExpense, totalProfit int
		for i, row := range rows {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.Date)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.Omzet)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), row.Expense)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), row.Profit)
			totalOmzet += row.Omzet
			totalExpense += row.Expense
			totalProfit += row.Profit
		}

		totalRow := len(rows) + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), totalOmzet)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), totalExpense)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), totalProfit)

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "File Excel gagal dibuat")
		}

		filename := fmt.Sprintf("laporan-laba-%s.xlsx", now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	}
}
