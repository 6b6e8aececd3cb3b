package report

import (
	"testing"
	"time"

	"tempe-backend/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func paidSale(date string, total int) models.Sale {
	return models.Sale{Date: day(date), Total: total, Status: models.StatusLunas}
}

func creditSale(date string, total int) models.Sale {
	return models.Sale{Date: day(date), Total: total, Status: models.StatusTempo}
}

func TestDailyProfitCashBasis(t *testing.T) {
	sales := []models.Sale{
		paidSale("2025-01-01", 100000),
		creditSale("2025-01-01", 50000), // Tempo: tidak masuk omzet
		paidSale("2025-01-02", 80000),
	}
	returns := []models.SaleReturn{
		{Date: day("2025-01-01"), Total: 10000},
	}
	expenses := []models.Expense{
		{Date: day("2025-01-01"), Amount: 30000},
		{Date: day("2025-01-02"), Amount: 20000},
	}

	rows := DailyProfit(sales, returns, expenses, 30)
	if len(rows) != 2 {
		t.Fatalf("DailyProfit menghasilkan %d baris, want 2", len(rows))
	}

	// keluaran kronologis
	if rows[0].Date != "2025-01-01" || rows[1].Date != "2025-01-02" {
		t.Errorf("urutan tanggal salah: %s, %s", rows[0].Date, rows[1].Date)
	}

	if rows[0].Omzet != 90000 {
		t.Errorf("omzet 2025-01-01 = %d, want 90000 (Tempo dikecualikan, retur mengurangi)", rows[0].Omzet)
	}
	if rows[0].Profit != 60000 {
		t.Errorf("laba 2025-01-01 = %d, want 60000", rows[0].Profit)
	}
	if rows[1].Omzet != 80000 || rows[1].Profit != 60000 {
		t.Errorf("2025-01-02 = omzet %d laba %d, want 80000/60000", rows[1].Omzet, rows[1].Profit)
	}
}

// toggle Tempo -> Lunas harus menaikkan omzet tanggal itu sebesar total penjualan
func TestDailyProfitAfterToggle(t *testing.T) {
	sale := creditSale("2025-01-01", 50000)

	before := DailyProfit([]models.Sale{sale}, nil, nil, 30)
	omzetBefore := 0
	if len(before) == 1 {
		omzetBefore = before[0].Omzet
	}

	sale.Status = sale.Status.Toggled()
	after := DailyProfit([]models.Sale{sale}, nil, nil, 30)
	if len(after) != 1 {
		t.Fatalf("DailyProfit menghasilkan %d baris, want 1", len(after))
	}

	if after[0].Omzet-omzetBefore != 50000 {
		t.Errorf("kenaikan omzet = %d, want 50000", after[0].Omzet-omzetBefore)
	}
}

// retur mengurangi omzet walaupun penjualan asalnya masih Tempo
func TestDailyProfitReturnAlwaysSubtracts(t *testing.T) {
	sales := []models.Sale{creditSale("2025-01-01", 50000)}
	returns := []models.SaleReturn{{Date: day("2025-01-01"), Total: 5000}}

	rows := DailyProfit(sales, returns, nil, 30)
	if len(rows) != 1 {
		t.Fatalf("DailyProfit menghasilkan %d baris, want 1", len(rows))
	}
	if rows[0].Omzet != -5000 {
		t.Errorf("omzet = %d, want -5000", rows[0].Omzet)
	}
}

func TestDailyProfitLimit(t *testing.T) {
	var sales []models.Sale
	dates := []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04"}
	for _, d := range dates {
		sales = append(sales, paidSale(d, 1000))
	}

	rows := DailyProfit(sales, nil, nil, 2)
	if len(rows) != 2 {
		t.Fatalf("DailyProfit menghasilkan %d baris, want 2", len(rows))
	}
	// limit mengambil tanggal terbaru, lalu hasil diurutkan kronologis
	if rows[0].Date != "2025-01-03" || rows[1].Date != "2025-01-04" {
		t.Errorf("tanggal = %s, %s; want 2025-01-03, 2025-01-04", rows[0].Date, rows[1].Date)
	}
}

func TestSummarize(t *testing.T) {
	batches := []models.ProductionBatch{
		{Date: day("2025-01-01"), Total: 200},
		{Date: day("2025-01-02"), Total: 300}, // tanggal lain, tidak ikut
	}
	sales := []models.Sale{
		paidSale("2025-01-01", 100000),
		creditSale("2025-01-01", 40000),
	}
	returns := []models.SaleReturn{
		{Date: day("2025-01-01"), Total: 10000},
	}
	expenses := []models.Expense{
		{Date: day("2025-01-01"), Amount: 25000},
	}

	got := Summarize("2025-01-01", batches, sales, returns, expenses)
	want := DaySummary{
		Date:              "2025-01-01",
		ProductionTotal:   200,
		Omzet:             90000,
		Expenses:          25000,
		Profit:            65000,
		CreditOutstanding: 40000,
	}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}
