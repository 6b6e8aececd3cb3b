package report

import (
	"sort"
	"time"

	"tempe-backend/internal/models"
)

// ProfitRow: rekap laba satu tanggal. Omzet berbasis kas: hanya penjualan
// Lunas yang dihitung, retur selalu mengurangi (apapun status penjualan
// asalnya).
type ProfitRow struct {
	Date    string `json:"tanggal"`
	Omzet   int    `json:"omzet"`
	Expense int    `json:"pengeluaran"`
	Profit  int    `json:"laba"`
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

// DailyProfit mengelompokkan ketiga ledger per tanggal, mengambil `limit`
// tanggal terbaru, lalu mengurutkan hasilnya kronologis untuk ditampilkan.
func DailyProfit(sales []models.Sale, returns []models.SaleReturn, expenses []models.Expense, limit int) []ProfitRow {
	type agg struct {
		omzet   int
		expense int
	}
	byDate := make(map[string]*agg)
	get := func(key string) *agg {
		if a, ok := byDate[key]; ok {
			return a
		}
		a := &agg{}
		byDate[key] = a
		return a
	}

	for _, s := range sales {
		if s.Status != models.StatusLunas {
			continue // penjualan Tempo belum jadi kas
		}
		get(dateKey(s.Date)).omzet += s.Total
	}
	for _, r := range returns {
		get(dateKey(r.Date)).omzet -= r.Total
	}
	for _, e := range expenses {
		get(dateKey(e.Date)).expense += e.Amount
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	sort.Strings(keys)

	rows := make([]ProfitRow, 0, len(keys))
	for _, key := range keys {
		a := byDate[key]
		rows = append(rows, ProfitRow{
			Date:    key,
			Omzet:   a.omzet,
			Expense: a.expense,
			Profit:  a.omzet - a.expense,
		})
	}
	return rows
}

// DaySummary: rollup dashboard untuk satu tanggal.
type DaySummary struct {
	Date              string `json:"tanggal"`
	ProductionTotal   int    `json:"total_produksi_hari_ini"`
	Omzet             int    `json:"total_penjualan_hari_ini"`
	Expenses          int    `json:"total_pengeluaran_hari_ini"`
	Profit            int    `json:"laba_hari_ini"`
	CreditOutstanding int    `json:"piutang_tempo_hari_ini"`
}

// Summarize menghitung rollup kas satu tanggal. Aturan omzetnya sama dengan
// DailyProfit; piutang Tempo tanggal itu dilaporkan terpisah.
func Summarize(date string, batches []models.ProductionBatch, sales []models.Sale, returns []models.SaleReturn, expenses []models.Expense) DaySummary {
	out := DaySummary{Date: date}

	for _, b := range batches {
		if dateKey(b.Date) == date {
			out.ProductionTotal += b.Total
		}
	}
	for _, s := range sales {
		if dateKey(s.Date) != date {
			continue
		}
		if s.Status == models.StatusLunas {
			out.Omzet += s.Total
		} else {
			out.CreditOutstanding += s.Total
		}
	}
	for _, r := range returns {
		if dateKey(r.Date) == date {
			out.Omzet -= r.Total
		}
	}
	for _, e := range expenses {
		if dateKey(e.Date) == date {
			out.Expenses += e.Amount
		}
	}

	out.Profit = out.Omzet - out.Expenses
	return out
}
