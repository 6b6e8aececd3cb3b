package stock

import (
	"sort"
	"time"

	"tempe-backend/internal/models"
)

// Counts: jumlah pcs per ukuran kemasan.
type Counts struct {
	Qty3K  int `json:"tempe_3k"`
	Qty5K  int `json:"tempe_5k"`
	Qty10K int `json:"tempe_10k"`
}

func (c Counts) Total() int { return c.Qty3K + c.Qty5K + c.Qty10K }

// Summary: saldo stok berjalan per ukuran.
type Summary struct {
	Qty3K  int `json:"stok_3k"`
	Qty5K  int `json:"stok_5k"`
	Qty10K int `json:"stok_10k"`
	Total  int `json:"total_stok"`
}

// HistoryRow: satu baris riwayat stok per tanggal dengan saldo berjalan.
type HistoryRow struct {
	Date         string `json:"tanggal"`
	Inflow       int    `json:"masuk"`  // produksi + retur
	Outflow      int    `json:"keluar"` // penjualan
	Balance3K    int    `json:"saldo_3k"`
	Balance5K    int    `json:"saldo_5k"`
	Balance10K   int    `json:"saldo_10k"`
	BalanceTotal int    `json:"saldo_total"`
}

// ProductRow: rincian komponen per tanggal tanpa akumulasi.
type ProductRow struct {
	Date     string `json:"tanggal"`
	Produced Counts `json:"produksi"`
	Sold     Counts `json:"terjual"`
	Returned Counts `json:"retur"`
	Damaged  Counts `json:"rusak"` // dicadangkan, saat ini selalu 0
	Expired  bool   `json:"expired"`
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

// expiredDates: himpunan tanggal yang punya batch ditandai expired.
func expiredDates(batches []models.ProductionBatch) map[string]bool {
	dates := make(map[string]bool)
	for _, b := range batches {
		if b.Expired {
			dates[dateKey(b.Date)] = true
		}
	}
	return dates
}

// Current menghitung stok berjalan: produksi - penjualan + retur, dijumlah
// atas seluruh catatan. Saat excludeExpired, catatan apapun yang jatuh pada
// tanggal ber-batch-expired dilewati. Stok boleh negatif dan dilaporkan
// apa adanya.
func Current(batches []models.ProductionBatch, sales []models.Sale, returns []models.SaleReturn, excludeExpired bool) Summary {
	skip := map[string]bool{}
	if excludeExpired {
		skip = expiredDates(batches)
	}

	var s Summary
	for _, b := range batches {
		if skip[dateKey(b.Date)] {
			continue
		}
		s.Qty3K += b.Qty3K
		s.Qty5K += b.Qty5K
		s.Qty10K += b.Qty10K
	}
	for _, sale := range sales {
		if skip[dateKey(sale.Date)] {
			continue
		}
		s.Qty3K -= sale.Qty3K
		s.Qty5K -= sale.Qty5K
		s.Qty10K -= sale.Qty10K
	}
	for _, r := range returns {
		if skip[dateKey(r.Date)] {
			continue
		}
		s.Qty3K += r.Ret3K
		s.Qty5K += r.Ret5K
		s.Qty10K += r.Ret10K
	}
	s.Total = s.Qty3K + s.Qty5K + s.Qty10K
	return s
}

// agregat harian mentah sebelum akumulasi
type dayAgg struct {
	produced Counts
	sold     Counts
	returned Counts
	expired  bool
}

func aggregateByDate(batches []models.ProductionBatch, sales []models.Sale, returns []models.SaleReturn) (map[string]*dayAgg, []string) {
	byDate := make(map[string]*dayAgg)
	get := func(key string) *dayAgg {
		if a, ok := byDate[key]; ok {
			return a
		}
		a := &dayAgg{}
		byDate[key] = a
		return a
	}

	for _, b := range batches {
		a := get(dateKey(b.Date))
		a.produced.Qty3K += b.Qty3K
		a.produced.Qty5K += b.Qty5K
		a.produced.Qty10K += b.Qty10K
		if b.Expired {
			a.expired = true
		}
	}
	for _, s := range sales {
		a := get(dateKey(s.Date))
		a.sold.Qty3K += s.Qty3K
		a.sold.Qty5K += s.Qty5K
		a.sold.Qty10K += s.Qty10K
	}
	for _, r := range returns {
		a := get(dateKey(r.Date))
		a.returned.Qty3K += r.Ret3K
		a.returned.Qty5K += r.Ret5K
		a.returned.Qty10K += r.Ret10K
	}

	// kunci "YYYY-MM-DD" terurut leksikografis = terurut kronologis
	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return byDate, keys
}

// History menjalankan saldo berjalan per ukuran dari tanggal terlama ke
// terbaru, lalu membalik urutan keluaran (terbaru dulu). Baris terakhir
// perhitungan (= baris pertama keluaran) sama dengan Current tanpa
// pengecualian expired.
func History(batches []models.ProductionBatch, sales []models.Sale, returns []models.SaleReturn) []HistoryRow {
	byDate, keys := aggregateByDate(batches, sales, returns)

	rows := make([]HistoryRow, 0, len(keys))
	var bal Counts
	for _, key := range keys {
		a := byDate[key]
		bal.Qty3K += a.produced.Qty3K + a.returned.Qty3K - a.sold.Qty3K
		bal.Qty5K += a.produced.Qty5K + a.returned.Qty5K - a.sold.Qty5K
		bal.Qty10K += a.produced.Qty10K + a.returned.Qty10K - a.sold.Qty10K
		rows = append(rows, HistoryRow{
			Date:         key,
			Inflow:       a.produced.Total() + a.returned.Total(),
			Outflow:      a.sold.Total(),
			Balance3K:    bal.Qty3K,
			Balance5K:    bal.Qty5K,
			Balance10K:   bal.Qty10K,
			BalanceTotal: bal.Total(),
		})
	}

	// keluaran terbaru dulu
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// ByProduct mengeluarkan komponen per sumber per tanggal tanpa akumulasi,
// terbaru dulu. Kolom rusak dicadangkan untuk pencatatan kerusakan terpisah
// dan saat ini selalu nol.
func ByProduct(batches []models.ProductionBatch, sales []models.Sale, returns []models.SaleReturn) []ProductRow {
	byDate, keys := aggregateByDate(batches, sales, returns)

	rows := make([]ProductRow, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		a := byDate[keys[i]]
		rows = append(rows, ProductRow{
			Date:     keys[i],
			Produced: a.produced,
			Sold:     a.sold,
			Returned: a.returned,
			Expired:  a.expired,
		})
	}
	return rows
}
