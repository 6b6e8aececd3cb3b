package pricing

import "tempe-backend/internal/models"

// Harga per ukuran kemasan. Grosir dapat potongan di 3k dan 5k,
// ukuran 10k harganya sama di kedua tingkat.
const (
	Eceran3K  = 3000
	Eceran5K  = 5000
	Eceran10K = 10000

	Grosir3K  = 2500
	Grosir5K  = 4000
	Grosir10K = 10000
)

type PackageSize string

const (
	Size3K  PackageSize = "3k"
	Size5K  PackageSize = "5k"
	Size10K PackageSize = "10k"
)

// Price: harga satuan untuk kombinasi kategori dan ukuran. Fungsi total,
// kategori tak dikenal diperlakukan sebagai Eceran (harga default, sama
// seperti perilaku data lama tanpa kategori).
func Price(category models.BuyerCategory, size PackageSize) int {
	if category == models.CategoryGrosir {
		switch size {
		case Size3K:
			return Grosir3K
		case Size5K:
			return Grosir5K
		case Size10K:
			return Grosir10K
		}
	}
	switch size {
	case Size3K:
		return Eceran3K
	case Size5K:
		return Eceran5K
	case Size10K:
		return Eceran10K
	}
	return 0
}

// LineTotals menghitung subtotal per ukuran dan total keseluruhan.
// Dipakai penjualan (kategori penjualan itu sendiri) dan retur
// (kategori penjualan asal).
func LineTotals(category models.BuyerCategory, qty3K, qty5K, qty10K int) (sub3K, sub5K, sub10K, total int) {
	sub3K = qty3K * Price(category, Size3K)
	sub5K = qty5K * Price(category, Size5K)
	sub10K = qty10K * Price(category, Size10K)
	total = sub3K + sub5K + sub10K
	return
}
