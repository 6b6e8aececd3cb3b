package pricing

import (
	"testing"

	"tempe-backend/internal/models"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		category models.BuyerCategory
		size     PackageSize
		want     int
	}{
		{"eceran 3k", models.CategoryEceran, Size3K, 3000},
		{"eceran 5k", models.CategoryEceran, Size5K, 5000},
		{"eceran 10k", models.CategoryEceran, Size10K, 10000},
		{"grosir 3k", models.CategoryGrosir, Size3K, 2500},
		{"grosir 5k", models.CategoryGrosir, Size5K, 4000},
		{"grosir 10k tetap", models.CategoryGrosir, Size10K, 10000},
		{"kategori kosong dianggap eceran", "", Size5K, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.category, tt.size); got != tt.want {
				t.Errorf("Price(%q, %q) = %d, want %d", tt.category, tt.size, got, tt.want)
			}
		})
	}
}

func TestLineTotals(t *testing.T) {
	tests := []struct {
		name                        string
		category                    models.BuyerCategory
		q3, q5, q10                 int
		want3, want5, want10, total int
	}{
		{"grosir satu 3k satu 5k", models.CategoryGrosir, 1, 1, 0, 2500, 4000, 0, 6500},
		{"eceran satu 3k satu 5k", models.CategoryEceran, 1, 1, 0, 3000, 5000, 0, 8000},
		{"nol semua", models.CategoryEceran, 0, 0, 0, 0, 0, 0, 0},
		// jumlah negatif tidak divalidasi; subtotal ikut negatif
		{"jumlah negatif diterima", models.CategoryEceran, -2, 0, 1, -6000, 0, 10000, 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s3, s5, s10, total := LineTotals(tt.category, tt.q3, tt.q5, tt.q10)
			if s3 != tt.want3 || s5 != tt.want5 || s10 != tt.want10 {
				t.Errorf("LineTotals subtotal = (%d,%d,%d), want (%d,%d,%d)", s3, s5, s10, tt.want3, tt.want5, tt.want10)
			}
			if total != tt.total {
				t.Errorf("LineTotals total = %d, want %d", total, tt.total)
			}
			if total != s3+s5+s10 {
				t.Errorf("total %d != jumlah subtotal %d", total, s3+s5+s10)
			}
		})
	}
}
