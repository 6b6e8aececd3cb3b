package sales

import (
	"testing"

	"tempe-backend/internal/models"
)

// Nilai retur harus mengikuti kategori yang tersimpan di penjualan asal,
// bukan tarif eceran default.
func TestReturnTotalMemakaiKategoriAsal(t *testing.T) {
	tests := []struct {
		name     string
		category models.BuyerCategory
		ret3K    int
		ret5K    int
		ret10K   int
		want     int
	}{
		{
			name:     "asal grosir dihargai tarif grosir",
			category: models.CategoryGrosir,
			ret3K:    2,
			ret5K:    1,
			ret10K:   1,
			want:     2*2500 + 4000 + 10000,
		},
		{
			name:     "asal eceran dihargai tarif eceran",
			category: models.CategoryEceran,
			ret3K:    2,
			ret5K:    1,
			ret10K:   1,
			want:     2*3000 + 5000 + 10000,
		},
		{
			name:     "kategori tak dikenal jatuh ke eceran",
			category: models.BuyerCategory("Borongan"),
			ret3K:    1,
			ret5K:    0,
			ret10K:   0,
			want:     3000,
		},
		{
			name:     "retur kosong bernilai nol",
			category: models.CategoryGrosir,
			want:     0,
		},
		{
			name:     "jumlah negatif ikut terhitung",
			category: models.CategoryGrosir,
			ret3K:    -2,
			want:     -5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := models.Sale{Category: tt.category}
			got := ReturnTotal(sale, tt.ret3K, tt.ret5K, tt.ret10K)
			if got != tt.want {
				t.Errorf("ReturnTotal = %d, harusnya %d", got, tt.want)
			}
		})
	}
}

// Penjualan grosir dan eceran dengan isi retur sama harus menghasilkan
// nilai berbeda selama ada kemasan yang tarifnya beda.
func TestReturnTotalGrosirLebihMurah(t *testing.T) {
	grosir := ReturnTotal(models.Sale{Category: models.CategoryGrosir}, 3, 2, 0)
	eceran := ReturnTotal(models.Sale{Category: models.CategoryEceran}, 3, 2, 0)
	if grosir >= eceran {
		t.Errorf("retur grosir %d harusnya lebih kecil dari eceran %d", grosir, eceran)
	}
}
