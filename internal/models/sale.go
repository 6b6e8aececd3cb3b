package models

import "time"

type BuyerCategory string

const (
	CategoryGrosir BuyerCategory = "Grosir" // harga grosir
	CategoryEceran BuyerCategory = "Eceran" // harga eceran
)

type PaymentStatus string

const (
	StatusLunas PaymentStatus = "Lunas" // sudah dibayar
	StatusTempo PaymentStatus = "Tempo" // piutang, belum dibayar
)

// Toggled: Lunas <-> Tempo. Dua kali toggle kembali ke status awal.
func (s PaymentStatus) Toggled() PaymentStatus {
	if s == StatusLunas {
		return StatusTempo
	}
	return StatusLunas
}

// Sale: satu transaksi penjualan tempe. Subtotal dan total dihitung saat
// pembuatan dan tidak pernah dihitung ulang.
type Sale struct {
	ID          uint          `gorm:"primaryKey"`
	Date        time.Time     `gorm:"index;not null"` // tanggal penjualan (per hari)
	Buyer       string        `gorm:"size:100;not null"`
	Category    BuyerCategory `gorm:"size:20;not null"`
	Qty3K       int           `gorm:"not null"`
	Qty5K       int           `gorm:"not null"`
	Qty10K      int           `gorm:"not null"`
	Subtotal3K  int           `gorm:"not null"`
	Subtotal5K  int           `gorm:"not null"`
	Subtotal10K int           `gorm:"not null"`
	Total       int           `gorm:"not null"`
	Status      PaymentStatus `gorm:"size:20;not null"` // satu-satunya field yang boleh berubah
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaleReturn: retur terhadap penjualan tertentu. Total retur dihitung dengan
// harga kategori penjualan asalnya, bukan kategori saat retur dibuat.
type SaleReturn struct {
	ID        uint      `gorm:"primaryKey"`
	SaleID    uint      `gorm:"index;not null"`
	Sale      Sale
	Date      time.Time `gorm:"index;not null"`
	Ret3K     int       `gorm:"not null"`
	Ret5K     int       `gorm:"not null"`
	Ret10K    int       `gorm:"not null"`
	Total     int       `gorm:"not null"`
	Note      string    `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
