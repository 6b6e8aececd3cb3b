package wages

import (
	"testing"
	"time"
)

func TestDisburseDateDefaultJatuhTengahMalam(t *testing.T) {
	now := func() time.Time {
		return time.Date(2026, 8, 28, 7, 9, 46, 330000000, time.UTC)
	}

	d, err := disburseDate("", now)
	if err != nil {
		t.Fatalf("disburseDate gagal: %v", err)
	}

	want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("tanggal default = %v, harusnya %v", d, want)
	}

	// Harus identik dengan kunci yang dipakai rekap harian untuk hari itu.
	key, err := time.Parse("2006-01-02", "2026-08-28")
	if err != nil {
		t.Fatalf("parse kunci: %v", err)
	}
	if !d.Equal(key) {
		t.Errorf("tanggal default %v tidak cocok dengan kunci harian %v", d, key)
	}
}

func TestDisburseDateEksplisit(t *testing.T) {
	d, err := disburseDate("2026-01-05", func() time.Time { return time.Time{} })
	if err != nil {
		t.Fatalf("disburseDate gagal: %v", err)
	}
	want := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("tanggal = %v, harusnya %v", d, want)
	}
}

func TestDisburseDateFormatSalah(t *testing.T) {
	if _, err := disburseDate("05-01-2026", time.Now); err == nil {
		t.Error("format 'DD-MM-YYYY' harusnya ditolak")
	}
}
