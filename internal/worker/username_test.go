package worker

import "testing"

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"nama sederhana", "Budi", "budi"},
		{"dua kata", "Budi Santoso", "budi.santoso"},
		{"spasi berlebih", "  Siti  Aminah ", "siti.aminah"},
		{"karakter aneh dibuang", "Agus (Pak RT)!", "agus.pak.rt"},
		{"angka dipertahankan", "Joko 2", "joko.2"},
		{"kosong jatuh ke default", "   ", "karyawan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveUsername(tt.in); got != tt.want {
				t.Errorf("DeriveUsername(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
