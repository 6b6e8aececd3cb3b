package worker

import "strings"

// DeriveUsername menurunkan username login dari nama karyawan:
// huruf kecil, spasi jadi titik, selain huruf/angka dibuang.
// Nama kosong jatuh ke "karyawan".
func DeriveUsername(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('.')
		}
	}
	username := strings.Trim(b.String(), ".")
	for strings.Contains(username, "..") {
		username = strings.ReplaceAll(username, "..", ".")
	}
	if username == "" {
		return "karyawan"
	}
	return username
}
