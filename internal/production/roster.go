package production

import "tempe-backend/internal/models"

// RosterDiff membandingkan klaim upah yang sudah ada untuk satu batch dengan
// daftar pekerja hasil edit. Hasilnya:
//   - toAdd: id pekerja baru yang belum punya klaim (dibuatkan klaim kosong)
//   - toRemove: id KLAIM yang boleh dihapus, yaitu klaim belum dibayar milik
//     pekerja yang dikeluarkan dari daftar
//
// Klaim yang sudah dibayar milik pekerja yang dikeluarkan TIDAK ikut
// toRemove: riwayat pembayaran tidak pernah ditarik kembali oleh edit daftar.
func RosterDiff(existing []models.WageClaim, workerIDs []uint) (toAdd []uint, toRemove []uint) {
	wanted := make(map[uint]bool, len(workerIDs))
	for _, id := range workerIDs {
		wanted[id] = true
	}

	have := make(map[uint]bool, len(existing))
	for _, claim := range existing {
		have[claim.WorkerID] = true
		if !wanted[claim.WorkerID] && !claim.Paid {
			toRemove = append(toRemove, claim.ID)
		}
	}

	for _, id := range workerIDs {
		if !have[id] {
			have[id] = true // id duplikat di request hanya dihitung sekali
			toAdd = append(toAdd, id)
		}
	}

	return toAdd, toRemove
}
