package worker

import (
	"tempe-backend/internal/models"

	"gorm.io/gorm"
)

// UnknownName: sentinel untuk referensi karyawan yang sudah tidak ada.
// Klaim upah lama tetap bisa ditampilkan walau karyawannya terhapus.
const UnknownName = "Unknown"

// Names melakukan lookup nama per kumpulan id. Id yang tidak ditemukan
// dipetakan ke UnknownName, bukan error.
func Names(db *gorm.DB, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	for _, id := range ids {
		names[id] = UnknownName
	}
	if len(ids) == 0 {
		return names, nil
	}

	var workers []models.Worker
	if err := db.Where("id IN ?", ids).Find(&workers).Error; err != nil {
		return nil, err
	}
	for _, w := range workers {
		names[w.ID] = w.Name
	}
	return names, nil
}
