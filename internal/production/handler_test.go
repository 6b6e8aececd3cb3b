package production

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tempe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// stubBatchStore menyimpan batch di memori dengan slot tanggal sebagai
// kunci, meniru uniqueIndex di tabel produksi.
type stubBatchStore struct {
	taken   map[string]bool
	created []models.ProductionBatch
}

func newStubBatchStore() *stubBatchStore {
	return &stubBatchStore{taken: make(map[string]bool)}
}

func (s *stubBatchStore) findByDate(d time.Time) error {
	if s.taken[d.Format("2006-01-02")] {
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (s *stubBatchStore) create(b *models.ProductionBatch, workerIDs []uint) error {
	b.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *b)
	s.taken[b.Date.Format("2006-01-02")] = true
	return nil
}

func (s *stubBatchStore) annotate(b models.ProductionBatch) (BatchResponse, error) {
	return BatchResponse{ID: b.ID, Date: b.Date.Format("2006-01-02"), Total: b.Total}, nil
}

func postBatch(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/produksi", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	return resp
}

func TestCreateBatchTanggalDuplikatDitolak(t *testing.T) {
	store := newStubBatchStore()
	app := fiber.New()
	app.Post("/api/produksi", createBatchHandler(store))

	body := `{"tanggal":"2026-03-01","kedelai_kg":25,"tempe_3k_produksi":40,"pekerja_ids":[1,2]}`

	resp := postBatch(t, app, body)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("batch pertama: status %d, harusnya %d", resp.StatusCode, fiber.StatusCreated)
	}
	if len(store.created) != 1 {
		t.Fatalf("batch tersimpan %d, harusnya 1", len(store.created))
	}

	resp = postBatch(t, app, body)
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("tanggal duplikat: status %d, harusnya %d", resp.StatusCode, fiber.StatusConflict)
	}
	if len(store.created) != 1 {
		t.Errorf("batch duplikat ikut tersimpan: %d baris", len(store.created))
	}
}

func TestCreateBatchSlotBebasSetelahPindahTanggal(t *testing.T) {
	store := newStubBatchStore()
	app := fiber.New()
	app.Post("/api/produksi", createBatchHandler(store))

	body := `{"tanggal":"2026-03-02","tempe_5k_produksi":30}`

	if resp := postBatch(t, app, body); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("batch pertama: status %d", resp.StatusCode)
	}
	if resp := postBatch(t, app, body); resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("tanggal terisi: status %d, harusnya %d", resp.StatusCode, fiber.StatusConflict)
	}

	// Batch lama dipindah ke tanggal lain; slot hanya dikunci oleh tanggal,
	// jadi tanggal semula bisa dipakai lagi.
	delete(store.taken, "2026-03-02")
	store.taken["2026-03-09"] = true

	if resp := postBatch(t, app, body); resp.StatusCode != fiber.StatusCreated {
		t.Errorf("slot yang sudah bebas: status %d, harusnya %d", resp.StatusCode, fiber.StatusCreated)
	}
}

func TestCreateBatchFormatTanggalSalah(t *testing.T) {
	app := fiber.New()
	app.Post("/api/produksi", createBatchHandler(newStubBatchStore()))

	resp := postBatch(t, app, `{"tanggal":"01-03-2026"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("format tanggal salah: status %d, harusnya %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
