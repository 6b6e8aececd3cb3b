package audit

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Limit yang tak valid harus ditolak sebelum query jalan, termasuk angka
// dengan sisa karakter seperti "50xyz".
func TestListAuditLogsLimitTakValid(t *testing.T) {
	app := fiber.New()
	app.Get("/api/audit-logs", ListAuditLogsHandler(nil))

	for _, limit := range []string{"50xyz", "0", "-1", "501", "lima"} {
		req := httptest.NewRequest("GET", "/api/audit-logs?limit="+limit, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request gagal: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("limit=%s: status %d, harusnya %d", limit, resp.StatusCode, fiber.StatusBadRequest)
		}
	}
}
