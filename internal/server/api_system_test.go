package server_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	"github.com/cooper-xs/cf-daily-tracker/internal/health"
	"github.com/cooper-xs/cf-daily-tracker/internal/server"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/cache"
)

func newTestHealthHandler(t *testing.T) (*server.APIHandler, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:       []string{mini.Addr()},
		DisableCache:      true,
		ForceSingleClient: true,
	})
	if err != nil {
		t.Fatalf("failed to create valkey client: %v", err)
	}
	t.Cleanup(client.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cacheSvc := cache.NewWithClient(client, logger)
	return server.NewAPIHandler(nil, nil, nil, cacheSvc, nil, logger), mini
}

func getHealthStatus(t *testing.T, h *server.APIHandler) string {
	t.Helper()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/health", nil)
	h.GetHealth(c)

	if rec.Code != 200 {
		t.Fatalf("unexpected status code: %d", rec.Code)
	}
	var resp health.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	return resp.Status
}

// TestHealthReportsCacheConnectivity: 캐시 스토어가 내려가면 health 상태가 낮아진다
func TestHealthReportsCacheConnectivity(t *testing.T) {
	handler, mini := newTestHealthHandler(t)

	if got := getHealthStatus(t, handler); got != "ok" {
		t.Fatalf("connected store: want status ok, got %q", got)
	}

	mini.Close()

	if got := getHealthStatus(t, handler); got != "degraded" {
		t.Fatalf("store down: want status degraded, got %q", got)
	}
}
