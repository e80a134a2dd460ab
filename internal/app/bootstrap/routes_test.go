package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"github.com/encodersih/alumni-connect/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, mutate func(*AppConfig)) (http.Handler, testutil.Directory) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := validConfig()
	cfg.AuditLogMentorship, cfg.AuditLogAdmin = "db", "db"
	if mutate != nil {
		mutate(&cfg)
	}
	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	if err := EnsureSchema(ctx, nil, cfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	dir := testutil.NewFixtures(t, db).SeedDirectory(ctx)

	return buildRouter(cfg, deps, prometheus.NewRegistry(), zap.NewNop()), dir
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", target, nil)
	r.RemoteAddr = "10.0.0.1:1234"
	h.ServeHTTP(rec, r)
	return rec
}

func TestBuildRouter_Endpoints(t *testing.T) {
	h, dir := newTestRouter(t, nil)

	tests := []struct {
		target string
		want   int
	}{
		{"/health", http.StatusOK},
		{"/api/mentorship/matching?studentId=" + dir.John.ID.Hex(), http.StatusOK},
		{"/api/mentorship/matching", http.StatusBadRequest},
		{"/api/mentorship/requests?userType=student&userId=" + dir.John.ID.Hex(), http.StatusOK},
		{"/api/alumni/search?industry=Technology", http.StatusOK},
		{"/api/admin/users", http.StatusOK},
		{"/api/admin/analytics", http.StatusOK},
		{"/api/admin/analytics/activity", http.StatusOK},
		{"/api/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if rec := get(h, tt.target); rec.Code != tt.want {
				t.Errorf("GET %s = %d, want %d; body %s", tt.target, rec.Code, tt.want, rec.Body.String())
			}
		})
	}

	rec := get(h, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"alumni_http_requests_total", "alumni_matching_requests_total", "alumni_list_queries_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("/metrics missing %s", name)
		}
	}
	if !strings.Contains(body, `route="/api/mentorship/matching"`) {
		t.Error("/metrics has no per-route label for matching")
	}
}

func TestBuildRouter_RateLimit(t *testing.T) {
	h, _ := newTestRouter(t, func(c *AppConfig) { c.RateLimitPerMinute = 2 })

	for i := 0; i < 2; i++ {
		if rec := get(h, "/api/alumni/search"); rec.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200", i+1, rec.Code)
		}
	}
	if rec := get(h, "/api/alumni/search"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", rec.Code)
	}
	// /health sits outside /api and is never limited.
	if rec := get(h, "/health"); rec.Code != http.StatusOK {
		t.Errorf("/health = %d, want 200", rec.Code)
	}
}

func TestBuildRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t, func(c *AppConfig) { c.CORSAllowedOrigins = []string{"https://alumni.example.edu"} })

	r := httptest.NewRequest("OPTIONS", "/api/alumni/search", nil)
	r.Header.Set("Origin", "https://alumni.example.edu")
	r.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://alumni.example.edu" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestStartup_ConfiguresTimeouts(t *testing.T) {
	defer timeouts.Reset()

	cfg := validConfig()
	cfg.TimeoutShort = 3 * time.Second
	if err := Startup(context.Background(), nil, cfg, DBDeps{}, zap.NewNop()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if got := timeouts.Short(); got != cfg.TimeoutShort {
		t.Errorf("Short() = %v, want %v", got, cfg.TimeoutShort)
	}
	if got := timeouts.Medium(); got != cfg.TimeoutMedium {
		t.Errorf("Medium() = %v, want %v", got, cfg.TimeoutMedium)
	}
}

func TestShutdown_NoClient(t *testing.T) {
	if err := Shutdown(context.Background(), nil, validConfig(), DBDeps{}, zap.NewNop()); err != nil {
		t.Errorf("Shutdown() = %v", err)
	}
}
