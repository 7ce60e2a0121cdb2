package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/team-manager/internal/config"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                 config.EnvDev,
		HTTPAddr:               "127.0.0.1:0",
		ReadTimeout:            time.Second,
		WriteTimeout:           time.Second,
		ShutdownTimeout:        time.Second,
		CacheEnabled:           true,
		CacheTTL:               time.Minute,
		CORSAllowedOrigins:     []string{"*"},
		SetupSessionTTL:        time.Minute,
		SetupSessionPurgeEvery: time.Minute,
		CatalogWarmupWorkers:   2,
	}
}

func TestNew_InMemoryServesCatalog(t *testing.T) {
	a, err := New(t.Context(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}

	rec := httptest.NewRecorder()
	a.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/game-formats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	a.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", rec.Code)
	}
}

func TestNew_RequiresHTTPAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	if _, err := New(t.Context(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestNew_InvalidGraphQLEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.TeamGraphQL.Enabled = true
	cfg.TeamGraphQL.Endpoint = "not a url"

	if _, err := New(t.Context(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for invalid graphql endpoint")
	}
}
