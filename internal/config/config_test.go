package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/team-manager/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBEnabled {
		t.Fatalf("expected DBEnabled=false by default")
	}
	if cfg.SetupSessionTTL != 30*time.Minute {
		t.Fatalf("unexpected SetupSessionTTL: %s", cfg.SetupSessionTTL)
	}
	if cfg.CatalogWarmupWorkers != 4 {
		t.Fatalf("unexpected CatalogWarmupWorkers: %d", cfg.CatalogWarmupWorkers)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if !cfg.TeamGraphQL.CircuitBreaker.Enabled {
		t.Fatalf("expected graphql circuit breaker enabled by default")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %#v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "team-manager-stage")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "team-manager-stage" {
		t.Fatalf("unexpected PyroscopeAppName: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORSAllowedOrigins: %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected second origin: %q", cfg.CORSAllowedOrigins[1])
	}
}

func TestLoad_DurationValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unparseable cache ttl", key: "CACHE_TTL", value: "soon"},
		{name: "zero session ttl", key: "SETUP_SESSION_TTL", value: "0s"},
		{name: "negative graphql timeout", key: "TEAM_GRAPHQL_TIMEOUT", value: "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_DBSeedRequiresDB(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_ENABLED", "false")
	t.Setenv("DB_SEED_ON_START", "true")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DB_SEED_ON_START=true without DB_ENABLED")
	}
}

func TestLoad_TeamGraphQLConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("TEAM_GRAPHQL_ENABLED", "true")
	t.Setenv("TEAM_GRAPHQL_ENDPOINT", " https://teams.example.com/graphql ")
	t.Setenv("TEAM_GRAPHQL_TOKEN", "secret")
	t.Setenv("TEAM_GRAPHQL_TIMEOUT", "2s")
	t.Setenv("TEAM_GRAPHQL_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("TEAM_GRAPHQL_CIRCUIT_OPEN_TIMEOUT", "30s")
	t.Setenv("TEAM_GRAPHQL_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TeamGraphQL.Endpoint != "https://teams.example.com/graphql" {
		t.Fatalf("unexpected endpoint: %q", cfg.TeamGraphQL.Endpoint)
	}
	if cfg.TeamGraphQL.Token != "secret" {
		t.Fatalf("unexpected token")
	}
	if cfg.TeamGraphQL.Timeout != 2*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.TeamGraphQL.Timeout)
	}
	breaker := cfg.TeamGraphQL.CircuitBreaker
	if breaker.FailureThreshold != 3 || breaker.OpenTimeout != 30*time.Second || breaker.HalfOpenMaxReq != 1 {
		t.Fatalf("unexpected circuit breaker config: %+v", breaker)
	}
}

func TestLoad_TeamGraphQLRequiresEndpointWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("TEAM_GRAPHQL_ENABLED", "true")
	t.Setenv("TEAM_GRAPHQL_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when TEAM_GRAPHQL_ENABLED=true without TEAM_GRAPHQL_ENDPOINT")
	}
}

func TestLoad_WarmupWorkersMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CATALOG_WARMUP_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for CATALOG_WARMUP_WORKERS=0")
	}
}
