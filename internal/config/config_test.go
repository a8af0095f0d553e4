package config

import (
	"strings"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.DefaultTeam != "NYM" {
		t.Fatalf("expected default team NYM, got %s", cfg.DefaultTeam)
	}
	if cfg.Timezone != defaultTimezone {
		t.Fatalf("expected default timezone, got %s", cfg.Timezone)
	}
	if cfg.Provider != ProviderStatsAPI {
		t.Fatalf("expected statsapi provider, got %s", cfg.Provider)
	}
	if cfg.ProviderTimeout != 10*time.Second || cfg.RetryAttempts != 2 || cfg.RetryBackoff != 200*time.Millisecond {
		t.Fatalf("unexpected provider defaults %+v", cfg)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected log defaults %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.ServiceName != "mlb-lineups" || cfg.Metrics.OtlpInsecure {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LINEUPS_DEFAULT_TEAM", "lad")
	t.Setenv("LINEUPS_TIMEZONE", "America/Los_Angeles")
	t.Setenv("LINEUPS_PROVIDER", "Fixture")
	t.Setenv("LINEUPS_PROVIDER_TIMEOUT", "3s")
	t.Setenv("LINEUPS_RETRY_ATTEMPTS", "4")
	t.Setenv("LINEUPS_RETRY_BACKOFF", "50ms")
	t.Setenv("LINEUPS_STATSAPI_BASE_URL", "http://localhost:8080/api/v1")
	t.Setenv("LINEUPS_LOG_LEVEL", "debug")
	t.Setenv("LINEUPS_LOG_FORMAT", "json")
	t.Setenv("LINEUPS_METRICS_ENABLED", "true")
	t.Setenv("LINEUPS_METRICS_TEXTFILE", "/tmp/lineups.prom")
	t.Setenv("LINEUPS_OTEL_ENDPOINT", "collector:4318")
	t.Setenv("LINEUPS_OTEL_INSECURE", "true")
	t.Setenv("LINEUPS_OTEL_SERVICE_NAME", "lineups-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.DefaultTeam != "lad" || cfg.Provider != ProviderFixture {
		t.Fatalf("unexpected team/provider %s/%s", cfg.DefaultTeam, cfg.Provider)
	}
	if cfg.Location().String() != "America/Los_Angeles" {
		t.Fatalf("unexpected location %s", cfg.Location())
	}
	if cfg.ProviderTimeout != 3*time.Second || cfg.RetryAttempts != 4 || cfg.RetryBackoff != 50*time.Millisecond {
		t.Fatalf("unexpected provider overrides %+v", cfg)
	}
	if cfg.StatsAPIBaseURL != "http://localhost:8080/api/v1" {
		t.Fatalf("unexpected base url %s", cfg.StatsAPIBaseURL)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected log overrides %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	want := MetricsConfig{
		Enabled:      true,
		TextfilePath: "/tmp/lineups.prom",
		OtlpEndpoint: "collector:4318",
		OtlpInsecure: true,
		ServiceName:  "lineups-test",
	}
	if cfg.Metrics != want {
		t.Fatalf("expected metrics %+v, got %+v", want, cfg.Metrics)
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv("LINEUPS_PROVIDER_TIMEOUT", "0s")
	t.Setenv("LINEUPS_RETRY_ATTEMPTS", "-1")
	t.Setenv("LINEUPS_RETRY_BACKOFF", "-5ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.ProviderTimeout != defaultProviderTimeout || cfg.RetryAttempts != defaultRetryAttempts || cfg.RetryBackoff != defaultRetryBackoff {
		t.Fatalf("expected defaults for non-positive values, got %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"timezone", "LINEUPS_TIMEZONE", "Mars/Olympus_Mons", "invalid timezone"},
		{"provider", "LINEUPS_PROVIDER", "espn", "unknown provider"},
		{"duration", "LINEUPS_PROVIDER_TIMEOUT", "soon", "config:"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLocationFallsBackForUnvalidatedTimezone(t *testing.T) {
	cfg := Config{Timezone: "Mars/Olympus_Mons"}
	if got := cfg.Location().String(); got != "America/New_York" {
		t.Fatalf("expected default timezone fallback, got %s", got)
	}
}
