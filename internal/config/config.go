package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/preston-bernstein/mlb-lineups/internal/timeutil"
)

// Prefix is prepended to every environment variable, e.g. LINEUPS_DEFAULT_TEAM.
const Prefix = "LINEUPS"

// Provider names accepted by LINEUPS_PROVIDER.
const (
	ProviderStatsAPI = "statsapi"
	ProviderFixture  = "fixture"
)

const (
	defaultTeam            = "NYM"
	defaultTimezone        = "America/New_York"
	defaultProvider        = ProviderStatsAPI
	defaultProviderTimeout = 10 * time.Second
	defaultRetryAttempts   = 2
	defaultRetryBackoff    = 200 * time.Millisecond
	defaultLogLevel        = "warn"
	defaultLogFormat       = "text"
	defaultServiceName     = "mlb-lineups"
)

// Config holds runtime configuration for one lookup.
type Config struct {
	DefaultTeam string `envconfig:"DEFAULT_TEAM" default:"NYM"`
	Timezone    string `envconfig:"TIMEZONE" default:"America/New_York"`
	Provider    string `envconfig:"PROVIDER" default:"statsapi"`

	ProviderTimeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
	RetryAttempts   int           `envconfig:"RETRY_ATTEMPTS" default:"2"`
	RetryBackoff    time.Duration `envconfig:"RETRY_BACKOFF" default:"200ms"`

	StatsAPIBaseURL string `envconfig:"STATSAPI_BASE_URL"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	MetricsEnabled  bool   `envconfig:"METRICS_ENABLED" default:"false"`
	MetricsTextfile string `envconfig:"METRICS_TEXTFILE"`
	OtelEndpoint    string `envconfig:"OTEL_ENDPOINT"`
	OtelInsecure    bool   `envconfig:"OTEL_INSECURE" default:"false"`
	OtelServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"mlb-lineups"`

	// Metrics is derived from the METRICS_* and OTEL_* values by Load.
	Metrics MetricsConfig `ignored:"true"`
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	TextfilePath string
	OtlpEndpoint string
	OtlpInsecure bool
	ServiceName  string
}

// Load reads configuration from LINEUPS_* environment variables.
// Non-positive durations and counts fall back to their defaults; an unknown
// provider or timezone is an error.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.Metrics = MetricsConfig{
		Enabled:      cfg.MetricsEnabled,
		TextfilePath: cfg.MetricsTextfile,
		OtlpEndpoint: cfg.OtelEndpoint,
		OtlpInsecure: cfg.OtelInsecure,
		ServiceName:  cfg.OtelServiceName,
	}
	return cfg, nil
}

// Validate checks the values Load cannot default its way out of.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderStatsAPI, ProviderFixture:
	default:
		return fmt.Errorf("config: unknown provider %q (expected %s or %s)", c.Provider, ProviderStatsAPI, ProviderFixture)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured timezone. Call after Validate.
func (c Config) Location() *time.Location {
	return timeutil.LoadLocation(c.Timezone)
}

func (c *Config) applyDefaults() {
	c.DefaultTeam = strings.TrimSpace(c.DefaultTeam)
	if c.DefaultTeam == "" {
		c.DefaultTeam = defaultTeam
	}
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = defaultProvider
	}
	if c.ProviderTimeout <= 0 {
		c.ProviderTimeout = defaultProviderTimeout
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = defaultRetryAttempts
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = defaultRetryBackoff
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
	if c.OtelServiceName == "" {
		c.OtelServiceName = defaultServiceName
	}
}
