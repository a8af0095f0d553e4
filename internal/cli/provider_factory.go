package cli

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-lineups/internal/config"
	"github.com/preston-bernstein/mlb-lineups/internal/metrics"
	"github.com/preston-bernstein/mlb-lineups/internal/providers"
	"github.com/preston-bernstein/mlb-lineups/internal/providers/fixture"
	"github.com/preston-bernstein/mlb-lineups/internal/providers/statsapi"
)

// providerFactory assembles the configured provider with shared wrappers (timeout + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the wrapped provider and the name its metrics are recorded under.
func (f providerFactory) build(cfg config.Config) (providers.SportsDataProvider, string) {
	base, name := selectProvider(cfg)
	// Each retry attempt gets its own deadline.
	bounded := providers.NewTimeoutProvider(base, cfg.ProviderTimeout, name, f.logger)
	return providers.NewRetryingProvider(bounded, f.logger, f.metrics, name, cfg.RetryAttempts, cfg.RetryBackoff), name
}

func selectProvider(cfg config.Config) (providers.SportsDataProvider, string) {
	switch cfg.Provider {
	case config.ProviderFixture:
		p := fixture.New()
		return p, p.Name()
	default:
		c := statsapi.NewClient(statsapi.Config{
			BaseURL:  cfg.StatsAPIBaseURL,
			Timezone: cfg.Timezone,
		})
		return c, c.Name()
	}
}
