package cli

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-lineups/internal/app/roster"
	"github.com/preston-bernstein/mlb-lineups/internal/logging"
	"github.com/preston-bernstein/mlb-lineups/internal/metrics"
)

var facetNames = []string{roster.FacetPitcher, roster.FacetLineup, roster.FacetUmpires}

// logRunStats writes the recorder's totals for the run at debug level.
func logRunStats(logger *slog.Logger, rec *metrics.Recorder, provider string) {
	if logger == nil || rec == nil {
		return
	}
	snap := rec.Snapshot(provider)
	total, failed := rec.Runs()

	facets := make([]any, 0, len(facetNames))
	for _, facet := range facetNames {
		facets = append(facets, slog.Group(facet,
			string(metrics.FacetPresent), rec.FacetCount(facet, metrics.FacetPresent),
			string(metrics.FacetAbsent), rec.FacetCount(facet, metrics.FacetAbsent),
			string(metrics.FacetFailed), rec.FacetCount(facet, metrics.FacetFailed),
		))
	}

	logging.Debug(logger, "run stats",
		logging.FieldProvider, provider,
		"calls", snap.Calls,
		"errors", snap.Errors,
		"rate_limit_hits", snap.RateLimitHits,
		"last_retry_after_ms", snap.LastRetryAfter.Milliseconds(),
		"last_call_latency_ms", snap.LastCallLatency.Milliseconds(),
		"runs", total,
		"failed_runs", failed,
		slog.Group("facets", facets...),
	)
}
