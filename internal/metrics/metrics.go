package metrics

import (
	"sync"
	"time"
)

// FacetOutcome classifies how a single facet fetch ended.
type FacetOutcome string

const (
	FacetPresent FacetOutcome = "present"
	FacetAbsent  FacetOutcome = "absent"
	FacetFailed  FacetOutcome = "failed"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type facetKey struct {
	facet   string
	outcome FacetOutcome
}

// Recorder captures lightweight, in-memory metrics about provider calls and facet outcomes.
// When telemetry is enabled the same events are mirrored to OpenTelemetry instruments.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*providerStats
	facets map[facetKey]int
	runs   int
	failed int
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:  make(map[string]*providerStats),
		facets: make(map[facetKey]int),
		otel:   otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, operation, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordFacet counts the outcome of one facet fetch (pitcher, lineup, umpires).
func (r *Recorder) RecordFacet(facet string, outcome FacetOutcome) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.facets[facetKey{facet: facet, outcome: outcome}]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFacet(facet, outcome)
	}
}

// RecordRun tracks one end-to-end lookup.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs++
	if err != nil {
		r.failed++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, err)
	}
}

// FacetCount returns how many times facet ended with outcome.
func (r *Recorder) FacetCount(facet string, outcome FacetOutcome) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.facets[facetKey{facet: facet, outcome: outcome}]
}

// Runs returns the number of recorded lookups and how many of them failed.
func (r *Recorder) Runs() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs, r.failed
}

// Snapshot is a point-in-time copy of one provider's stats.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the provider.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
