package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/logging"
	"github.com/preston-bernstein/mlb-lineups/internal/metrics"
)

const (
	// One retry per call: lineups and umpires are usually just unpublished, not flaky.
	defaultRetryAttempts = 2
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 2 * time.Second
	maxRetryAfter        = 5 * time.Second
)

// Operation names used in logs and metrics.
const (
	OpListGames        = "list_games"
	OpProbablePitcher  = "probable_pitcher"
	OpConfirmedPitcher = "confirmed_pitcher"
	OpLineup           = "lineup"
	OpUmpires          = "umpires"
)

// retryingProvider wraps a SportsDataProvider with bounded retry/backoff behavior.
type retryingProvider struct {
	inner        SportsDataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial backoff are <= 0, defaults are used.
func NewRetryingProvider(inner SportsDataProvider, logger *slog.Logger, rec *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) SportsDataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      rec,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) ListGames(ctx context.Context, teamID, date string) ([]games.Game, error) {
	return withRetry(ctx, r, OpListGames, func(ctx context.Context, p SportsDataProvider) ([]games.Game, error) {
		return p.ListGames(ctx, teamID, date)
	})
}

func (r *retryingProvider) ProbablePitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	return withRetry(ctx, r, OpProbablePitcher, func(ctx context.Context, p SportsDataProvider) (*games.Pitcher, error) {
		return p.ProbablePitcher(ctx, gameID, side)
	})
}

func (r *retryingProvider) ConfirmedPitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	return withRetry(ctx, r, OpConfirmedPitcher, func(ctx context.Context, p SportsDataProvider) (*games.Pitcher, error) {
		return p.ConfirmedPitcher(ctx, gameID, side)
	})
}

func (r *retryingProvider) Lineup(ctx context.Context, gameID string, side games.Side) (*games.Lineup, error) {
	return withRetry(ctx, r, OpLineup, func(ctx context.Context, p SportsDataProvider) (*games.Lineup, error) {
		return p.Lineup(ctx, gameID, side)
	})
}

func (r *retryingProvider) Umpires(ctx context.Context, gameID string) (*games.UmpireCrew, error) {
	return withRetry(ctx, r, OpUmpires, func(ctx context.Context, p SportsDataProvider) (*games.UmpireCrew, error) {
		return p.Umpires(ctx, gameID)
	})
}

func withRetry[T any](ctx context.Context, r *retryingProvider, op string, call func(context.Context, SportsDataProvider) (T, error)) (T, error) {
	var zero T
	if r == nil || r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	var (
		result  T
		attempt int
		hint    retryAfterHint
	)
	operation := func() error {
		attempt++
		start := time.Now()
		res, err := call(ctx, r.inner)
		r.metrics.RecordProviderAttempt(r.providerName, op, time.Since(start), err)
		if err == nil {
			result = res
			return nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
			hint.set(rlErr.RetryAfter)
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider call retry",
			logging.FieldOperation, op,
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"err", err,
		)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&retryAfterBackOff{BackOff: r.newBackOff(), hint: &hint}, uint64(r.maxAttempts-1)),
		ctx,
	)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelDebug, r.providerName, "provider call failed",
			logging.FieldOperation, op,
			"attempts", attempt,
			"err", err,
		)
		return zero, err
	}
	return result, nil
}

// retryAfterHint carries an upstream Retry-After from a failed attempt to the next backoff decision.
type retryAfterHint struct {
	delay time.Duration
}

func (h *retryAfterHint) set(d time.Duration) {
	if d > 0 && d <= maxRetryAfter {
		h.delay = d
	}
}

func (h *retryAfterHint) take() time.Duration {
	d := h.delay
	h.delay = 0
	return d
}

// retryAfterBackOff prefers a pending Retry-After hint over the wrapped exponential schedule.
type retryAfterBackOff struct {
	backoff.BackOff
	hint *retryAfterHint
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if d := b.hint.take(); d > 0 {
		return d
	}
	return next
}
