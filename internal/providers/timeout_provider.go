package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/logging"
)

const defaultCallTimeout = 10 * time.Second

// timeoutProvider bounds every call to the wrapped provider with a per-call deadline.
type timeoutProvider struct {
	next    SportsDataProvider
	timeout time.Duration
	logger  *slog.Logger
	name    string
}

// NewTimeoutProvider returns a SportsDataProvider that cancels any call running longer than timeout.
func NewTimeoutProvider(next SportsDataProvider, timeout time.Duration, name string, logger *slog.Logger) SportsDataProvider {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &timeoutProvider{next: next, timeout: timeout, logger: logger, name: name}
}

func (p *timeoutProvider) ListGames(ctx context.Context, teamID, date string) ([]games.Game, error) {
	return withTimeout(ctx, p, OpListGames, func(ctx context.Context) ([]games.Game, error) {
		return p.next.ListGames(ctx, teamID, date)
	})
}

func (p *timeoutProvider) ProbablePitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	return withTimeout(ctx, p, OpProbablePitcher, func(ctx context.Context) (*games.Pitcher, error) {
		return p.next.ProbablePitcher(ctx, gameID, side)
	})
}

func (p *timeoutProvider) ConfirmedPitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	return withTimeout(ctx, p, OpConfirmedPitcher, func(ctx context.Context) (*games.Pitcher, error) {
		return p.next.ConfirmedPitcher(ctx, gameID, side)
	})
}

func (p *timeoutProvider) Lineup(ctx context.Context, gameID string, side games.Side) (*games.Lineup, error) {
	return withTimeout(ctx, p, OpLineup, func(ctx context.Context) (*games.Lineup, error) {
		return p.next.Lineup(ctx, gameID, side)
	})
}

func (p *timeoutProvider) Umpires(ctx context.Context, gameID string) (*games.UmpireCrew, error) {
	return withTimeout(ctx, p, OpUmpires, func(ctx context.Context) (*games.UmpireCrew, error) {
		return p.next.Umpires(ctx, gameID)
	})
}

func withTimeout[T any](ctx context.Context, p *timeoutProvider, op string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	if p == nil || p.next == nil {
		return zero, ErrProviderUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := call(callCtx)
	if err != nil && callCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider call timed out",
			logging.FieldOperation, op,
			"timeout_ms", p.timeout.Milliseconds(),
		)
	}
	return res, err
}
