package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
)

// StubProvider is a deterministic, concurrency-safe test double for providers.SportsDataProvider.
// Nil maps and fields mean "no data"; the *Err fields force a hard failure for that operation.
type StubProvider struct {
	Games    []games.Game
	GamesErr error

	Probable     map[games.Side]*games.Pitcher
	ProbableErr  error
	Confirmed    map[games.Side]*games.Pitcher
	ConfirmedErr error

	Lineups   map[games.Side]*games.Lineup
	LineupErr map[games.Side]error

	Crew       *games.UmpireCrew
	UmpiresErr error

	// Delay is applied to every call and honors context cancellation.
	Delay time.Duration
	// PanicOn makes the named operation panic.
	PanicOn string

	Calls atomic.Int32

	mu  sync.Mutex
	ops map[string]int
}

// CallsFor returns how many times the named operation was invoked.
func (s *StubProvider) CallsFor(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops[op]
}

func (s *StubProvider) track(ctx context.Context, op string) error {
	s.Calls.Add(1)
	s.mu.Lock()
	if s.ops == nil {
		s.ops = make(map[string]int)
	}
	s.ops[op]++
	s.mu.Unlock()

	if s.PanicOn == op {
		panic("stub panic in " + op)
	}
	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.Delay):
		}
	}
	return nil
}

// ListGames returns configured games and error while tracking calls.
func (s *StubProvider) ListGames(ctx context.Context, teamID, date string) ([]games.Game, error) {
	if err := s.track(ctx, "list_games"); err != nil {
		return nil, err
	}
	return s.Games, s.GamesErr
}

// ProbablePitcher returns the configured probable starter for side.
func (s *StubProvider) ProbablePitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	if err := s.track(ctx, "probable_pitcher"); err != nil {
		return nil, err
	}
	if s.ProbableErr != nil {
		return nil, s.ProbableErr
	}
	return s.Probable[side], nil
}

// ConfirmedPitcher returns the configured confirmed starter for side.
func (s *StubProvider) ConfirmedPitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	if err := s.track(ctx, "confirmed_pitcher"); err != nil {
		return nil, err
	}
	if s.ConfirmedErr != nil {
		return nil, s.ConfirmedErr
	}
	return s.Confirmed[side], nil
}

// Lineup returns the configured lineup for side.
func (s *StubProvider) Lineup(ctx context.Context, gameID string, side games.Side) (*games.Lineup, error) {
	if err := s.track(ctx, "lineup"); err != nil {
		return nil, err
	}
	if err := s.LineupErr[side]; err != nil {
		return nil, err
	}
	return s.Lineups[side], nil
}

// Umpires returns the configured crew.
func (s *StubProvider) Umpires(ctx context.Context, gameID string) (*games.UmpireCrew, error) {
	if err := s.track(ctx, "umpires"); err != nil {
		return nil, err
	}
	return s.Crew, s.UmpiresErr
}
