package providers

import (
	"context"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
)

// GameLister fetches the schedule for one team and date (YYYY-MM-DD).
// An empty result with a nil error means no games are scheduled.
type GameLister interface {
	ListGames(ctx context.Context, teamID, date string) ([]games.Game, error)
}

// FacetProvider fetches the per-game facets that fill in as first pitch approaches.
// Every method returns (nil, nil) when the data is not published yet; a non-nil
// error always means the lookup itself failed.
type FacetProvider interface {
	ProbablePitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error)
	ConfirmedPitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error)
	Lineup(ctx context.Context, gameID string, side games.Side) (*games.Lineup, error)
	Umpires(ctx context.Context, gameID string) (*games.UmpireCrew, error)
}

// SportsDataProvider combines all provider capabilities.
type SportsDataProvider interface {
	GameLister
	FacetProvider
}
