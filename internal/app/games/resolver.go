package games

import (
	"context"
	"log/slog"
	"sort"

	domaingames "github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/domain/teams"
	"github.com/preston-bernstein/mlb-lineups/internal/logging"
	"github.com/preston-bernstein/mlb-lineups/internal/providers"
)

// OpListGames names the schedule lookup in ProviderUnavailableError.
const OpListGames = "list games"

// Resolver selects the one game a team plays on a date.
type Resolver struct {
	provider providers.GameLister
	dir      *teams.Directory
	logger   *slog.Logger
}

// NewResolver constructs a Resolver. A nil directory falls back to the default MLB directory.
func NewResolver(provider providers.GameLister, dir *teams.Directory, logger *slog.Logger) *Resolver {
	if dir == nil {
		dir = teams.Default()
	}
	return &Resolver{provider: provider, dir: dir, logger: logger}
}

// FindGame returns the team's game on date. When the team plays more than once
// (a doubleheader) the earliest game is chosen. Postponed games are returned as-is.
func (r *Resolver) FindGame(ctx context.Context, team teams.Team, date string) (domaingames.Game, error) {
	if r.provider == nil {
		return domaingames.Game{}, &providers.ProviderUnavailableError{Op: OpListGames, Err: providers.ErrProviderUnavailable}
	}
	logger := logging.FromContext(ctx, r.logger)

	listed, err := r.provider.ListGames(ctx, team.ID, date)
	if err != nil {
		return domaingames.Game{}, &providers.ProviderUnavailableError{Op: OpListGames, Err: err}
	}

	candidates := make([]domaingames.Game, 0, len(listed))
	for _, g := range listed {
		side, ok := g.SideOf(team.ID)
		if !ok {
			continue
		}
		g.TeamSide = side
		g.HomeTeam = r.normalize(g.HomeTeam)
		g.AwayTeam = r.normalize(g.AwayTeam)
		candidates = append(candidates, g)
	}
	if len(candidates) == 0 {
		return domaingames.Game{}, &domaingames.NoGameScheduledError{Team: team, Date: date}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return earlier(candidates[i], candidates[j])
	})
	chosen := candidates[0]
	if len(candidates) > 1 {
		logging.Info(logger, "multiple games found, using earliest",
			logging.FieldCount, len(candidates),
			logging.FieldGameID, chosen.ID,
		)
	}
	logging.Debug(logger, "game resolved",
		logging.FieldGameID, chosen.ID,
		logging.FieldSide, chosen.TeamSide.String(),
		"status", string(chosen.Status),
	)
	return chosen, nil
}

func (r *Resolver) normalize(t teams.Team) teams.Team {
	if known, ok := r.dir.ByID(t.ID); ok {
		return known
	}
	return t
}

// earlier orders games by start time, then game number, then id.
// Games with a known start sort before games without one.
func earlier(a, b domaingames.Game) bool {
	switch {
	case a.StartTime != nil && b.StartTime != nil:
		if !a.StartTime.Equal(*b.StartTime) {
			return a.StartTime.Before(*b.StartTime)
		}
	case a.StartTime != nil:
		return true
	case b.StartTime != nil:
		return false
	}
	if a.GameNumber != b.GameNumber {
		return a.GameNumber < b.GameNumber
	}
	return a.ID < b.ID
}
