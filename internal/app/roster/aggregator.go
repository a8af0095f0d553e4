package roster

import (
	"context"
	"log/slog"
	"sort"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/logging"
	"github.com/preston-bernstein/mlb-lineups/internal/metrics"
	"github.com/preston-bernstein/mlb-lineups/internal/providers"
)

// Facet names used in logs and metrics.
const (
	FacetPitcher = "pitcher"
	FacetLineup  = "lineup"
	FacetUmpires = "umpires"
)

// Aggregator assembles a best-effort GameReport from the provider's per-game facets.
type Aggregator struct {
	provider providers.FacetProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewAggregator constructs an Aggregator. logger and recorder may be nil.
func NewAggregator(provider providers.FacetProvider, logger *slog.Logger, recorder *metrics.Recorder) *Aggregator {
	return &Aggregator{provider: provider, logger: logger, metrics: recorder}
}

// Aggregate fetches starters, lineups, and umpires for game concurrently.
// It never fails: a facet that cannot be fetched is left nil and logged.
func (a *Aggregator) Aggregate(ctx context.Context, game games.Game) games.GameReport {
	report := games.GameReport{Game: game}
	if a.provider == nil {
		return report
	}
	logger := logging.FromContext(ctx, a.logger)
	if logger != nil {
		logger = logger.With(logging.FieldGameID, game.ID)
	}

	var wg conc.WaitGroup
	for _, side := range []games.Side{games.SideHome, games.SideAway} {
		side := side
		pitcher := pitcherField(&report, side)
		lineup := lineupField(&report, side)
		wg.Go(func() {
			a.guard(logger, FacetPitcher, side, func() {
				*pitcher = a.pitcher(ctx, logger, game.ID, side)
			})
		})
		wg.Go(func() {
			a.guard(logger, FacetLineup, side, func() {
				*lineup = a.lineup(ctx, logger, game.ID, side)
			})
		})
	}
	wg.Go(func() {
		a.guard(logger, FacetUmpires, "", func() {
			report.Umpires = a.umpires(ctx, logger, game.ID)
		})
	})
	wg.Wait()

	return report
}

// guard runs fetch and turns a panic into a failed facet.
func (a *Aggregator) guard(logger *slog.Logger, facet string, side games.Side, fetch func()) {
	var pc panics.Catcher
	pc.Try(fetch)
	if rec := pc.Recovered(); rec != nil {
		logging.Error(logger, "facet fetch panicked", rec.AsError(), facetArgs(facet, side)...)
		a.metrics.RecordFacet(facet, metrics.FacetFailed)
	}
}

// pitcher prefers the confirmed starter and falls back to the probable one.
func (a *Aggregator) pitcher(ctx context.Context, logger *slog.Logger, gameID string, side games.Side) *games.Pitcher {
	confirmed, confErr := a.provider.ConfirmedPitcher(ctx, gameID, side)
	if confErr != nil {
		a.warn(logger, "confirmed pitcher lookup failed", confErr, FacetPitcher, side)
	}
	if confErr == nil && confirmed != nil {
		out := *confirmed
		out.Confirmed = true
		a.metrics.RecordFacet(FacetPitcher, metrics.FacetPresent)
		return &out
	}

	probable, probErr := a.provider.ProbablePitcher(ctx, gameID, side)
	if probErr != nil {
		a.warn(logger, "probable pitcher lookup failed", probErr, FacetPitcher, side)
	}
	if probErr == nil && probable != nil {
		out := *probable
		out.Confirmed = false
		a.metrics.RecordFacet(FacetPitcher, metrics.FacetPresent)
		return &out
	}

	a.metrics.RecordFacet(FacetPitcher, outcome(confErr != nil || probErr != nil))
	return nil
}

func (a *Aggregator) lineup(ctx context.Context, logger *slog.Logger, gameID string, side games.Side) *games.Lineup {
	lineup, err := a.provider.Lineup(ctx, gameID, side)
	if err != nil {
		a.warn(logger, "lineup lookup failed", err, FacetLineup, side)
		a.metrics.RecordFacet(FacetLineup, metrics.FacetFailed)
		return nil
	}
	if lineup == nil || len(lineup.Slots) == 0 {
		a.metrics.RecordFacet(FacetLineup, metrics.FacetAbsent)
		return nil
	}
	a.metrics.RecordFacet(FacetLineup, metrics.FacetPresent)
	return inBattingOrder(lineup)
}

// inBattingOrder returns a copy of l with its slots sorted by Order.
func inBattingOrder(l *games.Lineup) *games.Lineup {
	slots := append([]games.LineupSlot(nil), l.Slots...)
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Order < slots[j].Order
	})
	return &games.Lineup{Slots: slots}
}

func (a *Aggregator) umpires(ctx context.Context, logger *slog.Logger, gameID string) *games.UmpireCrew {
	crew, err := a.provider.Umpires(ctx, gameID)
	if err != nil {
		a.warn(logger, "umpire lookup failed", err, FacetUmpires, "")
		a.metrics.RecordFacet(FacetUmpires, metrics.FacetFailed)
		return nil
	}
	if crew.Len() == 0 {
		a.metrics.RecordFacet(FacetUmpires, metrics.FacetAbsent)
		return nil
	}
	a.metrics.RecordFacet(FacetUmpires, metrics.FacetPresent)
	return crew
}

func (a *Aggregator) warn(logger *slog.Logger, msg string, err error, facet string, side games.Side) {
	args := append(facetArgs(facet, side), "error", err)
	logging.Warn(logger, msg, args...)
}

func facetArgs(facet string, side games.Side) []any {
	args := []any{logging.FieldFacet, facet}
	if side != "" {
		args = append(args, logging.FieldSide, side.String())
	}
	return args
}

func outcome(failed bool) metrics.FacetOutcome {
	if failed {
		return metrics.FacetFailed
	}
	return metrics.FacetAbsent
}

func pitcherField(r *games.GameReport, side games.Side) **games.Pitcher {
	if side == games.SideHome {
		return &r.HomePitcher
	}
	return &r.AwayPitcher
}

func lineupField(r *games.GameReport, side games.Side) **games.Lineup {
	if side == games.SideHome {
		return &r.HomeLineup
	}
	return &r.AwayLineup
}
