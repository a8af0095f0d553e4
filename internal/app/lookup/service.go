package lookup

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	appgames "github.com/preston-bernstein/mlb-lineups/internal/app/games"
	"github.com/preston-bernstein/mlb-lineups/internal/app/roster"
	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/domain/teams"
	"github.com/preston-bernstein/mlb-lineups/internal/logging"
	"github.com/preston-bernstein/mlb-lineups/internal/metrics"
	"github.com/preston-bernstein/mlb-lineups/internal/providers"
	"github.com/preston-bernstein/mlb-lineups/internal/timeutil"
)

// Request identifies one lookup: a team abbreviation and a YYYY-MM-DD date.
type Request struct {
	Team string
	Date string
}

// Service runs a full lookup: team, then game, then facets.
type Service struct {
	dir        *teams.Directory
	resolver   *appgames.Resolver
	aggregator *roster.Aggregator
	logger     *slog.Logger
	metrics    *metrics.Recorder

	newRunID func() string
	now      func() time.Time
}

// NewService wires a Service over provider. dir defaults to the MLB directory; logger and recorder may be nil.
func NewService(provider providers.SportsDataProvider, dir *teams.Directory, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if dir == nil {
		dir = teams.Default()
	}
	var lister providers.GameLister
	var facets providers.FacetProvider
	if provider != nil {
		lister, facets = provider, provider
	}
	return &Service{
		dir:        dir,
		resolver:   appgames.NewResolver(lister, dir, logger),
		aggregator: roster.NewAggregator(facets, logger, recorder),
		logger:     logger,
		metrics:    recorder,
		newRunID:   uuid.NewString,
		now:        time.Now,
	}
}

// Lookup resolves req into a GameReport. Only an unknown team, a bad date, no scheduled game,
// or a failed schedule lookup produce an error; missing facets never do.
func (s *Service) Lookup(ctx context.Context, req Request) (report games.GameReport, err error) {
	start := s.now()
	runID := s.newRunID()
	logger := s.logger
	if logger != nil {
		logger = logger.With(
			logging.FieldRunID, runID,
			logging.FieldTeam, req.Team,
			logging.FieldDate, req.Date,
		)
	}
	ctx = logging.WithLogger(ctx, logger)

	defer func() {
		elapsed := s.now().Sub(start)
		s.metrics.RecordRun(elapsed, err)
		if err != nil {
			logging.Info(logger, "lookup failed", "error", err, logging.FieldDurationMS, elapsed.Milliseconds())
			return
		}
		logging.Info(logger, "lookup complete",
			logging.FieldGameID, report.Game.ID,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
	}()

	team, err := s.dir.Resolve(req.Team)
	if err != nil {
		return games.GameReport{}, err
	}
	date, err := timeutil.NormalizeDate(req.Date)
	if err != nil {
		return games.GameReport{}, err
	}

	game, err := s.resolver.FindGame(ctx, team, date)
	if err != nil {
		return games.GameReport{}, err
	}

	return s.aggregator.Aggregate(ctx, game), nil
}
