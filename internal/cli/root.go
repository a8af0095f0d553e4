// Package cli wires configuration, telemetry, and the provider chain behind the lineups command.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/mlb-lineups/internal/app/lookup"
	"github.com/preston-bernstein/mlb-lineups/internal/config"
	"github.com/preston-bernstein/mlb-lineups/internal/domain/teams"
	"github.com/preston-bernstein/mlb-lineups/internal/logging"
	"github.com/preston-bernstein/mlb-lineups/internal/metrics"
	"github.com/preston-bernstein/mlb-lineups/internal/report"
	"github.com/preston-bernstein/mlb-lineups/internal/timeutil"
)

const (
	serviceName     = "mlb-lineups"
	shutdownTimeout = 5 * time.Second
)

// Version is reported by --version and attached to every log line.
var Version = "dev"

var (
	loadConfig   = config.Load
	metricsSetup = metrics.Setup
	now          = time.Now
)

type flags struct {
	team     string
	date     string
	timezone string
}

// NewRootCommand builds the lineups command.
func NewRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "lineups",
		Short: "Print starting pitchers, lineups, and umpires for one MLB game",
		Long: `Looks up the game a team plays on a date and prints a scorecard-style report:
matchup, venue, first pitch, starting pitchers, batting orders, and the umpire crew.

Data that is not published yet (lineups a few hours before first pitch, umpires
for future games) is reported as not yet available instead of failing.`,
		Example: `  lineups
  lineups --team LAD --date 2025-04-15
  LINEUPS_PROVIDER=fixture lineups -t NYY`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.team, "team", "t", "", "team abbreviation (default $LINEUPS_DEFAULT_TEAM or NYM)")
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "game date in YYYY-MM-DD format (default: today)")
	cmd.Flags().StringVar(&f.timezone, "timezone", "", "IANA timezone for today and first pitch (default $LINEUPS_TIMEZONE)")
	return cmd
}

// Execute runs the command and prints any error to stderr.
func Execute(ctx context.Context, args []string) error {
	return execute(ctx, NewRootCommand(), args)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), UserMessage(err))
		return err
	}
	return nil
}

func run(cmd *cobra.Command, f flags) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if f.timezone != "" {
		cfg.Timezone = f.timezone
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
		Version: Version,
		Output:  cmd.ErrOrStderr(),
	})

	recorder, stopMetrics := buildMetrics(ctx, cfg, logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := stopMetrics(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	loc := cfg.Location()
	today := timeutil.Today(now(), loc)
	req := lookup.Request{Team: f.team, Date: f.date}
	if req.Team == "" {
		req.Team = cfg.DefaultTeam
	}
	if req.Date == "" {
		req.Date = today
	}

	provider, providerName := newProviderFactory(logger, recorder).build(cfg)
	defer logRunStats(logger, recorder, providerName)
	svc := lookup.NewService(provider, teams.Default(), logger, recorder)

	result, err := svc.Lookup(ctx, req)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), report.Render(result, report.Options{Today: today, Location: loc}))
	return err
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, func(context.Context) error) {
	rec, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
		TextfilePath: cfg.Metrics.TextfilePath,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), func(context.Context) error { return nil }
	}
	return rec, shutdown
}
