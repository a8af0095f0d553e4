package games

import (
	"fmt"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/teams"
)

// NoGameScheduledError reports that a team has no game on the requested date.
// It is an expected outcome, not a data-retrieval failure.
type NoGameScheduledError struct {
	Team teams.Team
	Date string
}

func (e *NoGameScheduledError) Error() string {
	return fmt.Sprintf("no game scheduled for %s on %s", e.Team.DisplayName(), e.Date)
}
