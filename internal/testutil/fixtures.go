package testutil

import (
	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/domain/teams"
)

// IntPtr returns a pointer to v; handy for optional jersey numbers.
func IntPtr(v int) *int {
	return &v
}

// MustTeam resolves an abbreviation from the default directory or panics.
func MustTeam(abbr string) teams.Team {
	t, err := teams.Default().Resolve(abbr)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleGame returns a scheduled away@home game with the given id on date.
func SampleGame(id, date, away, home string) games.Game {
	return games.Game{
		ID:       id,
		Date:     date,
		HomeTeam: MustTeam(home),
		AwayTeam: MustTeam(away),
		Venue:    "Test Park",
		Status:   games.StatusScheduled,
	}
}

// SampleLineup builds a lineup from names, assigning batting order, jersey numbers, and positions in sequence.
func SampleLineup(names ...string) *games.Lineup {
	positions := []string{"SS", "CF", "1B", "DH", "3B", "LF", "RF", "C", "2B"}
	slots := make([]games.LineupSlot, 0, len(names))
	for i, name := range names {
		slots = append(slots, games.LineupSlot{
			Order:    i + 1,
			Name:     name,
			Jersey:   IntPtr(10 + i),
			Position: positions[i%len(positions)],
		})
	}
	return &games.Lineup{Slots: slots}
}

// SampleCrew builds an umpire crew from position/name pairs.
func SampleCrew(assignments map[games.UmpirePosition]string) *games.UmpireCrew {
	crew := &games.UmpireCrew{Assignments: make(map[games.UmpirePosition]games.UmpireAssignment, len(assignments))}
	for pos, name := range assignments {
		crew.Assignments[pos] = games.UmpireAssignment{Position: pos, Name: name}
	}
	return crew
}
