// Package report renders a GameReport as the plain-text scorecard printed by the CLI.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
)

const (
	startTimeLayout = "3:04 PM MST"

	finalNote     = "Note: This is a completed game. If lineups aren't available, the API may not have stored them."
	postponedNote = "Note: This game has been postponed. Lineups and umpires may not be available."
)

// Options carries the context Render needs without reading clocks or environment.
type Options struct {
	// Today is the current date (YYYY-MM-DD) in the user's timezone.
	Today string
	// Location is used to display the first pitch time. Nil means UTC.
	Location *time.Location
}

// Render formats r as text. It is deterministic for equal inputs and always ends with a single newline.
func Render(r games.GameReport, opts Options) string {
	var b strings.Builder
	writeHeader(&b, r.Game, opts)
	writePitchers(&b, r)
	writeLineups(&b, r)
	writeUmpires(&b, r.Umpires)
	return b.String()
}

func writeHeader(b *strings.Builder, g games.Game, opts Options) {
	if g.Date != "" && g.Date == opts.Today {
		b.WriteString("===== TODAY'S GAME =====\n")
	} else {
		fmt.Fprintf(b, "===== GAME FOR %s =====\n", g.Date)
	}
	fmt.Fprintf(b, "%s @ %s\n", g.AwayTeam.DisplayName(), g.HomeTeam.DisplayName())
	if g.Venue != "" {
		fmt.Fprintf(b, "Venue: %s\n", g.Venue)
	}
	if g.StartTime != nil {
		loc := opts.Location
		if loc == nil {
			loc = time.UTC
		}
		fmt.Fprintf(b, "First pitch: %s\n", g.StartTime.In(loc).Format(startTimeLayout))
	}
	if g.Status != games.StatusScheduled && g.Status != "" {
		fmt.Fprintf(b, "Status: %s\n", statusText(g))
	}
	switch g.Status {
	case games.StatusFinal:
		b.WriteString(finalNote + "\n")
	case games.StatusPostponed:
		b.WriteString(postponedNote + "\n")
	}
}

func statusText(g games.Game) string {
	if g.DetailedState != "" {
		return g.DetailedState
	}
	return string(g.Status)
}

// sides returns the requested team's side first.
func sides(g games.Game) [2]games.Side {
	first := g.TeamSide
	if first != games.SideHome {
		first = games.SideAway
	}
	return [2]games.Side{first, first.Opposite()}
}

func writePitchers(b *strings.Builder, r games.GameReport) {
	if r.HomePitcher == nil && r.AwayPitcher == nil {
		return
	}
	b.WriteString("\n----- STARTING PITCHERS -----\n")
	for _, side := range sides(r.Game) {
		team := r.Game.TeamFor(side).DisplayName()
		p := r.PitcherFor(side)
		if p == nil {
			fmt.Fprintf(b, "%s (%s): not yet announced\n", team, side.Label())
			continue
		}
		fmt.Fprintf(b, "%s (%s): %s\n", team, side.Label(), pitcherText(p))
	}
}

func pitcherText(p *games.Pitcher) string {
	var b strings.Builder
	if p.Jersey != nil {
		fmt.Fprintf(&b, "#%d ", *p.Jersey)
	}
	b.WriteString(p.Name)
	if arm := p.Arm.Abbreviation(); arm != "" {
		fmt.Fprintf(&b, " (%s)", arm)
	}
	if !p.Confirmed {
		b.WriteString(" [probable]")
	}
	return b.String()
}

func writeLineups(b *strings.Builder, r games.GameReport) {
	if !hasSlots(r.HomeLineup) && !hasSlots(r.AwayLineup) {
		b.WriteString("\nLineups not yet available\n")
		return
	}
	for _, side := range sides(r.Game) {
		team := r.Game.TeamFor(side).DisplayName()
		lineup := r.LineupFor(side)
		if !hasSlots(lineup) {
			fmt.Fprintf(b, "\n%s lineup not yet available\n", team)
			continue
		}
		fmt.Fprintf(b, "\n----- %s LINEUP (%s) -----\n", strings.ToUpper(team), side.String())
		for _, slot := range lineup.Slots {
			if slot.Jersey != nil {
				fmt.Fprintf(b, "%d. #%d %s (%s)\n", slot.Order, *slot.Jersey, slot.Name, slot.Position)
			} else {
				fmt.Fprintf(b, "%d. %s (%s)\n", slot.Order, slot.Name, slot.Position)
			}
		}
	}
}

func hasSlots(l *games.Lineup) bool {
	return l != nil && len(l.Slots) > 0
}

func writeUmpires(b *strings.Builder, crew *games.UmpireCrew) {
	if crew.Len() == 0 {
		return
	}
	lines := make([]string, 0, len(games.UmpirePositions))
	for _, pos := range games.UmpirePositions {
		if a, ok := crew.Assignments[pos]; ok && a.Name != "" {
			lines = append(lines, pos.Label()+": "+a.Name)
		}
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("\n----- UMPIRES -----\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
}
