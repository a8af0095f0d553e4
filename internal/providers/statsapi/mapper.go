package statsapi

import (
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/domain/teams"
)

func mapGame(g scheduleGame, loc *time.Location) games.Game {
	out := games.Game{
		ID:            strconv.Itoa(g.GamePk),
		Date:          g.OfficialDate,
		HomeTeam:      mapTeam(g.Teams.Home.Team),
		AwayTeam:      mapTeam(g.Teams.Away.Team),
		Venue:         strings.TrimSpace(g.Venue.Name),
		Status:        mapStatus(g.Status),
		DetailedState: g.Status.DetailedState,
		GameNumber:    g.GameNumber,
		DoubleHeader:  g.DoubleHeader == "Y" || g.DoubleHeader == "S",
	}

	if start, err := time.Parse(time.RFC3339, g.GameDate); err == nil {
		if out.Date == "" {
			out.Date = start.In(loc).Format("2006-01-02")
		}
		if !g.Status.StartTimeTBD {
			out.StartTime = &start
		}
	}
	return out
}

func mapTeam(t namedRef) teams.Team {
	return teams.Team{
		ID:       strconv.Itoa(t.ID),
		FullName: t.Name,
	}
}

func mapStatus(s gameStatus) games.GameStatus {
	detailed := strings.ToLower(s.DetailedState)
	switch {
	case s.CodedGameState == "D" || strings.Contains(detailed, "postponed"),
		s.CodedGameState == "C" || strings.Contains(detailed, "cancel"):
		return games.StatusPostponed
	case strings.EqualFold(s.AbstractGameState, "Live"):
		return games.StatusLive
	case strings.EqualFold(s.AbstractGameState, "Final"):
		return games.StatusFinal
	default:
		return games.StatusScheduled
	}
}

func mapHand(code string) games.ThrowingArm {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "R":
		return games.ArmRight
	case "L":
		return games.ArmLeft
	default:
		return games.ArmUnknown
	}
}

func parseJersey(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// mapLineup builds the batting order; zero ids are placeholders the API sometimes emits.
func mapLineup(t boxscoreTeam) *games.Lineup {
	slots := make([]games.LineupSlot, 0, len(t.BattingOrder))
	for _, id := range t.BattingOrder {
		if id == 0 {
			continue
		}
		player, ok := t.Players[playerKey(id)]
		if !ok || player.Person.FullName == "" {
			continue
		}
		slots = append(slots, games.LineupSlot{
			Order:    len(slots) + 1,
			Name:     player.Person.FullName,
			Jersey:   parseJersey(player.JerseyNumber),
			Position: player.Position.Abbreviation,
		})
	}
	if len(slots) == 0 {
		return nil
	}
	return &games.Lineup{Slots: slots}
}

var officialPositions = map[string]games.UmpirePosition{
	"home plate":  games.UmpireHomePlate,
	"first base":  games.UmpireFirstBase,
	"second base": games.UmpireSecondBase,
	"third base":  games.UmpireThirdBase,
}

// mapUmpires keeps the four base umpires; outfield umpires and replay officials are dropped.
func mapUmpires(officials []official) *games.UmpireCrew {
	assignments := make(map[games.UmpirePosition]games.UmpireAssignment)
	for _, o := range officials {
		pos, ok := officialPositions[strings.ToLower(strings.TrimSpace(o.OfficialType))]
		if !ok || o.Official.FullName == "" {
			continue
		}
		assignments[pos] = games.UmpireAssignment{Position: pos, Name: o.Official.FullName}
	}
	if len(assignments) == 0 {
		return nil
	}
	return &games.UmpireCrew{Assignments: assignments}
}
