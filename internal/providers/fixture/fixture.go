package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/domain/teams"
	"github.com/preston-bernstein/mlb-lineups/internal/providers"
)

const providerName = "fixture"

// Game ids served by the fixture provider.
const (
	GameMetsTwins      = "fixture-nym-min"
	GameDodgersGiants  = "fixture-lad-sf"
	GameYankeesRedSox1 = "fixture-nyy-bos-1"
	GameYankeesRedSox2 = "fixture-nyy-bos-2"
)

// Provider serves a deterministic slate for any date, useful offline and in tests.
// NYM @ MIN has every facet, LAD @ SF has probable starters only, and
// NYY @ BOS is a doubleheader whose second game has nothing posted yet.
type Provider struct {
	dir *teams.Directory
}

var _ providers.SportsDataProvider = (*Provider)(nil)

// New creates a fixture provider over the default team directory.
func New() *Provider {
	return &Provider{dir: teams.Default()}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// ListGames returns the fixture games the team plays on date.
func (p *Provider) ListGames(ctx context.Context, teamID, date string) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}

	var out []games.Game
	for _, g := range p.slate(day) {
		if g.HomeTeam.ID == teamID || g.AwayTeam.ID == teamID {
			out = append(out, g)
		}
	}
	return out, nil
}

// ProbablePitcher returns the announced starters for every fixture game except the late doubleheader game.
func (p *Provider) ProbablePitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	starters, ok := probables[gameID]
	if !ok {
		return nil, nil
	}
	return clonePitcher(starters[side]), nil
}

// ConfirmedPitcher returns official starters for games that have them.
func (p *Provider) ConfirmedPitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	starters, ok := confirmed[gameID]
	if !ok {
		return nil, nil
	}
	return clonePitcher(starters[side]), nil
}

// Lineup returns the posted batting order for side.
func (p *Provider) Lineup(ctx context.Context, gameID string, side games.Side) (*games.Lineup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sides, ok := lineups[gameID]
	if !ok {
		return nil, nil
	}
	src := sides[side]
	if src == nil {
		return nil, nil
	}
	return &games.Lineup{Slots: append([]games.LineupSlot(nil), src.Slots...)}, nil
}

// Umpires returns the crew for games that have one assigned.
func (p *Provider) Umpires(ctx context.Context, gameID string) (*games.UmpireCrew, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, ok := crews[gameID]
	if !ok {
		return nil, nil
	}
	crew := &games.UmpireCrew{Assignments: make(map[games.UmpirePosition]games.UmpireAssignment, len(names))}
	for pos, name := range names {
		crew.Assignments[pos] = games.UmpireAssignment{Position: pos, Name: name}
	}
	return crew, nil
}

func (p *Provider) slate(day time.Time) []games.Game {
	date := day.Format("2006-01-02")
	at := func(hour, minute int) *time.Time {
		t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
		return &t
	}
	return []games.Game{
		{
			ID:            GameMetsTwins,
			Date:          date,
			AwayTeam:      p.team("NYM"),
			HomeTeam:      p.team("MIN"),
			Venue:         "Target Field",
			StartTime:     at(23, 40),
			Status:        games.StatusScheduled,
			DetailedState: "Scheduled",
			GameNumber:    1,
		},
		{
			ID:            GameDodgersGiants,
			Date:          date,
			AwayTeam:      p.team("LAD"),
			HomeTeam:      p.team("SF"),
			Venue:         "Oracle Park",
			StartTime:     at(20, 45),
			Status:        games.StatusScheduled,
			DetailedState: "Scheduled",
			GameNumber:    1,
		},
		{
			ID:            GameYankeesRedSox2,
			Date:          date,
			AwayTeam:      p.team("NYY"),
			HomeTeam:      p.team("BOS"),
			Venue:         "Fenway Park",
			StartTime:     at(23, 10),
			Status:        games.StatusScheduled,
			DetailedState: "Scheduled",
			GameNumber:    2,
			DoubleHeader:  true,
		},
		{
			ID:            GameYankeesRedSox1,
			Date:          date,
			AwayTeam:      p.team("NYY"),
			HomeTeam:      p.team("BOS"),
			Venue:         "Fenway Park",
			StartTime:     at(17, 5),
			Status:        games.StatusScheduled,
			DetailedState: "Scheduled",
			GameNumber:    1,
			DoubleHeader:  true,
		},
	}
}

func (p *Provider) team(abbr string) teams.Team {
	t, err := p.dir.Resolve(abbr)
	if err != nil {
		return teams.Team{Abbreviation: abbr}
	}
	return t
}

func clonePitcher(src *games.Pitcher) *games.Pitcher {
	if src == nil {
		return nil
	}
	cp := *src
	return &cp
}

func jersey(n int) *int {
	return &n
}

var probables = map[string]map[games.Side]*games.Pitcher{
	GameMetsTwins: {
		games.SideAway: {Name: "Kodai Senga", Jersey: jersey(34), Arm: games.ArmRight},
		games.SideHome: {Name: "Pablo Lopez", Jersey: jersey(49), Arm: games.ArmRight},
	},
	GameDodgersGiants: {
		games.SideAway: {Name: "Clayton Kershaw", Jersey: jersey(22), Arm: games.ArmLeft},
		games.SideHome: {Name: "Logan Webb", Jersey: jersey(62), Arm: games.ArmRight},
	},
	GameYankeesRedSox1: {
		games.SideAway: {Name: "Gerrit Cole", Jersey: jersey(45), Arm: games.ArmRight},
		games.SideHome: {Name: "Brayan Bello", Jersey: jersey(66), Arm: games.ArmRight},
	},
}

var confirmed = map[string]map[games.Side]*games.Pitcher{
	GameMetsTwins: {
		games.SideAway: {Name: "Kodai Senga", Jersey: jersey(34), Arm: games.ArmRight, Confirmed: true},
		games.SideHome: {Name: "Pablo Lopez", Jersey: jersey(49), Arm: games.ArmRight, Confirmed: true},
	},
	GameYankeesRedSox1: {
		games.SideAway: {Name: "Gerrit Cole", Jersey: jersey(45), Arm: games.ArmRight, Confirmed: true},
		games.SideHome: {Name: "Brayan Bello", Jersey: jersey(66), Arm: games.ArmRight, Confirmed: true},
	},
}

var lineups = map[string]map[games.Side]*games.Lineup{
	GameMetsTwins: {
		games.SideAway: {Slots: []games.LineupSlot{
			{Order: 1, Name: "Francisco Lindor", Jersey: jersey(12), Position: "SS"},
			{Order: 2, Name: "Juan Soto", Jersey: jersey(22), Position: "RF"},
			{Order: 3, Name: "Pete Alonso", Jersey: jersey(20), Position: "1B"},
			{Order: 4, Name: "Brandon Nimmo", Jersey: jersey(9), Position: "LF"},
			{Order: 5, Name: "Mark Vientos", Jersey: jersey(27), Position: "3B"},
			{Order: 6, Name: "Jesse Winker", Jersey: jersey(3), Position: "DH"},
			{Order: 7, Name: "Francisco Alvarez", Jersey: jersey(4), Position: "C"},
			{Order: 8, Name: "Jeff McNeil", Jersey: jersey(1), Position: "2B"},
			{Order: 9, Name: "Tyrone Taylor", Jersey: jersey(15), Position: "CF"},
		}},
		games.SideHome: {Slots: []games.LineupSlot{
			{Order: 1, Name: "Byron Buxton", Jersey: jersey(25), Position: "CF"},
			{Order: 2, Name: "Carlos Correa", Jersey: jersey(4), Position: "SS"},
			{Order: 3, Name: "Royce Lewis", Jersey: jersey(23), Position: "3B"},
			{Order: 4, Name: "Ryan Jeffers", Jersey: jersey(27), Position: "C"},
			{Order: 5, Name: "Matt Wallner", Jersey: jersey(38), Position: "RF"},
			{Order: 6, Name: "Trevor Larnach", Jersey: jersey(9), Position: "LF"},
			{Order: 7, Name: "Ty France", Jersey: jersey(2), Position: "1B"},
			{Order: 8, Name: "Willi Castro", Jersey: jersey(50), Position: "2B"},
			{Order: 9, Name: "Christian Vazquez", Jersey: jersey(8), Position: "DH"},
		}},
	},
	GameYankeesRedSox1: {
		games.SideAway: {Slots: []games.LineupSlot{
			{Order: 1, Name: "Anthony Volpe", Jersey: jersey(11), Position: "SS"},
			{Order: 2, Name: "Aaron Judge", Jersey: jersey(99), Position: "RF"},
			{Order: 3, Name: "Cody Bellinger", Jersey: jersey(35), Position: "CF"},
		}},
	},
}

var crews = map[string]map[games.UmpirePosition]string{
	GameMetsTwins: {
		games.UmpireHomePlate:  "Pat Hoberg",
		games.UmpireFirstBase:  "Dan Bellino",
		games.UmpireSecondBase: "Alfonso Marquez",
		games.UmpireThirdBase:  "Lance Barksdale",
	},
	GameYankeesRedSox1: {
		games.UmpireHomePlate: "Mark Carlson",
		games.UmpireFirstBase: "Chris Guccione",
	},
}
