package games

import (
	"time"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/teams"
)

// GameStatus is the normalized lifecycle state of a game.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusLive      GameStatus = "LIVE"
	StatusFinal     GameStatus = "FINAL"
	StatusPostponed GameStatus = "POSTPONED"
)

// Side identifies the home or away half of a matchup.
type Side string

const (
	SideHome Side = "HOME"
	SideAway Side = "AWAY"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// Label returns the lowercase form used in report lines ("home"/"away").
func (s Side) Label() string {
	if s == SideHome {
		return "home"
	}
	return "away"
}

func (s Side) String() string {
	return string(s)
}

// Game is one scheduled game as reported by the sports data provider.
type Game struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	HomeTeam      teams.Team `json:"homeTeam"`
	AwayTeam      teams.Team `json:"awayTeam"`
	Venue         string     `json:"venue"`
	StartTime     *time.Time `json:"startTime,omitempty"`
	Status        GameStatus `json:"status"`
	DetailedState string     `json:"detailedState,omitempty"`
	GameNumber    int        `json:"gameNumber,omitempty"`
	DoubleHeader  bool       `json:"doubleHeader,omitempty"`
	// TeamSide is the side the requested team plays on; set by the resolver.
	TeamSide Side `json:"teamSide,omitempty"`
}

// TeamFor returns the team playing on side.
func (g Game) TeamFor(side Side) teams.Team {
	if side == SideHome {
		return g.HomeTeam
	}
	return g.AwayTeam
}

// SideOf reports which side the team with the given provider id plays on.
func (g Game) SideOf(teamID string) (Side, bool) {
	switch teamID {
	case g.HomeTeam.ID:
		return SideHome, true
	case g.AwayTeam.ID:
		return SideAway, true
	default:
		return "", false
	}
}

// ThrowingArm is a pitcher's throwing hand.
type ThrowingArm string

const (
	ArmLeft    ThrowingArm = "LEFT"
	ArmRight   ThrowingArm = "RIGHT"
	ArmUnknown ThrowingArm = "UNKNOWN"
)

// Abbreviation returns RHP/LHP, or "" when the arm is unknown.
func (a ThrowingArm) Abbreviation() string {
	switch a {
	case ArmRight:
		return "RHP"
	case ArmLeft:
		return "LHP"
	default:
		return ""
	}
}

// Pitcher is a starting pitcher. Confirmed is false for a probable (announced, not official) starter.
type Pitcher struct {
	Name      string      `json:"name"`
	Jersey    *int        `json:"jersey,omitempty"`
	Arm       ThrowingArm `json:"arm"`
	Confirmed bool        `json:"confirmed"`
}

// LineupSlot is one spot in the batting order.
type LineupSlot struct {
	Order    int    `json:"order"`
	Name     string `json:"name"`
	Jersey   *int   `json:"jersey,omitempty"`
	Position string `json:"position"`
}

// Lineup is a posted batting order, sorted by Order.
type Lineup struct {
	Slots []LineupSlot `json:"slots"`
}

// UmpirePosition is an on-field umpire assignment.
type UmpirePosition string

const (
	UmpireHomePlate  UmpirePosition = "HOME_PLATE"
	UmpireFirstBase  UmpirePosition = "FIRST_BASE"
	UmpireSecondBase UmpirePosition = "SECOND_BASE"
	UmpireThirdBase  UmpirePosition = "THIRD_BASE"
)

// UmpirePositions is the fixed order positions are reported in.
var UmpirePositions = []UmpirePosition{
	UmpireHomePlate,
	UmpireFirstBase,
	UmpireSecondBase,
	UmpireThirdBase,
}

// Label returns the human-readable position name.
func (p UmpirePosition) Label() string {
	switch p {
	case UmpireHomePlate:
		return "Home Plate"
	case UmpireFirstBase:
		return "First Base"
	case UmpireSecondBase:
		return "Second Base"
	case UmpireThirdBase:
		return "Third Base"
	default:
		return string(p)
	}
}

// UmpireAssignment names the umpire working a position.
type UmpireAssignment struct {
	Position UmpirePosition `json:"position"`
	Name     string         `json:"name"`
}

// UmpireCrew holds the known assignments; any subset of positions may be missing.
type UmpireCrew struct {
	Assignments map[UmpirePosition]UmpireAssignment `json:"assignments"`
}

// Len reports how many positions have an assignment.
func (c *UmpireCrew) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Assignments)
}

// GameReport aggregates everything known about a game at lookup time.
// Each nil facet means that data was not retrievable; it never means "empty".
type GameReport struct {
	Game        Game        `json:"game"`
	HomePitcher *Pitcher    `json:"homePitcher,omitempty"`
	AwayPitcher *Pitcher    `json:"awayPitcher,omitempty"`
	HomeLineup  *Lineup     `json:"homeLineup,omitempty"`
	AwayLineup  *Lineup     `json:"awayLineup,omitempty"`
	Umpires     *UmpireCrew `json:"umpires,omitempty"`
}

// PitcherFor returns the starter for side, or nil.
func (r GameReport) PitcherFor(side Side) *Pitcher {
	if side == SideHome {
		return r.HomePitcher
	}
	return r.AwayPitcher
}

// LineupFor returns the lineup for side, or nil.
func (r GameReport) LineupFor(side Side) *Lineup {
	if side == SideHome {
		return r.HomeLineup
	}
	return r.AwayLineup
}
