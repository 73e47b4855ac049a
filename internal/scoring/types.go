package scoring

import (
	"errors"
	"time"
)

// ErrInvalidConfiguration is returned when a game cannot be created from a MatchConfig.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Team identifies one side of the net.
type Team string

const (
	TeamNone Team = ""
	TeamA    Team = "A"
	TeamB    Team = "B"
)

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// Valid reports whether t is A or B.
func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

type Format string

const (
	FormatSingles Format = "singles"
	FormatDoubles Format = "doubles"
	FormatTeam    Format = "team"
)

// PlayerCount is the roster size the format requires.
func (f Format) PlayerCount() int {
	if f == FormatSingles {
		return 2
	}
	return 4
}

type ScoringMode string

const (
	ModeSideOut ScoringMode = "side-out"
	ModeRally   ScoringMode = "rally"
)

// ServePosition is the court side the server serves from.
type ServePosition string

const (
	PositionRight ServePosition = "right"
	PositionLeft  ServePosition = "left"
)

// Flip returns the opposite court side.
func (p ServePosition) Flip() ServePosition {
	if p == PositionRight {
		return PositionLeft
	}
	return PositionRight
}

// MatchConfig is supplied once when a game is created.
type MatchConfig struct {
	Format      Format      `json:"format"`
	ScoringMode ScoringMode `json:"scoring_mode"`
	TargetScore int         `json:"target_score"`
	WinByTwo    bool        `json:"win_by_two"`
	PlayerNames []string    `json:"player_names"`
}

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team Team   `json:"team"`
}

// Snapshot holds the fields needed to reverse one scoring event.
type Snapshot struct {
	ScoreA         int           `json:"score_a" msgpack:"score_a"`
	ScoreB         int           `json:"score_b" msgpack:"score_b"`
	ServingTeam    Team          `json:"serving_team" msgpack:"serving_team"`
	ServerPosition ServePosition `json:"server_position" msgpack:"server_position"`
	ServerNumber   int           `json:"server_number" msgpack:"server_number"`
}

// ServeState is the serve portion of a MatchState.
type ServeState struct {
	ServingTeam    Team
	ServerPosition ServePosition
	ServerNumber   int
}

// MatchState is the full state of one game.
type MatchState struct {
	ID          string      `json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	Format      Format      `json:"format"`
	ScoringMode ScoringMode `json:"scoring_mode"`
	TargetScore int         `json:"target_score"`
	WinByTwo    bool        `json:"win_by_two"`

	ScoreA         int           `json:"score_a"`
	ScoreB         int           `json:"score_b"`
	ServingTeam    Team          `json:"serving_team"`
	ServerPosition ServePosition `json:"server_position"`
	ServerNumber   int           `json:"server_number"`
	FirstServer    Team          `json:"first_server"`

	GameWinner   Team `json:"game_winner,omitempty"`
	SideSwitched bool `json:"side_switched"`
	// SwitchAcknowledgedAt is the score sum at which the caller last acknowledged a side switch.
	SwitchAcknowledgedAt int `json:"switch_acknowledged_at"`

	Players []Player   `json:"players"`
	History []Snapshot `json:"history"`
}

// Score returns the team's current score.
func (s MatchState) Score(t Team) int {
	if t == TeamA {
		return s.ScoreA
	}
	return s.ScoreB
}

// Snapshot captures the reversible fields of the state.
func (s MatchState) Snapshot() Snapshot {
	return Snapshot{
		ScoreA:         s.ScoreA,
		ScoreB:         s.ScoreB,
		ServingTeam:    s.ServingTeam,
		ServerPosition: s.ServerPosition,
		ServerNumber:   s.ServerNumber,
	}
}

// Clone returns a copy that shares no slices with s.
func (s MatchState) Clone() MatchState {
	c := s
	c.Players = make([]Player, len(s.Players))
	copy(c.Players, s.Players)
	c.History = make([]Snapshot, len(s.History))
	copy(c.History, s.History)
	return c
}

// TeamPlayers returns the roster of one team in roster order.
func (s MatchState) TeamPlayers(t Team) []Player {
	var players []Player
	for _, p := range s.Players {
		if p.Team == t {
			players = append(players, p)
		}
	}
	return players
}
