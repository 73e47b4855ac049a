package scoring

import (
	"fmt"
	"strings"
)

// switchCheckpoints are the score sums at which players change ends.
var switchCheckpoints = map[int]bool{6: true, 8: true, 11: true}

// NewMatchState validates the config and builds the state of a fresh game.
// Team A serves first as server 2, so the opening possession has a single server.
func NewMatchState(cfg MatchConfig) (MatchState, error) {
	switch cfg.Format {
	case FormatSingles, FormatDoubles, FormatTeam:
	default:
		return MatchState{}, fmt.Errorf("%w: unknown format %q", ErrInvalidConfiguration, cfg.Format)
	}
	switch cfg.ScoringMode {
	case ModeSideOut, ModeRally:
	default:
		return MatchState{}, fmt.Errorf("%w: unknown scoring mode %q", ErrInvalidConfiguration, cfg.ScoringMode)
	}
	if cfg.TargetScore <= 0 {
		return MatchState{}, fmt.Errorf("%w: target score must be positive, got %d", ErrInvalidConfiguration, cfg.TargetScore)
	}
	if want := cfg.Format.PlayerCount(); len(cfg.PlayerNames) != want {
		return MatchState{}, fmt.Errorf("%w: %s needs %d player names, got %d", ErrInvalidConfiguration, cfg.Format, want, len(cfg.PlayerNames))
	}

	half := len(cfg.PlayerNames) / 2
	players := make([]Player, 0, len(cfg.PlayerNames))
	for i, name := range cfg.PlayerNames {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		team := TeamA
		if i >= half {
			team = TeamB
		}
		players = append(players, Player{
			ID:   fmt.Sprintf("player-%d", i),
			Name: name,
			Team: team,
		})
	}

	return MatchState{
		Format:         cfg.Format,
		ScoringMode:    cfg.ScoringMode,
		TargetScore:    cfg.TargetScore,
		WinByTwo:       cfg.WinByTwo,
		ServingTeam:    TeamA,
		ServerPosition: PositionRight,
		ServerNumber:   2,
		FirstServer:    TeamA,
		Players:        players,
		History:        []Snapshot{},
	}, nil
}

// NextServe computes who serves, and from where, after scoringTeam wins the rally.
// state is the state before the rally was scored.
func NextServe(state MatchState, scoringTeam Team) ServeState {
	if state.ScoringMode == ModeRally {
		position := PositionRight
		if (state.Score(scoringTeam)+1)%2 != 0 {
			position = PositionLeft
		}
		return ServeState{
			ServingTeam:    scoringTeam,
			ServerPosition: position,
			ServerNumber:   1,
		}
	}

	if scoringTeam == state.ServingTeam {
		return ServeState{
			ServingTeam:    state.ServingTeam,
			ServerPosition: state.ServerPosition.Flip(),
			ServerNumber:   state.ServerNumber,
		}
	}

	// Singles has one server per side, so every lost rally is a side-out.
	if state.Format != FormatSingles && state.ServerNumber == 1 {
		return ServeState{
			ServingTeam:    state.ServingTeam,
			ServerPosition: PositionRight,
			ServerNumber:   2,
		}
	}

	return ServeState{
		ServingTeam:    state.ServingTeam.Opponent(),
		ServerPosition: PositionRight,
		ServerNumber:   1,
	}
}

// ApplyScore returns the scores after scoringTeam wins the rally.
func ApplyScore(state MatchState, scoringTeam Team) (int, int) {
	scoreA, scoreB := state.ScoreA, state.ScoreB
	if state.ScoringMode == ModeSideOut && scoringTeam != state.ServingTeam {
		return scoreA, scoreB
	}
	switch scoringTeam {
	case TeamA:
		scoreA++
	case TeamB:
		scoreB++
	}
	return scoreA, scoreB
}

// CheckWinner returns the winning team, or TeamNone while the game is open.
// Team A is checked first.
func CheckWinner(scoreA, scoreB, targetScore int, winByTwo bool) Team {
	if winByTwo {
		if scoreA >= targetScore && scoreA-scoreB >= 2 {
			return TeamA
		}
		if scoreB >= targetScore && scoreB-scoreA >= 2 {
			return TeamB
		}
		return TeamNone
	}
	if scoreA >= targetScore {
		return TeamA
	}
	if scoreB >= targetScore {
		return TeamB
	}
	return TeamNone
}

// ShouldSwitchSides reports whether the combined score is a side-switch checkpoint.
func ShouldSwitchSides(scoreA, scoreB int) bool {
	return switchCheckpoints[scoreA+scoreB]
}

// FormatAnnouncement renders the called score. Doubles and team games append the server number.
func FormatAnnouncement(scoreA, scoreB, serverNumber int, format Format) string {
	if format == FormatSingles {
		return fmt.Sprintf("%d-%d", scoreA, scoreB)
	}
	return fmt.Sprintf("%d-%d-%d", scoreA, scoreB, serverNumber)
}

// Next applies one rally won by scoringTeam and returns the resulting state.
// A decided game, or a team other than A or B, leaves the state unchanged.
func Next(state MatchState, scoringTeam Team) MatchState {
	if state.GameWinner != TeamNone || !scoringTeam.Valid() {
		return state
	}

	next := state.Clone()
	next.History = append(next.History, state.Snapshot())

	next.ScoreA, next.ScoreB = ApplyScore(state, scoringTeam)
	serve := NextServe(state, scoringTeam)
	next.ServingTeam = serve.ServingTeam
	next.ServerPosition = serve.ServerPosition
	next.ServerNumber = serve.ServerNumber
	next.GameWinner = CheckWinner(next.ScoreA, next.ScoreB, next.TargetScore, next.WinByTwo)
	next.SideSwitched = state.SideSwitched || ShouldSwitchSides(next.ScoreA, next.ScoreB)
	return next
}

// Undo reverts the most recent rally. The winner is always cleared; SideSwitched is kept.
func Undo(state MatchState) MatchState {
	if len(state.History) == 0 {
		return state
	}

	next := state.Clone()
	last := next.History[len(next.History)-1]
	next.History = next.History[:len(next.History)-1]

	next.ScoreA = last.ScoreA
	next.ScoreB = last.ScoreB
	next.ServingTeam = last.ServingTeam
	next.ServerPosition = last.ServerPosition
	next.ServerNumber = last.ServerNumber
	next.GameWinner = TeamNone
	return next
}

// Announcement is the called score for the state.
func Announcement(state MatchState) string {
	return FormatAnnouncement(state.ScoreA, state.ScoreB, state.ServerNumber, state.Format)
}

// ServerDisplayName resolves the current server to a player name, falling back to "Team X".
func ServerDisplayName(state MatchState) string {
	players := state.TeamPlayers(state.ServingTeam)
	idx := 0
	if state.Format != FormatSingles {
		idx = state.ServerNumber - 1
	}
	if idx >= 0 && idx < len(players) && players[idx].Name != "" {
		return players[idx].Name
	}
	return fmt.Sprintf("Team %s", state.ServingTeam)
}

// IsSideSwitchDue reports whether the current score sits on a checkpoint the caller
// has not yet acknowledged.
func IsSideSwitchDue(state MatchState) bool {
	if !ShouldSwitchSides(state.ScoreA, state.ScoreB) {
		return false
	}
	return state.SwitchAcknowledgedAt != state.ScoreA+state.ScoreB
}
