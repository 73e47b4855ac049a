package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doublesConfig(mode ScoringMode) MatchConfig {
	return MatchConfig{
		Format:      FormatDoubles,
		ScoringMode: mode,
		TargetScore: 11,
		WinByTwo:    true,
		PlayerNames: []string{"Ana", "Ben", "Cal", "Dee"},
	}
}

func newState(t *testing.T, cfg MatchConfig) MatchState {
	t.Helper()
	state, err := NewMatchState(cfg)
	require.NoError(t, err)
	return state
}

func TestNewMatchState(t *testing.T) {
	t.Run("doubles roster is split in halves", func(t *testing.T) {
		state := newState(t, doublesConfig(ModeSideOut))

		require.Len(t, state.Players, 4)
		assert.Equal(t, Player{ID: "player-0", Name: "Ana", Team: TeamA}, state.Players[0])
		assert.Equal(t, TeamA, state.Players[1].Team)
		assert.Equal(t, TeamB, state.Players[2].Team)
		assert.Equal(t, TeamB, state.Players[3].Team)

		assert.Equal(t, 0, state.ScoreA)
		assert.Equal(t, 0, state.ScoreB)
		assert.Equal(t, TeamA, state.ServingTeam)
		assert.Equal(t, PositionRight, state.ServerPosition)
		assert.Equal(t, 2, state.ServerNumber)
		assert.Equal(t, TeamA, state.FirstServer)
		assert.Equal(t, TeamNone, state.GameWinner)
		assert.False(t, state.SideSwitched)
		assert.Empty(t, state.History)
	})

	t.Run("singles has one player per team", func(t *testing.T) {
		state := newState(t, MatchConfig{
			Format:      FormatSingles,
			ScoringMode: ModeRally,
			TargetScore: 15,
			PlayerNames: []string{"Ana", "Ben"},
		})
		require.Len(t, state.Players, 2)
		assert.Equal(t, TeamA, state.Players[0].Team)
		assert.Equal(t, TeamB, state.Players[1].Team)
	})

	t.Run("blank names get a default", func(t *testing.T) {
		cfg := doublesConfig(ModeSideOut)
		cfg.PlayerNames = []string{"Ana", "  ", "", "Dee"}
		state := newState(t, cfg)
		assert.Equal(t, "Player 2", state.Players[1].Name)
		assert.Equal(t, "Player 3", state.Players[2].Name)
	})

	invalid := []struct {
		name   string
		mutate func(*MatchConfig)
	}{
		{"zero target", func(c *MatchConfig) { c.TargetScore = 0 }},
		{"negative target", func(c *MatchConfig) { c.TargetScore = -11 }},
		{"too few doubles names", func(c *MatchConfig) { c.PlayerNames = []string{"Ana", "Ben"} }},
		{"singles with four names", func(c *MatchConfig) { c.Format = FormatSingles }},
		{"team with three names", func(c *MatchConfig) { c.Format = FormatTeam; c.PlayerNames = c.PlayerNames[:3] }},
		{"unknown format", func(c *MatchConfig) { c.Format = "triples" }},
		{"unknown mode", func(c *MatchConfig) { c.ScoringMode = "golden-point" }},
	}
	for _, tc := range invalid {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			cfg := doublesConfig(ModeSideOut)
			tc.mutate(&cfg)
			_, err := NewMatchState(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestNextServe_SideOutDoubles(t *testing.T) {
	base := newState(t, doublesConfig(ModeSideOut))

	tests := []struct {
		name     string
		serving  Team
		number   int
		position ServePosition
		winner   Team
		want     ServeState
	}{
		{"server retains and flips", TeamA, 1, PositionRight, TeamA, ServeState{TeamA, PositionLeft, 1}},
		{"second server retains and flips back", TeamA, 2, PositionLeft, TeamA, ServeState{TeamA, PositionRight, 2}},
		{"first server loses to second server", TeamA, 1, PositionLeft, TeamB, ServeState{TeamA, PositionRight, 2}},
		{"second server loses is a side-out", TeamA, 2, PositionLeft, TeamB, ServeState{TeamB, PositionRight, 1}},
		{"team B side-out back to A", TeamB, 2, PositionRight, TeamA, ServeState{TeamA, PositionRight, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := base
			state.ServingTeam = tc.serving
			state.ServerNumber = tc.number
			state.ServerPosition = tc.position
			assert.Equal(t, tc.want, NextServe(state, tc.winner))
		})
	}
}

func TestNextServe_SideOutSingles(t *testing.T) {
	state := newState(t, MatchConfig{
		Format:      FormatSingles,
		ScoringMode: ModeSideOut,
		TargetScore: 11,
		PlayerNames: []string{"Ana", "Ben"},
	})
	state.ServerNumber = 1

	assert.Equal(t, ServeState{TeamA, PositionLeft, 1}, NextServe(state, TeamA))
	// No second server in singles, even when the server number reads 1.
	assert.Equal(t, ServeState{TeamB, PositionRight, 1}, NextServe(state, TeamB))
}

func TestNextServe_Rally(t *testing.T) {
	state := newState(t, doublesConfig(ModeRally))

	assert.Equal(t, ServeState{TeamA, PositionLeft, 1}, NextServe(state, TeamA), "score 1 is odd")
	assert.Equal(t, ServeState{TeamB, PositionLeft, 1}, NextServe(state, TeamB))

	state.ScoreB = 3
	assert.Equal(t, ServeState{TeamB, PositionRight, 1}, NextServe(state, TeamB), "score 4 is even")
}

func TestApplyScore(t *testing.T) {
	sideOut := newState(t, doublesConfig(ModeSideOut))
	a, b := ApplyScore(sideOut, TeamA)
	assert.Equal(t, [2]int{1, 0}, [2]int{a, b})
	a, b = ApplyScore(sideOut, TeamB)
	assert.Equal(t, [2]int{0, 0}, [2]int{a, b}, "receiving team cannot score in side-out")

	rally := newState(t, doublesConfig(ModeRally))
	a, b = ApplyScore(rally, TeamB)
	assert.Equal(t, [2]int{0, 1}, [2]int{a, b})
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		scoreA, scoreB int
		winByTwo       bool
		want           Team
	}{
		{11, 9, true, TeamA},
		{11, 10, true, TeamNone},
		{12, 10, true, TeamA},
		{10, 12, true, TeamB},
		{11, 10, false, TeamA},
		{9, 11, false, TeamB},
		{10, 10, false, TeamNone},
		{0, 0, true, TeamNone},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CheckWinner(tc.scoreA, tc.scoreB, 11, tc.winByTwo),
			"%d-%d winByTwo=%v", tc.scoreA, tc.scoreB, tc.winByTwo)
	}

	assert.Equal(t, TeamA, CheckWinner(11, 11, 11, false), "team A is checked first")
}

func TestShouldSwitchSides(t *testing.T) {
	assert.True(t, ShouldSwitchSides(3, 3))
	assert.True(t, ShouldSwitchSides(4, 4))
	assert.True(t, ShouldSwitchSides(5, 6))
	assert.False(t, ShouldSwitchSides(2, 3))
	assert.False(t, ShouldSwitchSides(7, 0))
	assert.False(t, ShouldSwitchSides(6, 6))
}

func TestFormatAnnouncement(t *testing.T) {
	assert.Equal(t, "4-7", FormatAnnouncement(4, 7, 2, FormatSingles))
	assert.Equal(t, "4-7-2", FormatAnnouncement(4, 7, 2, FormatDoubles))
	assert.Equal(t, "0-0-2", FormatAnnouncement(0, 0, 2, FormatTeam))
}

func TestNext_DoublesSideOutScenario(t *testing.T) {
	state := newState(t, doublesConfig(ModeSideOut))

	state = Next(state, TeamB)
	assert.Equal(t, TeamB, state.ServingTeam, "opening server is server 2, so this is a side-out")
	assert.Equal(t, 1, state.ServerNumber)
	assert.Equal(t, PositionRight, state.ServerPosition)
	assert.Equal(t, 0, state.ScoreA)
	assert.Equal(t, 0, state.ScoreB)

	state = Next(state, TeamB)
	assert.Equal(t, TeamB, state.ServingTeam)
	assert.Equal(t, PositionLeft, state.ServerPosition)
	assert.Equal(t, 1, state.ServerNumber)
	assert.Equal(t, 1, state.ScoreB)
	assert.Equal(t, "0-1-1", Announcement(state))
	assert.Len(t, state.History, 2)
}

func TestNext_RallyScenario(t *testing.T) {
	state := newState(t, doublesConfig(ModeRally))

	state = Next(state, TeamA)
	assert.Equal(t, 1, state.ScoreA)
	assert.Equal(t, TeamA, state.ServingTeam)
	assert.Equal(t, 1, state.ServerNumber)
	assert.Equal(t, PositionLeft, state.ServerPosition)
	assert.Equal(t, "1-0-1", Announcement(state))
}

func TestNext_NoOpAfterWinner(t *testing.T) {
	cfg := doublesConfig(ModeRally)
	cfg.TargetScore = 2
	state := newState(t, cfg)
	state = Next(state, TeamA)
	state = Next(state, TeamA)
	require.Equal(t, TeamA, state.GameWinner)

	after := Next(state, TeamB)
	assert.Equal(t, state, after)
}

func TestNext_IgnoresUnknownTeam(t *testing.T) {
	state := newState(t, doublesConfig(ModeRally))
	assert.Equal(t, state, Next(state, Team("C")))
	assert.Equal(t, state, Next(state, TeamNone))
}

func TestNext_DoesNotAliasHistory(t *testing.T) {
	state := newState(t, doublesConfig(ModeRally))
	state = Next(state, TeamA)
	branchA := Next(state, TeamA)
	branchB := Next(state, TeamB)

	require.Len(t, state.History, 1)
	assert.Equal(t, 1, branchA.History[1].ScoreA)
	assert.Equal(t, 1, branchB.History[1].ScoreA)
	assert.Equal(t, 2, branchA.ScoreA)
	assert.Equal(t, 1, branchB.ScoreB)
}

func TestUndo(t *testing.T) {
	t.Run("empty history is a no-op", func(t *testing.T) {
		state := newState(t, doublesConfig(ModeSideOut))
		assert.Equal(t, state, Undo(state))
	})

	t.Run("restores snapshot fields and clears the winner", func(t *testing.T) {
		cfg := doublesConfig(ModeRally)
		cfg.TargetScore = 1
		cfg.WinByTwo = false
		state := newState(t, cfg)
		before := state.Snapshot()

		state = Next(state, TeamB)
		require.Equal(t, TeamB, state.GameWinner)

		state = Undo(state)
		assert.Equal(t, before, state.Snapshot())
		assert.Equal(t, TeamNone, state.GameWinner)
		assert.Empty(t, state.History)
	})

	t.Run("side switch stays flagged after undo", func(t *testing.T) {
		state := newState(t, doublesConfig(ModeRally))
		for i := 0; i < 6; i++ {
			state = Next(state, TeamA)
		}
		require.True(t, state.SideSwitched)

		state = Undo(state)
		assert.Equal(t, 5, state.ScoreA)
		assert.True(t, state.SideSwitched, "the switch flag is sticky for the game")
	})
}

func TestServerDisplayName(t *testing.T) {
	state := newState(t, doublesConfig(ModeSideOut))
	assert.Equal(t, "Ben", ServerDisplayName(state), "opening server is A's second player")

	state = Next(state, TeamB)
	assert.Equal(t, "Cal", ServerDisplayName(state))

	state = Next(state, TeamA)
	assert.Equal(t, "Dee", ServerDisplayName(state))

	singles := newState(t, MatchConfig{
		Format:      FormatSingles,
		ScoringMode: ModeSideOut,
		TargetScore: 11,
		PlayerNames: []string{"Ana", "Ben"},
	})
	assert.Equal(t, "Ana", ServerDisplayName(singles))

	singles.Players = nil
	assert.Equal(t, "Team A", ServerDisplayName(singles))
}

func TestIsSideSwitchDue(t *testing.T) {
	state := newState(t, doublesConfig(ModeRally))
	for i := 0; i < 5; i++ {
		state = Next(state, TeamA)
	}
	assert.False(t, IsSideSwitchDue(state))

	state = Next(state, TeamB)
	assert.True(t, IsSideSwitchDue(state))

	state.SwitchAcknowledgedAt = 6
	assert.False(t, IsSideSwitchDue(state))

	state = Next(state, TeamB)
	state = Next(state, TeamB)
	assert.True(t, IsSideSwitchDue(state), "sum 8 is a new checkpoint")
}
