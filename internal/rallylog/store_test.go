package rallylog_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mauv0809/pickle-tracker/internal/database"
	"github.com/mauv0809/pickle-tracker/internal/rallylog"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a migrated in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (rallylog.Store, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return rallylog.New(db), db, teardown
}

func testGame(t *testing.T, id string) scoring.MatchState {
	t.Helper()
	state, err := scoring.NewMatchState(scoring.MatchConfig{
		Format:      scoring.FormatDoubles,
		ScoringMode: scoring.ModeSideOut,
		TargetScore: 11,
		WinByTwo:    true,
		PlayerNames: []string{"Ana", "Ben", "Cal", "Dee"},
	})
	require.NoError(t, err)
	state.ID = id
	state.CreatedAt = time.Unix(1_760_000_000, 0)
	return state
}

func TestSaveAndGetGame(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.SaveGame(testGame(t, "g1")))
	require.NoError(t, store.SaveGame(testGame(t, "g1")), "saving twice is a no-op")

	game, err := store.GetGame("g1")
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, scoring.FormatDoubles, game.Format)
	assert.Equal(t, scoring.ModeSideOut, game.ScoringMode)
	assert.Equal(t, 11, game.TargetScore)
	assert.True(t, game.WinByTwo)
	assert.Equal(t, []string{"Ana", "Ben", "Cal", "Dee"}, game.PlayerNames)
	assert.Equal(t, scoring.TeamNone, game.Winner)
	assert.Nil(t, game.FinishedAt)

	missing, err := store.GetGame("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFinishAndReopenGame(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	require.NoError(t, store.SaveGame(testGame(t, "g1")))

	require.NoError(t, store.FinishGame("g1", scoring.TeamB, "7-11", time.Unix(1_760_000_600, 0)))
	game, err := store.GetGame("g1")
	require.NoError(t, err)
	assert.Equal(t, scoring.TeamB, game.Winner)
	assert.Equal(t, "7-11", game.FinalScore)
	require.NotNil(t, game.FinishedAt)
	assert.Equal(t, int64(1_760_000_600), game.FinishedAt.Unix())

	require.NoError(t, store.ReopenGame("g1"))
	game, err = store.GetGame("g1")
	require.NoError(t, err)
	assert.Equal(t, scoring.TeamNone, game.Winner)
	assert.Empty(t, game.FinalScore)
	assert.Nil(t, game.FinishedAt)
}

func TestAppendAndGetEntries(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	require.NoError(t, store.SaveGame(testGame(t, "g1")))
	require.NoError(t, store.SaveGame(testGame(t, "g2")))

	snap := scoring.Snapshot{ScoreA: 1, ServingTeam: scoring.TeamA, ServerPosition: scoring.PositionLeft, ServerNumber: 2}
	require.NoError(t, store.AppendEntry(rallylog.Entry{GameID: "g1", Kind: "point", Team: scoring.TeamA, ScoreA: 1, Announcement: "1-0-2", Snapshot: snap, CreatedAt: time.Unix(10, 0)}))
	require.NoError(t, store.AppendEntry(rallylog.Entry{GameID: "g2", Kind: "point", Team: scoring.TeamB, Announcement: "0-0-1", CreatedAt: time.Unix(11, 0)}))
	require.NoError(t, store.AppendEntry(rallylog.Entry{GameID: "g1", Kind: "undo", Announcement: "0-0-2", CreatedAt: time.Unix(12, 0)}))

	entries, err := store.GetEntries("g1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Seq)
	assert.Equal(t, "point", entries[0].Kind)
	assert.Equal(t, scoring.TeamA, entries[0].Team)
	assert.Equal(t, snap, entries[0].Snapshot)
	assert.Equal(t, 2, entries[1].Seq)
	assert.Equal(t, "undo", entries[1].Kind)
	assert.Equal(t, scoring.TeamNone, entries[1].Team)

	other, err := store.GetEntries("g2")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 1, other[0].Seq, "sequence numbers are per game")

	empty, err := store.GetEntries("g3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAppendEntry_UnknownGameFails(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.AppendEntry(rallylog.Entry{GameID: "ghost", Kind: "point", Announcement: "1-0"})
	assert.Error(t, err, "foreign key to games is enforced")
}
