package rallylog

import (
	"database/sql"
	"sync"
	"time"

	"github.com/mauv0809/pickle-tracker/internal/metrics"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

// store handles all database operations for the rally log.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// Game is one stored game header.
type Game struct {
	ID          string              `json:"id"`
	Format      scoring.Format      `json:"format"`
	ScoringMode scoring.ScoringMode `json:"scoring_mode"`
	TargetScore int                 `json:"target_score"`
	WinByTwo    bool                `json:"win_by_two"`
	PlayerNames []string            `json:"player_names"`
	Winner      scoring.Team        `json:"winner,omitempty"`
	FinalScore  string              `json:"final_score,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	FinishedAt  *time.Time          `json:"finished_at,omitempty"`
}

// Entry is one logged point or undo. Snapshot is the state after the event.
type Entry struct {
	ID           int64            `json:"id"`
	GameID       string           `json:"game_id"`
	Seq          int              `json:"seq"`
	Kind         string           `json:"kind"`
	Team         scoring.Team     `json:"team,omitempty"`
	ScoreA       int              `json:"score_a"`
	ScoreB       int              `json:"score_b"`
	Announcement string           `json:"announcement"`
	Snapshot     scoring.Snapshot `json:"snapshot"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Recorder writes controller events to a Store.
type Recorder struct {
	store   Store
	metrics metrics.Metrics
	now     func() time.Time
}
