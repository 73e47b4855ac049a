package rallylog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
	"github.com/vmihailenco/msgpack/v5"
)

var _ Store = (*store)(nil)

// New creates a new rally log Store backed by db.
func New(db *sql.DB) Store {
	return &store{db: db}
}

// SaveGame inserts the game header. Saving the same game twice is a no-op.
func (s *store) SaveGame(state scoring.MatchState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(state.Players))
	for _, p := range state.Players {
		names = append(names, p.Name)
	}
	namesJSON, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to marshal player names: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO games (id, format, scoring_mode, target_score, win_by_two, player_names, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		state.ID, string(state.Format), string(state.ScoringMode), state.TargetScore, state.WinByTwo, string(namesJSON), state.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save game %s: %w", state.ID, err)
	}
	log.Debug("Saved game", "gameID", state.ID)
	return nil
}

// FinishGame records the winner and final score.
func (s *store) FinishGame(gameID string, winner scoring.Team, finalScore string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`UPDATE games SET winner = ?, final_score = ?, finished_at = ? WHERE id = ?`,
		string(winner), finalScore, at.Unix(), gameID)
	if err != nil {
		return fmt.Errorf("failed to finish game %s: %w", gameID, err)
	}
	return nil
}

// ReopenGame clears the winner after the deciding rally was undone.
func (s *store) ReopenGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`UPDATE games SET winner = NULL, final_score = NULL, finished_at = NULL WHERE id = ?`, gameID)
	if err != nil {
		return fmt.Errorf("failed to reopen game %s: %w", gameID, err)
	}
	return nil
}

// AppendEntry adds an entry with the next sequence number for its game.
func (s *store) AppendEntry(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := msgpack.Marshal(entry.Snapshot)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO rallies (game_id, seq, kind, team, score_a, score_b, announcement, snapshot, created_at)
		SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?, ?, ?, ?
		FROM rallies WHERE game_id = ?`,
		entry.GameID, entry.Kind, nullableTeam(entry.Team), entry.ScoreA, entry.ScoreB, entry.Announcement, blob, entry.CreatedAt.Unix(),
		entry.GameID,
	)
	if err != nil {
		return fmt.Errorf("failed to append %s entry for game %s: %w", entry.Kind, entry.GameID, err)
	}
	return nil
}

// GetGame returns the game header, or nil if it is unknown.
func (s *store) GetGame(gameID string) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		g          Game
		format     string
		mode       string
		winByTwo   bool
		namesJSON  string
		winner     sql.NullString
		finalScore sql.NullString
		createdAt  int64
		finishedAt sql.NullInt64
	)
	err := s.db.QueryRow(`
		SELECT id, format, scoring_mode, target_score, win_by_two, player_names, winner, final_score, created_at, finished_at
		FROM games WHERE id = ?`, gameID).
		Scan(&g.ID, &format, &mode, &g.TargetScore, &winByTwo, &namesJSON, &winner, &finalScore, &createdAt, &finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
	}

	g.Format = scoring.Format(format)
	g.ScoringMode = scoring.ScoringMode(mode)
	g.WinByTwo = winByTwo
	if namesJSON != "" {
		if err := json.Unmarshal([]byte(namesJSON), &g.PlayerNames); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player names for game %s: %w", gameID, err)
		}
	}
	g.Winner = scoring.Team(winner.String)
	g.FinalScore = finalScore.String
	g.CreatedAt = time.Unix(createdAt, 0)
	if finishedAt.Valid {
		t := time.Unix(finishedAt.Int64, 0)
		g.FinishedAt = &t
	}
	return &g, nil
}

// GetEntries returns a game's entries in sequence order.
func (s *store) GetEntries(gameID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, game_id, seq, kind, team, score_a, score_b, announcement, snapshot, created_at
		FROM rallies WHERE game_id = ? ORDER BY seq`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for game %s: %w", gameID, err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e         Entry
			team      sql.NullString
			blob      []byte
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Seq, &e.Kind, &team, &e.ScoreA, &e.ScoreB, &e.Announcement, &blob, &createdAt); err != nil {
			return nil, err
		}
		if err := msgpack.Unmarshal(blob, &e.Snapshot); err != nil {
			log.Error("MessagePack unmarshal error", "error", err, "entryID", e.ID)
			return nil, err
		}
		e.Team = scoring.Team(team.String)
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullableTeam(t scoring.Team) any {
	if t == scoring.TeamNone {
		return nil
	}
	return string(t)
}
