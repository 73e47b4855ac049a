package rallylog

import (
	"time"

	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

// Store defines the persistence operations of the rally log.
type Store interface {
	SaveGame(state scoring.MatchState) error
	FinishGame(gameID string, winner scoring.Team, finalScore string, at time.Time) error
	ReopenGame(gameID string) error
	AppendEntry(entry Entry) error
	GetGame(gameID string) (*Game, error)
	GetEntries(gameID string) ([]Entry, error)
}
