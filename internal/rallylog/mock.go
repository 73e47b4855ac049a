package rallylog

import (
	"sync"
	"time"

	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SaveGameFunc    func(state scoring.MatchState) error
	FinishGameFunc  func(gameID string, winner scoring.Team, finalScore string, at time.Time) error
	ReopenGameFunc  func(gameID string) error
	AppendEntryFunc func(entry Entry) error
	GetGameFunc     func(gameID string) (*Game, error)
	GetEntriesFunc  func(gameID string) ([]Entry, error)

	// Call records
	SaveGameCalls   []scoring.MatchState
	FinishGameCalls []struct {
		GameID     string
		Winner     scoring.Team
		FinalScore string
	}
	ReopenGameCalls  []string
	AppendEntryCalls []Entry
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveGameCalls = nil
	m.FinishGameCalls = nil
	m.ReopenGameCalls = nil
	m.AppendEntryCalls = nil
}

func (m *MockStore) SaveGame(state scoring.MatchState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveGameCalls = append(m.SaveGameCalls, state)
	if m.SaveGameFunc != nil {
		return m.SaveGameFunc(state)
	}
	return nil
}

func (m *MockStore) FinishGame(gameID string, winner scoring.Team, finalScore string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FinishGameCalls = append(m.FinishGameCalls, struct {
		GameID     string
		Winner     scoring.Team
		FinalScore string
	}{gameID, winner, finalScore})
	if m.FinishGameFunc != nil {
		return m.FinishGameFunc(gameID, winner, finalScore, at)
	}
	return nil
}

func (m *MockStore) ReopenGame(gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReopenGameCalls = append(m.ReopenGameCalls, gameID)
	if m.ReopenGameFunc != nil {
		return m.ReopenGameFunc(gameID)
	}
	return nil
}

func (m *MockStore) AppendEntry(entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AppendEntryCalls = append(m.AppendEntryCalls, entry)
	if m.AppendEntryFunc != nil {
		return m.AppendEntryFunc(entry)
	}
	return nil
}

func (m *MockStore) GetGame(gameID string) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetGameFunc != nil {
		return m.GetGameFunc(gameID)
	}
	return nil, nil
}

func (m *MockStore) GetEntries(gameID string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetEntriesFunc != nil {
		return m.GetEntriesFunc(gameID)
	}
	return nil, nil
}
