package notifier

import (
	"sync"

	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendGameWonFunc    func(state scoring.MatchState, dryRun bool) error
	SendSideSwitchFunc func(state scoring.MatchState, dryRun bool) error

	// Call records
	SendGameWonCalls    []scoring.MatchState
	SendSideSwitchCalls []scoring.MatchState
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendGameWonCalls = nil
	m.SendSideSwitchCalls = nil
}

func (m *Mock) SendGameWon(state scoring.MatchState, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendGameWonCalls = append(m.SendGameWonCalls, state)
	if m.SendGameWonFunc != nil {
		return m.SendGameWonFunc(state, dryRun)
	}
	return nil
}

func (m *Mock) SendSideSwitch(state scoring.MatchState, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendSideSwitchCalls = append(m.SendSideSwitchCalls, state)
	if m.SendSideSwitchFunc != nil {
		return m.SendSideSwitchFunc(state, dryRun)
	}
	return nil
}
