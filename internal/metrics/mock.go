package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	ralliesPlayed    int
	pointsScored     int
	sideOuts         int
	undos            int
	gamesStarted     int
	gamesCompleted   int
	slackNotifSent   int
	slackNotifFailed int
	rallyLogErrors   int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncRalliesPlayed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ralliesPlayed++
}

func (m *Mock) IncPointsScored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointsScored++
}

func (m *Mock) IncSideOuts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sideOuts++
}

func (m *Mock) IncUndos() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undos++
}

func (m *Mock) IncGamesStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesStarted++
}

func (m *Mock) IncGamesCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesCompleted++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) IncRallyLogErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rallyLogErrors++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// RalliesPlayed returns the number of times IncRalliesPlayed was called.
func (m *Mock) RalliesPlayed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ralliesPlayed
}

// PointsScored returns the number of times IncPointsScored was called.
func (m *Mock) PointsScored() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointsScored
}

// SideOuts returns the number of times IncSideOuts was called.
func (m *Mock) SideOuts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sideOuts
}

// Undos returns the number of times IncUndos was called.
func (m *Mock) Undos() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.undos
}

// GamesStarted returns the number of times IncGamesStarted was called.
func (m *Mock) GamesStarted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesStarted
}

// GamesCompleted returns the number of times IncGamesCompleted was called.
func (m *Mock) GamesCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesCompleted
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// RallyLogErrors returns the number of times IncRallyLogErrors was called.
func (m *Mock) RallyLogErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rallyLogErrors
}
