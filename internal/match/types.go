package match

import (
	"sync"
	"time"

	"github.com/mauv0809/pickle-tracker/internal/metrics"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

// EventKind names the operation that produced an Event.
type EventKind string

const (
	EventCreated                EventKind = "created"
	EventReset                  EventKind = "reset"
	EventPointScored            EventKind = "point"
	EventPointUndone            EventKind = "undo"
	EventSideSwitchAcknowledged EventKind = "side-switch-ack"
)

// Event is published to subscribers after every committed state change.
type Event struct {
	Kind     EventKind
	Team     scoring.Team
	Previous scoring.MatchState
	State    scoring.MatchState
}

// GameWon reports whether this event decided the game.
func (e Event) GameWon() bool {
	return e.Kind == EventPointScored && e.State.GameWinner != scoring.TeamNone && e.Previous.GameWinner == scoring.TeamNone
}

// SideSwitchReached reports whether this event moved the score onto a side-switch checkpoint.
func (e Event) SideSwitchReached() bool {
	return e.Kind == EventPointScored &&
		e.State.ScoreA+e.State.ScoreB != e.Previous.ScoreA+e.Previous.ScoreB &&
		scoring.IsSideSwitchDue(e.State)
}

type subscription struct {
	id         int
	subscriber Subscriber
}

// Controller owns the single live game.
type Controller struct {
	mu          sync.Mutex
	state       scoring.MatchState
	started     bool
	metrics     metrics.Metrics
	subscribers []subscription
	nextSubID   int
	newID       func() string
	now         func() time.Time
}
