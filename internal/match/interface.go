package match

import "github.com/mauv0809/pickle-tracker/internal/scoring"

// Subscriber receives every committed state change.
// Subscribers run synchronously while the controller is locked and must not call back into it.
type Subscriber interface {
	HandleEvent(event Event)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(event Event)

func (f SubscriberFunc) HandleEvent(event Event) {
	f(event)
}

// MatchController defines the operations the presentation layer drives.
type MatchController interface {
	Create(cfg scoring.MatchConfig) (scoring.MatchState, error)
	Reset(cfg scoring.MatchConfig) (scoring.MatchState, error)
	ScorePoint(team scoring.Team) scoring.MatchState
	UndoLastPoint() scoring.MatchState
	AcknowledgeSideSwitch() scoring.MatchState
	State() (scoring.MatchState, bool)
	Subscribe(subscriber Subscriber) func()
}
