package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-tracker/internal/match"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

// Notifier defines a high-level interface for announcing game events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	SendGameWon(state scoring.MatchState, dryRun bool) error
	SendSideSwitch(state scoring.MatchState, dryRun bool) error
}

var _ match.Subscriber = (*Forwarder)(nil)

// Forwarder turns controller events into notifications.
type Forwarder struct {
	notifier Notifier
	dryRun   bool
}

// NewForwarder returns a controller subscriber that notifies on wins and side switches.
func NewForwarder(n Notifier, dryRun bool) *Forwarder {
	return &Forwarder{notifier: n, dryRun: dryRun}
}

func (f *Forwarder) HandleEvent(event match.Event) {
	var err error
	switch {
	case event.GameWon():
		err = f.notifier.SendGameWon(event.State, f.dryRun)
	case event.SideSwitchReached():
		err = f.notifier.SendSideSwitch(event.State, f.dryRun)
	default:
		return
	}
	if err != nil {
		log.Error("Failed to send notification", "error", err, "matchID", event.State.ID, "event", event.Kind)
	}
}
