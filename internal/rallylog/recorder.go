package rallylog

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-tracker/internal/match"
	"github.com/mauv0809/pickle-tracker/internal/metrics"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

var _ match.Subscriber = (*Recorder)(nil)

// NewRecorder returns a controller subscriber that appends every point and undo to store.
// Write failures are logged and counted; they never affect the live game.
func NewRecorder(store Store, metrics metrics.Metrics) *Recorder {
	return &Recorder{
		store:   store,
		metrics: metrics,
		now:     time.Now,
	}
}

func (r *Recorder) HandleEvent(event match.Event) {
	state := event.State
	switch event.Kind {
	case match.EventCreated, match.EventReset:
		r.check(r.store.SaveGame(state), state.ID, event.Kind)

	case match.EventPointScored, match.EventPointUndone:
		r.check(r.store.AppendEntry(Entry{
			GameID:       state.ID,
			Kind:         string(event.Kind),
			Team:         event.Team,
			ScoreA:       state.ScoreA,
			ScoreB:       state.ScoreB,
			Announcement: scoring.Announcement(state),
			Snapshot:     state.Snapshot(),
			CreatedAt:    r.now(),
		}), state.ID, event.Kind)

		if event.GameWon() {
			final := fmt.Sprintf("%d-%d", state.ScoreA, state.ScoreB)
			r.check(r.store.FinishGame(state.ID, state.GameWinner, final, r.now()), state.ID, event.Kind)
		}
		if event.Kind == match.EventPointUndone && event.Previous.GameWinner != scoring.TeamNone {
			r.check(r.store.ReopenGame(state.ID), state.ID, event.Kind)
		}

	default:
		log.Debug("Rally log ignores event", "kind", event.Kind, "gameID", state.ID)
	}
}

func (r *Recorder) check(err error, gameID string, kind match.EventKind) {
	if err == nil {
		return
	}
	r.metrics.IncRallyLogErrors()
	log.Error("Failed to write rally log", "error", err, "gameID", gameID, "event", kind)
}
