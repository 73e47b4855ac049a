package match

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/pickle-tracker/internal/metrics"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

var _ MatchController = (*Controller)(nil)

// New creates a Controller with no game. Call Create before scoring.
func New(metrics metrics.Metrics, subscribers ...Subscriber) *Controller {
	c := &Controller{
		metrics: metrics,
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, s := range subscribers {
		c.Subscribe(s)
	}
	return c
}

// Create starts a new game from cfg. An invalid config leaves the current game untouched.
func (c *Controller) Create(cfg scoring.MatchConfig) (scoring.MatchState, error) {
	return c.start(cfg, EventCreated)
}

// Reset discards the current game and starts a fresh one from cfg.
func (c *Controller) Reset(cfg scoring.MatchConfig) (scoring.MatchState, error) {
	return c.start(cfg, EventReset)
}

func (c *Controller) start(cfg scoring.MatchConfig, kind EventKind) (scoring.MatchState, error) {
	state, err := scoring.NewMatchState(cfg)
	if err != nil {
		log.Warn("Rejected match configuration", "error", err, "format", cfg.Format, "mode", cfg.ScoringMode, "target", cfg.TargetScore)
		return scoring.MatchState{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	state.ID = c.newID()
	state.CreatedAt = c.now()
	previous := c.state
	c.state = state
	c.started = true
	c.metrics.IncGamesStarted()

	log.Info("Game started", "matchID", state.ID, "event", kind, "format", state.Format, "mode", state.ScoringMode, "target", state.TargetScore, "winByTwo", state.WinByTwo)
	c.publish(Event{Kind: kind, Previous: previous, State: state.Clone()})
	return state.Clone(), nil
}

// ScorePoint records that team won the rally and returns the updated state.
// It is a no-op once the game is decided or before a game exists.
func (c *Controller) ScorePoint(team scoring.Team) scoring.MatchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		log.Warn("Ignoring rally, no game in progress", "team", team)
		return scoring.MatchState{}
	}

	prev := c.state
	next := scoring.Next(prev, team)
	if len(next.History) == len(prev.History) {
		log.Debug("Rally ignored", "matchID", prev.ID, "team", team, "winner", prev.GameWinner)
		return prev.Clone()
	}
	c.state = next

	c.metrics.IncRalliesPlayed()
	if next.ScoreA != prev.ScoreA || next.ScoreB != prev.ScoreB {
		c.metrics.IncPointsScored()
	}
	if next.ServingTeam != prev.ServingTeam {
		c.metrics.IncSideOuts()
	}

	log.Info("Rally scored", "matchID", next.ID, "team", team, "announcement", scoring.Announcement(next), "server", scoring.ServerDisplayName(next), "position", next.ServerPosition)
	event := Event{Kind: EventPointScored, Team: team, Previous: prev, State: next.Clone()}
	if event.GameWon() {
		c.metrics.IncGamesCompleted()
		log.Info("Game won", "matchID", next.ID, "winner", next.GameWinner, "scoreA", next.ScoreA, "scoreB", next.ScoreB)
	}
	c.publish(event)
	return next.Clone()
}

// UndoLastPoint reverts the most recent rally. It is a no-op when there is nothing to undo.
func (c *Controller) UndoLastPoint() scoring.MatchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return scoring.MatchState{}
	}

	prev := c.state
	if len(prev.History) == 0 {
		log.Debug("Nothing to undo", "matchID", prev.ID)
		return prev.Clone()
	}
	next := scoring.Undo(prev)
	c.state = next
	c.metrics.IncUndos()

	log.Info("Rally undone", "matchID", next.ID, "announcement", scoring.Announcement(next), "remaining", len(next.History))
	c.publish(Event{Kind: EventPointUndone, Previous: prev, State: next.Clone()})
	return next.Clone()
}

// AcknowledgeSideSwitch marks the pending side switch as handled by the caller.
func (c *Controller) AcknowledgeSideSwitch() scoring.MatchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || !scoring.IsSideSwitchDue(c.state) {
		return c.state.Clone()
	}

	prev := c.state
	next := prev.Clone()
	next.SwitchAcknowledgedAt = next.ScoreA + next.ScoreB
	c.state = next

	log.Info("Side switch acknowledged", "matchID", next.ID, "scoreSum", next.SwitchAcknowledgedAt)
	c.publish(Event{Kind: EventSideSwitchAcknowledged, Previous: prev, State: next.Clone()})
	return next.Clone()
}

// State returns a copy of the live game and whether one exists.
func (c *Controller) State() (scoring.MatchState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone(), c.started
}

// Subscribe registers s for future events. The returned func removes it.
func (c *Controller) Subscribe(s Subscriber) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subscribers = append(c.subscribers, subscription{id: id, subscriber: s})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.subscribers {
			if sub.id == id {
				c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

// publish must be called with c.mu held.
func (c *Controller) publish(event Event) {
	for _, sub := range c.subscribers {
		sub.subscriber.HandleEvent(event)
	}
}
