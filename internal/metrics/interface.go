package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRalliesPlayed()
	IncPointsScored()
	IncSideOuts()
	IncUndos()
	IncGamesStarted()
	IncGamesCompleted()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	IncRallyLogErrors()
	SetStartupTime(duration float64)
}
