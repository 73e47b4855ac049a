package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	RalliesPlayed      prometheus.Counter
	PointsScored       prometheus.Counter
	SideOuts           prometheus.Counter
	Undos              prometheus.Counter
	GamesStarted       prometheus.Counter
	GamesCompleted     prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	RallyLogErrors     prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
