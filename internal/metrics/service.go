package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RalliesPlayed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_rallies_played_total",
			Help: "The total number of rallies recorded, including those that did not score.",
		}),
		PointsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_points_scored_total",
			Help: "The total number of rallies that changed the score.",
		}),
		SideOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_side_outs_total",
			Help: "The total number of times the serve passed to the other team.",
		}),
		Undos: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_undos_total",
			Help: "The total number of rallies undone.",
		}),
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_games_started_total",
			Help: "The total number of games created or reset.",
		}),
		GamesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_games_completed_total",
			Help: "The total number of games that reached a winner.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		RallyLogErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleball_rally_log_errors_total",
			Help: "The total number of rally log writes that failed.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pickleball_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RalliesPlayed,
		s.PointsScored,
		s.SideOuts,
		s.Undos,
		s.GamesStarted,
		s.GamesCompleted,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.RallyLogErrors,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRalliesPlayed() {
	s.RalliesPlayed.Inc()
}

func (s *Service) IncPointsScored() {
	s.PointsScored.Inc()
}

func (s *Service) IncSideOuts() {
	s.SideOuts.Inc()
}

func (s *Service) IncUndos() {
	s.Undos.Inc()
}

func (s *Service) IncGamesStarted() {
	s.GamesStarted.Inc()
}

func (s *Service) IncGamesCompleted() {
	s.GamesCompleted.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) IncRallyLogErrors() {
	s.RallyLogErrors.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
