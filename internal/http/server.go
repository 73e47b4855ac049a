package http

import (
	"net/http"

	"github.com/mauv0809/pickle-tracker/internal/match"
	"github.com/mauv0809/pickle-tracker/internal/rallylog"
)

// NewServer wires the routes. rallyLog may be nil when no database is configured.
func NewServer(controller match.MatchController, rallyLog rallylog.Store, metricsHandler http.Handler) *Server {
	server := &Server{
		Controller:     controller,
		RallyLog:       rallyLog,
		MetricsHandler: metricsHandler,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /match", Chain(s.MatchStateHandler(), paramsMiddleware))
	s.Router.Handle("POST /match", Chain(s.StartMatchHandler(), paramsMiddleware))
	s.Router.Handle("POST /match/point", Chain(s.ScorePointHandler(), paramsMiddleware))
	s.Router.Handle("POST /match/undo", Chain(s.UndoHandler(), paramsMiddleware))
	s.Router.Handle("POST /match/side-switch/ack", Chain(s.AcknowledgeSideSwitchHandler(), paramsMiddleware))
	s.Router.Handle("GET /match/log", Chain(s.RallyLogHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
