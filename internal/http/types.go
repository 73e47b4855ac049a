package http

import (
	"net/http"

	"github.com/mauv0809/pickle-tracker/internal/match"
	"github.com/mauv0809/pickle-tracker/internal/rallylog"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

type Server struct {
	Controller     match.MatchController
	RallyLog       rallylog.Store
	MetricsHandler http.Handler
	Router         *http.ServeMux
}

// matchResponse is the state plus the read-only views a scoreboard renders.
type matchResponse struct {
	scoring.MatchState
	Announcement  string `json:"announcement"`
	ServerName    string `json:"server_name"`
	SideSwitchDue bool   `json:"side_switch_due"`
}

type rallyLogResponse struct {
	Game    *rallylog.Game   `json:"game"`
	Entries []rallylog.Entry `json:"entries"`
}

type errorResponse struct {
	Error string `json:"error"`
}
