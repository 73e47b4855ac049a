package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-tracker/internal/rallylog"
	"github.com/mauv0809/pickle-tracker/internal/scoring"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) MatchStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := s.Controller.State()
		if !ok {
			writeError(w, http.StatusConflict, "no game in progress")
			return
		}
		writeJSON(w, http.StatusOK, newMatchResponse(state))
	}
}

// StartMatchHandler creates the first game or replaces the current one.
func (s *Server) StartMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg scoring.MatchConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}

		var (
			state scoring.MatchState
			err   error
		)
		if _, ok := s.Controller.State(); ok {
			state, err = s.Controller.Reset(cfg)
		} else {
			state, err = s.Controller.Create(cfg)
		}
		if errors.Is(err, scoring.ErrInvalidConfiguration) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			log.Error("Failed to start game", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to start game")
			return
		}
		writeJSON(w, http.StatusCreated, newMatchResponse(state))
	}
}

func (s *Server) ScorePointHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := scoring.Team(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("team"))))
		if !team.Valid() {
			writeError(w, http.StatusBadRequest, "team must be A or B")
			return
		}
		if _, ok := s.Controller.State(); !ok {
			writeError(w, http.StatusConflict, "no game in progress")
			return
		}
		writeJSON(w, http.StatusOK, newMatchResponse(s.Controller.ScorePoint(team)))
	}
}

func (s *Server) UndoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.Controller.State(); !ok {
			writeError(w, http.StatusConflict, "no game in progress")
			return
		}
		writeJSON(w, http.StatusOK, newMatchResponse(s.Controller.UndoLastPoint()))
	}
}

func (s *Server) AcknowledgeSideSwitchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.Controller.State(); !ok {
			writeError(w, http.StatusConflict, "no game in progress")
			return
		}
		writeJSON(w, http.StatusOK, newMatchResponse(s.Controller.AcknowledgeSideSwitch()))
	}
}

// RallyLogHandler returns the logged points and undos of the current game.
func (s *Server) RallyLogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.RallyLog == nil {
			writeError(w, http.StatusNotFound, "rally log is disabled")
			return
		}
		state, ok := s.Controller.State()
		if !ok {
			writeError(w, http.StatusConflict, "no game in progress")
			return
		}

		game, err := s.RallyLog.GetGame(state.ID)
		if err != nil {
			log.Error("Failed to get game from rally log", "error", err, "gameID", state.ID)
			writeError(w, http.StatusInternalServerError, "failed to read rally log")
			return
		}
		entries, err := s.RallyLog.GetEntries(state.ID)
		if err != nil {
			log.Error("Failed to get entries from rally log", "error", err, "gameID", state.ID)
			writeError(w, http.StatusInternalServerError, "failed to read rally log")
			return
		}
		if entries == nil {
			entries = []rallylog.Entry{}
		}
		writeJSON(w, http.StatusOK, rallyLogResponse{Game: game, Entries: entries})
	}
}

func newMatchResponse(state scoring.MatchState) matchResponse {
	return matchResponse{
		MatchState:    state,
		Announcement:  scoring.Announcement(state),
		ServerName:    scoring.ServerDisplayName(state),
		SideSwitchDue: scoring.IsSideSwitchDue(state),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
