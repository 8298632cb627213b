package server

import (
	"net/http"
	"time"

	"github.com/aditya10866/personal-pomo/internal/service"
)

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessions.List(r.Context())
	if err != nil {
		s.respondError(w, err, "failed to fetch pomodoro sessions")
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var input service.SessionInput
	if err := decodeJSON(r, &input); err != nil {
		s.respondError(w, err, "failed to create pomodoro session")
		return
	}

	session, err := s.sessions.Create(r.Context(), input)
	if err != nil {
		s.respondError(w, err, "failed to create pomodoro session")
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

// monthlyTracking returns the daily totals for the month given by the
// optional ?month=ISO-date query parameter, defaulting to the current one.
func (s *Server) monthlyTracking(w http.ResponseWriter, r *http.Request) {
	month := time.Now()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := parseISODate(raw)
		if err != nil {
			s.respondError(w, err, "failed to fetch monthly summary")
			return
		}
		month = parsed
	}

	totals, err := s.sessions.MonthlyTotals(r.Context(), month)
	if err != nil {
		s.respondError(w, err, "failed to fetch monthly summary")
		return
	}
	respondJSON(w, http.StatusOK, totals)
}
