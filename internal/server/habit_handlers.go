package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aditya10866/personal-pomo/internal/apperr"
	"github.com/aditya10866/personal-pomo/internal/model"
	"github.com/aditya10866/personal-pomo/internal/service"
)

func (s *Server) listHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := s.habits.List(r.Context())
	if err != nil {
		s.respondError(w, err, "failed to fetch habits")
		return
	}
	respondJSON(w, http.StatusOK, habits)
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var input service.HabitInput
	if err := decodeJSON(r, &input); err != nil {
		s.respondError(w, err, "failed to create habit")
		return
	}

	habit, err := s.habits.Create(r.Context(), input)
	if err != nil {
		s.respondError(w, err, "failed to create habit")
		return
	}
	respondJSON(w, http.StatusCreated, habit)
}

func (s *Server) toggleHabit(w http.ResponseWriter, r *http.Request) {
	habitID, err := pathID(r)
	if err != nil {
		s.respondError(w, err, "failed to toggle habit entry")
		return
	}

	var body struct {
		Date string `json:"date"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, err, "failed to toggle habit entry")
		return
	}

	entry, err := s.habits.Toggle(r.Context(), habitID, body.Date)
	if err != nil {
		s.respondError(w, err, "failed to toggle habit entry")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID, err := pathID(r)
	if err != nil {
		s.respondError(w, err, "failed to delete habit")
		return
	}

	if err := s.habits.Delete(r.Context(), habitID); err != nil {
		s.respondError(w, err, "failed to delete habit")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (uint, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.Validationf("invalid id %q", raw)
	}
	return uint(id), nil
}

func parseISODate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, model.DateLayout} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, apperr.Validationf("invalid date %q", raw)
}
