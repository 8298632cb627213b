package server

import (
	"net/http"

	"github.com/aditya10866/personal-pomo/internal/model"
)

func (s *Server) timerState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.timer.Snapshot())
}

// configureTimer sets task name, subject and session length in one call.
// Omitted fields keep their current value.
func (s *Server) configureTimer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TaskName *string        `json:"taskName"`
		Subject  *model.Subject `json:"subject"`
		Minutes  *int           `json:"minutes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, err, "failed to configure timer")
		return
	}

	if body.Minutes != nil {
		if err := s.timer.SetLength(*body.Minutes); err != nil {
			s.respondError(w, err, "failed to configure timer")
			return
		}
	}
	if body.TaskName != nil {
		if err := s.timer.SetTask(*body.TaskName); err != nil {
			s.respondError(w, err, "failed to configure timer")
			return
		}
	}
	if body.Subject != nil {
		if err := s.timer.SetSubject(*body.Subject); err != nil {
			s.respondError(w, err, "failed to configure timer")
			return
		}
	}
	respondJSON(w, http.StatusOK, s.timer.Snapshot())
}

func (s *Server) startTimer(w http.ResponseWriter, r *http.Request) {
	if err := s.timer.Start(); err != nil {
		s.respondError(w, err, "failed to start timer")
		return
	}
	respondJSON(w, http.StatusOK, s.timer.Snapshot())
}

func (s *Server) pauseTimer(w http.ResponseWriter, r *http.Request) {
	if err := s.timer.Pause(); err != nil {
		s.respondError(w, err, "failed to pause timer")
		return
	}
	respondJSON(w, http.StatusOK, s.timer.Snapshot())
}

func (s *Server) resetTimer(w http.ResponseWriter, r *http.Request) {
	s.timer.Reset()
	respondJSON(w, http.StatusOK, s.timer.Snapshot())
}

func (s *Server) completeTimer(w http.ResponseWriter, r *http.Request) {
	if err := s.timer.Complete(); err != nil {
		s.respondError(w, err, "failed to complete timer")
		return
	}
	respondJSON(w, http.StatusOK, s.timer.Snapshot())
}
