// Package server exposes the HTTP JSON API.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aditya10866/personal-pomo/internal/service"
	"github.com/aditya10866/personal-pomo/internal/timer"
)

// Server wires the HTTP surface over the services and the timer.
type Server struct {
	server   *http.Server
	db       *gorm.DB
	sessions *service.SessionService
	habits   *service.HabitService
	timer    *timer.Timer
	logger   *zap.Logger
}

// New builds the server with all routes registered.
func New(addr string, db *gorm.DB, sessions *service.SessionService, habits *service.HabitService, tm *timer.Timer, logger *zap.Logger) *Server {
	s := &Server{
		db:       db,
		sessions: sessions,
		habits:   habits,
		timer:    tm,
		logger:   logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/pomodoro-sessions", s.listSessions)
	mux.HandleFunc("POST /api/pomodoro-sessions", s.createSession)
	mux.HandleFunc("GET /api/time-tracking/monthly", s.monthlyTracking)

	mux.HandleFunc("GET /api/habits", s.listHabits)
	mux.HandleFunc("POST /api/habits", s.createHabit)
	mux.HandleFunc("POST /api/habits/{id}/toggle", s.toggleHabit)
	mux.HandleFunc("DELETE /api/habits/{id}", s.deleteHabit)

	mux.HandleFunc("GET /api/timer", s.timerState)
	mux.HandleFunc("POST /api/timer/configure", s.configureTimer)
	mux.HandleFunc("POST /api/timer/start", s.startTimer)
	mux.HandleFunc("POST /api/timer/pause", s.pauseTimer)
	mux.HandleFunc("POST /api/timer/reset", s.resetTimer)
	mux.HandleFunc("POST /api/timer/complete", s.completeTimer)

	mux.HandleFunc("GET /healthz", s.healthz)

	handler := s.withRecovery(s.withRequestLog(mux))

	s.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start serves until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("stopping http server")
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		s.logger.Error("health check failed", zap.Error(err))
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
