package service

import (
	"context"
	"strings"
	"time"

	"github.com/aditya10866/personal-pomo/internal/apperr"
	"github.com/aditya10866/personal-pomo/internal/model"
	"github.com/aditya10866/personal-pomo/internal/repository"
)

// SessionInput represents data required to record a work session.
type SessionInput struct {
	TaskName string        `json:"taskName"`
	Subject  model.Subject `json:"subject"`
	Duration int           `json:"duration"`
}

// SessionService wraps session-related business logic.
type SessionService struct {
	repo *repository.SessionRepository
	now  func() time.Time
}

func NewSessionService(repo *repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo, now: time.Now}
}

// Create validates the input, stamps the session with the current time and
// persists it together with its daily aggregate.
func (s *SessionService) Create(ctx context.Context, input SessionInput) (*model.WorkSession, error) {
	input.TaskName = strings.TrimSpace(input.TaskName)

	if input.TaskName == "" {
		return nil, apperr.Validationf("taskName is required")
	}
	if !input.Subject.Valid() {
		return nil, apperr.Validationf("unknown subject %q", input.Subject)
	}
	if input.Duration < 0 {
		return nil, apperr.Validationf("duration must be >= 0, got %d", input.Duration)
	}

	session := model.WorkSession{
		TaskName:  input.TaskName,
		Subject:   input.Subject,
		Duration:  input.Duration,
		Timestamp: s.now(),
	}
	if err := s.repo.Create(ctx, &session); err != nil {
		return nil, apperr.Storage("create session", err)
	}
	return &session, nil
}

// List returns all recorded sessions, newest first.
func (s *SessionService) List(ctx context.Context) ([]model.WorkSession, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Storage("list sessions", err)
	}
	return sessions, nil
}

// MonthlyTotals returns the daily subject totals for the calendar month
// containing the given date, [startOfMonth, endOfMonth] inclusive.
func (s *SessionService) MonthlyTotals(ctx context.Context, month time.Time) ([]model.DailySubjectTotal, error) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	end := start.AddDate(0, 1, -1)

	totals, err := s.repo.TotalsBetween(ctx, start.Format(model.DateLayout), end.Format(model.DateLayout))
	if err != nil {
		return nil, apperr.Storage("monthly totals", err)
	}
	return totals, nil
}

// ReconcileTotals rebuilds the cached daily totals from raw sessions.
func (s *SessionService) ReconcileTotals(ctx context.Context) error {
	if err := s.repo.RecomputeTotals(ctx); err != nil {
		return apperr.Storage("reconcile totals", err)
	}
	return nil
}
