package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aditya10866/personal-pomo/internal/model"
	"github.com/aditya10866/personal-pomo/internal/repository"
)

func TestDailySummary(t *testing.T) {
	db := newTestDB(t)
	sessionRepo := repository.NewSessionRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	svc := NewReportService(sessionRepo, habitRepo)
	ctx := context.Background()

	now := time.Date(2026, time.April, 2, 21, 0, 0, 0, time.Local)
	require.NoError(t, sessionRepo.Create(ctx, &model.WorkSession{
		TaskName: "organic chemistry", Subject: model.SubjectChemistry, Duration: 3661, Timestamp: now,
	}))

	habit := model.Habit{Name: "Read", Emoji: "📚"}
	require.NoError(t, habitRepo.Create(ctx, &habit))
	_, err := habitRepo.ToggleEntry(ctx, habit.ID, now.Format(model.DateLayout))
	require.NoError(t, err)

	skipped := model.Habit{Name: "Run", Emoji: "🏃"}
	require.NoError(t, habitRepo.Create(ctx, &skipped))

	summary, err := svc.DailySummary(ctx, now)
	require.NoError(t, err)

	require.Contains(t, summary, "Chemistry — 1h 1m 1s")
	require.Contains(t, summary, "✅ 📚 Read")
	require.Contains(t, summary, "▫️ 🏃 Run")
	require.Contains(t, summary, "02.04.2026")
}

func TestDailySummaryEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewSessionRepository(db), repository.NewHabitRepository(db))

	summary, err := svc.DailySummary(context.Background(), time.Now())
	require.NoError(t, err)
	require.Contains(t, summary, "no sessions recorded today")
	require.Contains(t, summary, "no habits tracked")
}
