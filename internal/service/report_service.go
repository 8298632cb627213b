package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/aditya10866/personal-pomo/internal/model"
	"github.com/aditya10866/personal-pomo/internal/repository"
	"github.com/aditya10866/personal-pomo/internal/stats"
)

// ReportService builds human-readable summaries for the daily notification.
type ReportService struct {
	sessionRepo *repository.SessionRepository
	habitRepo   *repository.HabitRepository
}

func NewReportService(sessionRepo *repository.SessionRepository, habitRepo *repository.HabitRepository) *ReportService {
	return &ReportService{sessionRepo: sessionRepo, habitRepo: habitRepo}
}

// DailySummary renders today's study time per subject and habit completion
// as Telegram HTML.
func (s *ReportService) DailySummary(ctx context.Context, now time.Time) (string, error) {
	today := now.Format(model.DateLayout)

	totals, err := s.sessionRepo.TotalsBetween(ctx, today, today)
	if err != nil {
		return "", err
	}

	habits, err := s.habitRepo.ListWithEntries(ctx)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("📊 <b>Daily report</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("02.01.2006")))

	builder.WriteString("⏱ <b>Focus time</b>\n")
	if len(totals) == 0 {
		builder.WriteString("— no sessions recorded today\n")
	} else {
		dayTotal := 0
		for _, t := range totals {
			dayTotal += t.TotalDuration
			builder.WriteString(fmt.Sprintf("• %s — %s\n", html.EscapeString(t.Subject.String()), stats.FormatDuration(t.TotalDuration)))
		}
		builder.WriteString(fmt.Sprintf("Σ %s\n", stats.FormatDuration(dayTotal)))
	}

	builder.WriteString("\n✅ <b>Habits</b>\n")
	if len(habits) == 0 {
		builder.WriteString("— no habits tracked\n")
	} else {
		for _, habit := range habits {
			mark := "▫️"
			if habitDoneOn(habit, today) {
				mark = "✅"
			}
			builder.WriteString(fmt.Sprintf("%s %s %s\n", mark, habit.Emoji, html.EscapeString(habit.Name)))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func habitDoneOn(habit model.Habit, date string) bool {
	for _, entry := range habit.Entries {
		if entry.Date == date && entry.Completed {
			return true
		}
	}
	return false
}
