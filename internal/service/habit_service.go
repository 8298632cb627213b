package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aditya10866/personal-pomo/internal/apperr"
	"github.com/aditya10866/personal-pomo/internal/model"
	"github.com/aditya10866/personal-pomo/internal/repository"
)

// HabitInput represents data required to create a habit.
type HabitInput struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// HabitService wraps habit-related business logic.
type HabitService struct {
	repo *repository.HabitRepository
}

func NewHabitService(repo *repository.HabitRepository) *HabitService {
	return &HabitService{repo: repo}
}

func (s *HabitService) Create(ctx context.Context, input HabitInput) (*model.Habit, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperr.Validationf("name is required")
	}
	if input.Emoji == "" {
		input.Emoji = "✅"
	}

	habit := model.Habit{Name: input.Name, Emoji: input.Emoji, Entries: []model.HabitEntry{}}
	if err := s.repo.Create(ctx, &habit); err != nil {
		return nil, apperr.Storage("create habit", err)
	}
	return &habit, nil
}

// List returns every habit with its entries.
func (s *HabitService) List(ctx context.Context) ([]model.Habit, error) {
	habits, err := s.repo.ListWithEntries(ctx)
	if err != nil {
		return nil, apperr.Storage("list habits", err)
	}
	// Preload leaves nil slices for habits without entries; the client
	// expects an empty array.
	for i := range habits {
		if habits[i].Entries == nil {
			habits[i].Entries = []model.HabitEntry{}
		}
	}
	return habits, nil
}

// Toggle flips the completion mark of the habit for the given ISO date.
func (s *HabitService) Toggle(ctx context.Context, habitID uint, date string) (*model.HabitEntry, error) {
	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		parsed, err = time.Parse(model.DateLayout, date)
	}
	if err != nil {
		return nil, apperr.Validationf("invalid date %q", date)
	}

	entry, err := s.repo.ToggleEntry(ctx, habitID, parsed.Format(model.DateLayout))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, apperr.Storage("toggle habit entry", err)
	}
	return entry, nil
}

// Delete removes the habit and all of its entries.
func (s *HabitService) Delete(ctx context.Context, habitID uint) error {
	if err := s.repo.Delete(ctx, habitID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return apperr.Storage("delete habit", err)
	}
	return nil
}
