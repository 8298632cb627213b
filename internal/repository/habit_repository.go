package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aditya10866/personal-pomo/internal/model"
)

// ErrNotFound is returned when a habit or entry does not exist.
var ErrNotFound = errors.New("not found")

// HabitRepository handles CRUD for habits and their daily entries.
type HabitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

func (r *HabitRepository) Create(ctx context.Context, habit *model.Habit) error {
	if err := r.db.WithContext(ctx).Create(habit).Error; err != nil {
		return fmt.Errorf("create habit: %w", err)
	}
	return nil
}

// ListWithEntries returns all habits with their entries preloaded, oldest
// habit first.
func (r *HabitRepository) ListWithEntries(ctx context.Context) ([]model.Habit, error) {
	habits := make([]model.Habit, 0)
	if err := r.db.WithContext(ctx).
		Preload("Entries").
		Order("created_at ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

// ToggleEntry flips the completion mark for (habitID, date), creating the
// entry as completed when none exists yet. Fails with ErrNotFound for an
// unknown habit.
func (r *HabitRepository) ToggleEntry(ctx context.Context, habitID uint, date string) (*model.HabitEntry, error) {
	var entry model.HabitEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var habit model.Habit
		if err := tx.First(&habit, habitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("habit %d: %w", habitID, ErrNotFound)
			}
			return fmt.Errorf("find habit: %w", err)
		}

		err := tx.Where("habit_id = ? AND date = ?", habitID, date).First(&entry).Error
		switch {
		case err == nil:
			entry.Completed = !entry.Completed
			if err := tx.Save(&entry).Error; err != nil {
				return fmt.Errorf("toggle entry: %w", err)
			}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry = model.HabitEntry{HabitID: habitID, Date: date, Completed: true}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("create entry: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("find entry: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes a habit and all of its entries.
func (r *HabitRepository) Delete(ctx context.Context, habitID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Entries go first; databases migrated before the FK constraint
		// existed have no cascade to rely on.
		if err := tx.Where("habit_id = ?", habitID).Delete(&model.HabitEntry{}).Error; err != nil {
			return fmt.Errorf("delete habit entries: %w", err)
		}
		res := tx.Delete(&model.Habit{}, habitID)
		if res.Error != nil {
			return fmt.Errorf("delete habit: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("habit %d: %w", habitID, ErrNotFound)
		}
		return nil
	})
}
