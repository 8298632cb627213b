package model

import "time"

// Habit is a named daily habit. Deleting a habit removes its entries too.
type Habit struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Emoji     string       `gorm:"not null" json:"emoji"`
	CreatedAt time.Time    `json:"createdAt"`
	Entries   []HabitEntry `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"entries"`
}

func (Habit) TableName() string { return "habits" }

// HabitEntry marks whether a habit was completed on a given date.
// At most one entry exists per (habit, date).
type HabitEntry struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	HabitID   uint   `gorm:"not null;uniqueIndex:idx_habit_entry_date" json:"habitId"`
	Date      string `gorm:"not null;uniqueIndex:idx_habit_entry_date" json:"date"` // YYYY-MM-DD
	Completed bool   `gorm:"not null;default:false" json:"completed"`
}

func (HabitEntry) TableName() string { return "habit_entries" }
