package model

import "time"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// WorkSession is a single completed focus-timer run. Rows are written once
// when a running timer completes and are never updated afterwards.
type WorkSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TaskName  string    `gorm:"not null" json:"taskName"`
	Subject   Subject   `gorm:"not null;index" json:"subject"`
	Duration  int       `gorm:"not null" json:"duration"` // whole seconds
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}

func (WorkSession) TableName() string { return "pomodoro_sessions" }

// DailySubjectTotal caches the summed duration of all work sessions for one
// (date, subject) pair. It must always equal the sum of the matching
// pomodoro_sessions rows; the repository keeps both in one transaction.
type DailySubjectTotal struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Date          string  `gorm:"not null;uniqueIndex:idx_daily_date_subject" json:"date"` // YYYY-MM-DD
	Subject       Subject `gorm:"not null;uniqueIndex:idx_daily_date_subject" json:"subject"`
	TotalDuration int     `gorm:"not null" json:"totalDuration"`
}

func (DailySubjectTotal) TableName() string { return "daily_time_tracking" }
