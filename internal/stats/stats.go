// Package stats holds pure aggregation helpers over work sessions.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/aditya10866/personal-pomo/internal/model"
)

// FormatDuration renders a second count as "1h 2m 3s", dropping the hours
// component below one hour. Negative input is clamped to zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%dm %ds", minutes, secs)
}

// TotalForToday sums the durations of sessions whose timestamp falls on or
// after local midnight of now's day.
func TotalForToday(sessions []model.WorkSession, now time.Time) int {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	total := 0
	for _, s := range sessions {
		if !s.Timestamp.Before(midnight) {
			total += s.Duration
		}
	}
	return total
}

// GroupByMonth partitions sessions by the calendar month of their timestamp,
// keyed "2006-01". Relative order within each group is preserved.
func GroupByMonth(sessions []model.WorkSession) map[string][]model.WorkSession {
	groups := make(map[string][]model.WorkSession)
	for _, s := range sessions {
		key := s.Timestamp.Format("2006-01")
		groups[key] = append(groups[key], s)
	}
	return groups
}

// MonthKeysDescending returns the group keys newest month first, the order
// the history view displays them in.
func MonthKeysDescending(groups map[string][]model.WorkSession) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
