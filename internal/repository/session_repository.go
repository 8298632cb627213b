package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aditya10866/personal-pomo/internal/model"
)

// SessionRepository handles work sessions and their daily aggregate rows.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts the session and bumps the (date, subject) daily total in
// a single transaction, so the cached aggregate never drifts from the raw
// rows. The increment is pushed down to the database rather than read back
// and rewritten.
func (r *SessionRepository) Create(ctx context.Context, session *model.WorkSession) error {
	date := session.Timestamp.Format(model.DateLayout)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("create session: %w", err)
		}

		total := model.DailySubjectTotal{
			Date:          date,
			Subject:       session.Subject,
			TotalDuration: session.Duration,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}, {Name: "subject"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_duration": gorm.Expr("total_duration + ?", session.Duration),
			}),
		}).Create(&total).Error; err != nil {
			return fmt.Errorf("upsert daily total: %w", err)
		}

		return nil
	})
	return err
}

// List returns every session, most recent first.
func (r *SessionRepository) List(ctx context.Context) ([]model.WorkSession, error) {
	sessions := make([]model.WorkSession, 0)
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// TotalsBetween returns daily totals with start <= date <= end, both
// YYYY-MM-DD strings (lexicographic order matches calendar order).
func (r *SessionRepository) TotalsBetween(ctx context.Context, start, end string) ([]model.DailySubjectTotal, error) {
	totals := make([]model.DailySubjectTotal, 0)
	if err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC, subject ASC").
		Find(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

// RecomputeTotals rebuilds daily_time_tracking from the raw session rows.
// Safety net for aggregates written before the transactional upsert existed.
func (r *SessionRepository) RecomputeTotals(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.DailySubjectTotal{}).Error; err != nil {
			return fmt.Errorf("clear daily totals: %w", err)
		}

		// Timestamps are stored as ISO text with their zone offset; the
		// leading 10 bytes are the date in that zone, matching what
		// Create wrote. date() would renormalize to UTC.
		var totals []model.DailySubjectTotal
		if err := tx.Model(&model.WorkSession{}).
			Select("substr(timestamp, 1, 10) AS date, subject, SUM(duration) AS total_duration").
			Group("substr(timestamp, 1, 10), subject").
			Scan(&totals).Error; err != nil {
			return fmt.Errorf("aggregate sessions: %w", err)
		}

		if len(totals) == 0 {
			return nil
		}
		if err := tx.Create(&totals).Error; err != nil {
			return fmt.Errorf("write daily totals: %w", err)
		}
		return nil
	})
}
