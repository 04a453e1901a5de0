package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/deen/internal/models"
)

// RecordDay upserts the summary for log.Date.
func (d *Database) RecordDay(ctx context.Context, log models.DayLog) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	recorded := log.RecordedAt
	if recorded.IsZero() {
		recorded = time.Now()
	}
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO days (date, prayers_completed, tasbeeh_count, tasbeeh_goal, habits_completed, habits_total, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			prayers_completed = excluded.prayers_completed,
			tasbeeh_count = excluded.tasbeeh_count,
			tasbeeh_goal = excluded.tasbeeh_goal,
			habits_completed = excluded.habits_completed,
			habits_total = excluded.habits_total,
			recorded_at = excluded.recorded_at`,
		log.Date, log.PrayersCompleted, log.TasbeehCount, log.TasbeehGoal,
		log.HabitsCompleted, log.HabitsTotal, recorded.UTC().Format(time.RFC3339))
	return wrapErr(EntityDay, "record", log.Date, err)
}

// RecentDays returns up to limit summaries, newest first.
func (d *Database) RecentDays(ctx context.Context, limit int) ([]models.DayLog, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 1
	}
	rows, err := d.DB.QueryContext(ctx, `
		SELECT date, prayers_completed, tasbeeh_count, tasbeeh_goal, habits_completed, habits_total, recorded_at
		FROM days
		ORDER BY date DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapErr(EntityDay, "list", "", err)
	}
	defer rows.Close()

	var out []models.DayLog
	for rows.Next() {
		var l models.DayLog
		var recorded string
		if err := rows.Scan(&l.Date, &l.PrayersCompleted, &l.TasbeehCount, &l.TasbeehGoal, &l.HabitsCompleted, &l.HabitsTotal, &recorded); err != nil {
			return nil, wrapErr(EntityDay, "list", "", err)
		}
		if ts, err := time.Parse(time.RFC3339, recorded); err == nil {
			l.RecordedAt = ts
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityDay, "list", "", err)
	}
	return out, nil
}
