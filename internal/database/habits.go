package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/deen/internal/models"
	"github.com/akyairhashvil/deen/internal/util"
)

// ListHabits returns all habits ordered by position.
func (d *Database) ListHabits(ctx context.Context) ([]models.Habit, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, name, icon, category, completed, streak, position
		FROM habits
		ORDER BY position ASC, name ASC`)
	if err != nil {
		return nil, wrapErr(EntityHabit, "list", "", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var icon, category sql.NullString
		var completed int
		if err := rows.Scan(&h.ID, &h.Name, &icon, &category, &completed, &h.Streak, &h.Position); err != nil {
			return nil, wrapErr(EntityHabit, "list", "", err)
		}
		h.Icon = icon.String
		h.Category = models.HabitCategory(category.String)
		if h.Category == "" {
			h.Category = models.CategorySpiritual
		}
		h.Completed = util.IntToBool(completed)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityHabit, "list", "", err)
	}
	return habits, nil
}

// SaveHabits upserts every habit in one transaction.
func (d *Database) SaveHabits(ctx context.Context, habits []models.Habit) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	return d.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO habits (id, name, icon, category, completed, streak, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				icon = excluded.icon,
				category = excluded.category,
				completed = excluded.completed,
				streak = excluded.streak,
				position = excluded.position`)
		if err != nil {
			return wrapErr(EntityHabit, "save", "", err)
		}
		defer stmt.Close()
		for _, h := range habits {
			if _, err := stmt.ExecContext(ctx, h.ID, h.Name, h.Icon, string(h.Category), util.BoolToInt(h.Completed), h.Streak, h.Position); err != nil {
				return wrapErr(EntityHabit, "save", h.ID, err)
			}
		}
		return nil
	})
}

// DeleteHabit removes a habit by id.
func (d *Database) DeleteHabit(ctx context.Context, id string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return wrapErr(EntityHabit, "delete", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wrapErr(EntityHabit, "delete", id, ErrNotFound)
	}
	return nil
}
