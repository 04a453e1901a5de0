package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/akyairhashvil/deen/internal/models"
)

const exportVersion = 1

type ExportHabit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
}

type ExportDay struct {
	Date             string `json:"date"`
	PrayersCompleted int    `json:"prayers_completed"`
	TasbeehCount     int    `json:"tasbeeh_count"`
	TasbeehGoal      int    `json:"tasbeeh_goal"`
	HabitsCompleted  int    `json:"habits_completed"`
	HabitsTotal      int    `json:"habits_total"`
}

// ExportData is a portable snapshot of everything in the database.
type ExportData struct {
	Version    int              `json:"version"`
	ExportedAt string           `json:"exported_at"`
	State      *models.AppState `json:"state,omitempty"`
	Habits     []ExportHabit    `json:"habits"`
	Days       []ExportDay      `json:"days"`
}

// ExportJSON serialises state, habits and up to historyDays summaries.
func (d *Database) ExportJSON(ctx context.Context, stateKey string, historyDays int) ([]byte, error) {
	out := ExportData{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Habits:     []ExportHabit{},
		Days:       []ExportDay{},
	}
	state, ok, err := d.LoadState(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if ok {
		out.State = &state
	}
	habits, err := d.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range habits {
		out.Habits = append(out.Habits, ExportHabit{
			ID:        h.ID,
			Name:      h.Name,
			Icon:      h.Icon,
			Category:  string(h.Category),
			Completed: h.Completed,
			Streak:    h.Streak,
		})
	}
	days, err := d.RecentDays(ctx, historyDays)
	if err != nil {
		return nil, err
	}
	for _, l := range days {
		out.Days = append(out.Days, ExportDay{
			Date:             l.Date,
			PrayersCompleted: l.PrayersCompleted,
			TasbeehCount:     l.TasbeehCount,
			TasbeehGoal:      l.TasbeehGoal,
			HabitsCompleted:  l.HabitsCompleted,
			HabitsTotal:      l.HabitsTotal,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, wrapErr(EntityDatabase, "export", "", err)
	}
	return data, nil
}
