package database

import (
	"context"

	"github.com/akyairhashvil/deen/internal/models"
)

// StateRepository persists the singleton daily state blob.
type StateRepository interface {
	LoadState(ctx context.Context, key string) (models.AppState, bool, error)
	SaveState(ctx context.Context, key string, state models.AppState) error
}

// HabitRepository persists the habit list.
type HabitRepository interface {
	ListHabits(ctx context.Context) ([]models.Habit, error)
	SaveHabits(ctx context.Context, habits []models.Habit) error
	DeleteHabit(ctx context.Context, id string) error
}

// HistoryRepository persists per-day summaries.
type HistoryRepository interface {
	RecordDay(ctx context.Context, log models.DayLog) error
	RecentDays(ctx context.Context, limit int) ([]models.DayLog, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	StateRepository
	HabitRepository
	HistoryRepository
}

var _ Repository = (*Database)(nil)
