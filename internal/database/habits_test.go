package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/deen/internal/models"
)

func TestHabitsSaveAndList(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	habits := []models.Habit{
		{ID: "b", Name: "Exercise", Icon: "💪", Category: models.CategoryHealth, Streak: 4, Position: 1},
		{ID: "a", Name: "Quran Reading", Icon: "📖", Category: models.CategorySpiritual, Completed: true, Streak: 5, Position: 0},
	}
	if err := db.SaveHabits(ctx, habits); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}
	got, err := db.ListHabits(ctx)
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected habits ordered by position, got %+v", got)
	}
	if !got[0].Completed || got[0].Streak != 5 || got[1].Category != models.CategoryHealth {
		t.Fatalf("fields not preserved: %+v", got)
	}

	habits[1].Completed = false
	habits[1].Streak = 4
	if err := db.SaveHabits(ctx, habits); err != nil {
		t.Fatalf("SaveHabits update failed: %v", err)
	}
	got, _ = db.ListHabits(ctx)
	if len(got) != 2 || got[0].Completed || got[0].Streak != 4 {
		t.Fatalf("upsert did not update: %+v", got)
	}
}

func TestDeleteHabit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.SaveHabits(ctx, []models.Habit{{ID: "x", Name: "Walk"}}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}
	if err := db.DeleteHabit(ctx, "x"); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if err := db.DeleteHabit(ctx, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestRecordDayUpsertsAndOrders(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	logs := []models.DayLog{
		{Date: "2024-03-20", PrayersCompleted: 3, TasbeehCount: 99, TasbeehGoal: 300, HabitsCompleted: 2, HabitsTotal: 7},
		{Date: "2024-03-21", PrayersCompleted: 5, TasbeehCount: 300, TasbeehGoal: 300, HabitsCompleted: 7, HabitsTotal: 7},
	}
	for _, l := range logs {
		if err := db.RecordDay(ctx, l); err != nil {
			t.Fatalf("RecordDay failed: %v", err)
		}
	}
	logs[0].PrayersCompleted = 4
	logs[0].RecordedAt = time.Date(2024, time.March, 21, 0, 0, 1, 0, time.UTC)
	if err := db.RecordDay(ctx, logs[0]); err != nil {
		t.Fatalf("RecordDay upsert failed: %v", err)
	}

	got, err := db.RecentDays(ctx, 10)
	if err != nil {
		t.Fatalf("RecentDays failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	if got[0].Date != "2024-03-21" || got[1].Date != "2024-03-20" {
		t.Fatalf("expected newest first, got %s, %s", got[0].Date, got[1].Date)
	}
	if got[1].PrayersCompleted != 4 {
		t.Fatalf("upsert lost update: %+v", got[1])
	}
	if !got[1].RecordedAt.Equal(logs[0].RecordedAt) {
		t.Fatalf("RecordedAt = %v", got[1].RecordedAt)
	}

	limited, err := db.RecentDays(ctx, 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("RecentDays(1) = %d, %v", len(limited), err)
	}
}
