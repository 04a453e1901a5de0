package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	s := New(db, WithRand(firstIndex))
	require.NoError(t, s.Load(ctx, march15))
	require.NoError(t, s.Increment(ctx))
	require.NoError(t, s.ToggleDone(ctx, "Fajr"))
	require.NoError(t, s.SetGoal(ctx, 99))
	habitID := s.Snapshot().Habits[0].ID
	require.NoError(t, s.ToggleHabit(ctx, habitID))
	want := s.Snapshot()

	reopened := New(db, WithRand(firstIndex))
	require.NoError(t, reopened.Load(ctx, march15.Add(time.Hour)))
	got := reopened.Snapshot()

	assert.Equal(t, want.State.TasbeehCount, got.State.TasbeehCount)
	assert.Equal(t, want.State.TasbeehGoal, got.State.TasbeehGoal)
	assert.Equal(t, want.State.Prayers, got.State.Prayers)
	assert.Equal(t, want.State.DailyVerseIndex, got.State.DailyVerseIndex)
	assert.True(t, want.State.LastUpdated.Equal(got.State.LastUpdated))
	assert.Equal(t, want.Habits, got.Habits)
}

func TestRolloverRecordsHistory(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	s := New(db, WithRand(firstIndex))
	require.NoError(t, s.Load(ctx, march15))
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Increment(ctx))
	}
	require.NoError(t, s.Tick(ctx, march15.AddDate(0, 0, 1)))
	require.NoError(t, s.Tick(ctx, march15.AddDate(0, 0, 1).Add(time.Minute)))

	days, err := db.RecentDays(ctx, config.ReportDays)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-15", days[0].Date)
	assert.Equal(t, 5, days[0].TasbeehCount)
	assert.Equal(t, 7, days[0].HabitsTotal)
}

func TestCorruptStateFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	s := New(db, WithRand(firstIndex))
	require.NoError(t, s.Load(ctx, march15))
	require.NoError(t, s.SetTasbeehCount(ctx, 120))

	_, err := db.DB.ExecContext(ctx, "UPDATE app_state SET checksum = 'bad' WHERE key = ?", config.StateKey)
	require.NoError(t, err)

	again := New(db, WithRand(firstIndex))
	require.NoError(t, again.Load(ctx, march15))
	assert.Equal(t, 0, again.Snapshot().State.TasbeehCount)

	_, ok, err := db.LoadState(ctx, config.StateKey)
	require.NoError(t, err)
	assert.True(t, ok, "defaults are written back")
}
