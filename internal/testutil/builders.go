package testutil

import (
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/models"
	"github.com/akyairhashvil/deen/internal/prayer"
)

// StateBuilder provides fluent API for creating test app state.
type StateBuilder struct {
	state models.AppState
}

// NewState starts from the estimated times for at, nothing completed.
func NewState(at time.Time) *StateBuilder {
	return &StateBuilder{
		state: models.AppState{
			Prayers:     prayer.Seasonal{}.Estimate(at),
			TasbeehGoal: config.DefaultTasbeehGoal,
			LastUpdated: at,
		},
	}
}

func (b *StateBuilder) WithCompleted(names ...models.PrayerName) *StateBuilder {
	for _, name := range names {
		for i := range b.state.Prayers {
			if b.state.Prayers[i].Name == name {
				b.state.Prayers[i].Completed = true
			}
		}
	}
	return b
}

func (b *StateBuilder) WithNext(name models.PrayerName) *StateBuilder {
	for i := range b.state.Prayers {
		b.state.Prayers[i].IsNext = b.state.Prayers[i].Name == name
	}
	return b
}

func (b *StateBuilder) WithTasbeeh(count, goal int) *StateBuilder {
	b.state.TasbeehCount = count
	b.state.TasbeehGoal = goal
	return b
}

func (b *StateBuilder) WithVerse(idx int) *StateBuilder {
	b.state.DailyVerseIndex = idx
	return b
}

func (b *StateBuilder) Build() models.AppState {
	return b.state.Clone()
}

// HabitBuilder provides fluent API for creating test habits.
type HabitBuilder struct {
	habit models.Habit
}

func NewHabit(id, name string) *HabitBuilder {
	return &HabitBuilder{
		habit: models.Habit{
			ID:       id,
			Name:     name,
			Category: models.CategorySpiritual,
		},
	}
}

func (b *HabitBuilder) WithCategory(c models.HabitCategory) *HabitBuilder {
	b.habit.Category = c
	return b
}

func (b *HabitBuilder) WithStreak(n int) *HabitBuilder {
	b.habit.Streak = n
	return b
}

func (b *HabitBuilder) Completed() *HabitBuilder {
	b.habit.Completed = true
	return b
}

func (b *HabitBuilder) AtPosition(p int) *HabitBuilder {
	b.habit.Position = p
	return b
}

func (b *HabitBuilder) Build() models.Habit {
	return b.habit
}
