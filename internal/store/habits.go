package store

import (
	"context"
	"strings"

	"github.com/akyairhashvil/deen/internal/models"
	"github.com/google/uuid"
)

var seedHabits = []struct {
	name     string
	icon     string
	category models.HabitCategory
}{
	{"Fajr Namaz", "🌅", models.CategorySpiritual},
	{"Quran Reading", "📖", models.CategorySpiritual},
	{"Morning Dhikr", "🤲", models.CategorySpiritual},
	{"Exercise", "💪", models.CategoryHealth},
	{"Learning (30min)", "📚", models.CategoryLearning},
	{"Evening Dhikr", "🌙", models.CategorySpiritual},
	{"Witr Namaz", "🙏", models.CategorySpiritual},
}

func defaultHabits() []models.Habit {
	habits := make([]models.Habit, 0, len(seedHabits))
	for i, h := range seedHabits {
		habits = append(habits, models.Habit{
			ID:       uuid.NewString(),
			Name:     h.name,
			Icon:     h.icon,
			Category: h.category,
			Position: i,
		})
	}
	return habits
}

// resetHabits returns habits with today's ticks cleared. A habit left undone
// breaks its streak.
func resetHabits(habits []models.Habit) []models.Habit {
	out := make([]models.Habit, len(habits))
	for i, h := range habits {
		if !h.Completed {
			h.Streak = 0
		}
		h.Completed = false
		out[i] = h
	}
	return out
}

// ToggleHabit flips a habit. Completing adds a streak day; undoing removes it.
func (s *Store) ToggleHabit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	idx := s.habitIndex(id)
	if idx < 0 {
		return &NotFoundError{Resource: "habit", Name: id}
	}
	h := s.habits[idx]
	h.Completed = !h.Completed
	if h.Completed {
		h.Streak++
	} else if h.Streak > 0 {
		h.Streak--
	}
	if err := s.repo.SaveHabits(ctx, []models.Habit{h}); err != nil {
		return err
	}
	s.habits[idx] = h
	if h.Completed {
		s.notify(models.NotifyHabitCompleted, h.Name, h.Streak)
		if s.allHabitsDone() {
			s.notify(models.NotifyAllHabitsCompleted, "", len(s.habits))
		}
	}
	return nil
}

// AddHabit appends a new habit at the end of the list.
func (s *Store) AddHabit(ctx context.Context, name, icon string, category models.HabitCategory) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return models.Habit{}, ErrNotLoaded
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrEmptyHabitName
	}
	if category == "" {
		category = models.CategorySpiritual
	}
	pos := 0
	for _, h := range s.habits {
		if h.Position >= pos {
			pos = h.Position + 1
		}
	}
	h := models.Habit{
		ID:       uuid.NewString(),
		Name:     name,
		Icon:     icon,
		Category: category,
		Position: pos,
	}
	if err := s.repo.SaveHabits(ctx, []models.Habit{h}); err != nil {
		return models.Habit{}, err
	}
	s.habits = append(s.habits, h)
	return h, nil
}

// RemoveHabit deletes a habit by id.
func (s *Store) RemoveHabit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	idx := s.habitIndex(id)
	if idx < 0 {
		return &NotFoundError{Resource: "habit", Name: id}
	}
	if err := s.repo.DeleteHabit(ctx, id); err != nil {
		return err
	}
	rest := make([]models.Habit, 0, len(s.habits)-1)
	rest = append(rest, s.habits[:idx]...)
	s.habits = append(rest, s.habits[idx+1:]...)
	return nil
}

func (s *Store) habitIndex(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) allHabitsDone() bool {
	if len(s.habits) == 0 {
		return false
	}
	for _, h := range s.habits {
		if !h.Completed {
			return false
		}
	}
	return true
}
