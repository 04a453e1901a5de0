package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/models"
	"github.com/akyairhashvil/deen/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleWindowSize(msg tea.WindowSizeMsg) (DashboardModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.progress.Width = m.progressWidth()
	return m, nil
}

func (m DashboardModel) handleTick(msg TickMsg) (DashboardModel, tea.Cmd) {
	now := time.Time(msg)
	m = m.reload(m.store.Tick(m.ctx, now))
	m.toasts = pruneToasts(m.toasts, now)
	return m, tickCmd()
}

func (m DashboardModel) handleNextPrayer(msg NextPrayerMsg) (DashboardModel, tea.Cmd) {
	m = m.reload(m.store.RefreshNextPrayer(m.ctx, time.Time(msg)))
	return m, nextPrayerCmd()
}

// handleStartup runs the same catch-up the timers would: rollover, next
// prayer and a sync point. Timers are already armed by Init.
func (m DashboardModel) handleStartup(now time.Time) DashboardModel {
	err := errors.Join(
		m.store.Tick(m.ctx, now),
		m.store.RefreshNextPrayer(m.ctx, now),
	)
	m.store.Sync(now)
	return m.reload(err)
}

func (m DashboardModel) handleSync(now time.Time) DashboardModel {
	m.store.Sync(now)
	return m.reload(nil)
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	key := msg.String()
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	return m, nil
}

func (m DashboardModel) startGoalInput() DashboardModel {
	m.editingGoal = true
	m.Message = ""
	m.goalInput.Reset()
	m.goalInput.SetValue(strconv.Itoa(m.snap.State.TasbeehGoal))
	m.goalInput.CursorEnd()
	m.goalInput.Focus()
	return m
}

func (m DashboardModel) handleGoalInput(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editingGoal = false
		m.goalInput.Blur()
		return m, nil
	case tea.KeyEnter:
		raw := strings.TrimSpace(m.goalInput.Value())
		goal, err := strconv.Atoi(raw)
		if err != nil {
			m.Message = fmt.Sprintf("Goal must be a number, got %q", raw)
			return m, nil
		}
		if err := m.store.SetGoal(m.ctx, goal); err != nil {
			return m.reload(err), nil
		}
		m.editingGoal = false
		m.goalInput.Blur()
		m = m.reload(nil)
		m.Message = fmt.Sprintf("Tasbeeh goal set to %d", goal)
		return m, nil
	}
	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) startHabitInput() DashboardModel {
	m.addingHabit = true
	m.Message = ""
	m.habitInput.Reset()
	m.habitInput.Focus()
	return m
}

func (m DashboardModel) handleHabitInput(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.addingHabit = false
		m.habitInput.Blur()
		return m, nil
	case tea.KeyEnter:
		h, err := m.store.AddHabit(m.ctx, m.habitInput.Value(), config.DefaultHabitIcon, models.CategorySpiritual)
		if err != nil {
			return m.reload(err), nil
		}
		m.addingHabit = false
		m.habitInput.Blur()
		m = m.reload(nil)
		m.view.habitCursor = len(m.snap.Habits) - 1
		m.Message = fmt.Sprintf("Added habit %q", h.Name)
		return m, nil
	}
	var cmd tea.Cmd
	m.habitInput, cmd = m.habitInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) removeHabit() DashboardModel {
	if m.view.habitCursor >= len(m.snap.Habits) {
		return m
	}
	h := m.snap.Habits[m.view.habitCursor]
	if err := m.store.RemoveHabit(m.ctx, h.ID); err != nil {
		return m.reload(err)
	}
	m = m.reload(nil)
	m.view.habitCursor = util.Clamp(m.view.habitCursor, 0, max(len(m.snap.Habits)-1, 0))
	m.Message = fmt.Sprintf("Removed habit %q", h.Name)
	return m
}

func (m DashboardModel) moveCursor(step int) DashboardModel {
	switch m.view.focusedPane {
	case config.PanePrayers:
		m.view.prayerCursor = util.Clamp(m.view.prayerCursor+step, 0, len(m.snap.State.Prayers)-1)
	case config.PaneHabits:
		if len(m.snap.Habits) > 0 {
			m.view.habitCursor = util.Clamp(m.view.habitCursor+step, 0, len(m.snap.Habits)-1)
		}
	}
	return m
}

func (m DashboardModel) activate() (DashboardModel, tea.Cmd) {
	switch m.view.focusedPane {
	case config.PanePrayers:
		if m.view.prayerCursor < len(m.snap.State.Prayers) {
			name := m.snap.State.Prayers[m.view.prayerCursor].Name
			return m.reload(m.store.ToggleDone(m.ctx, name)), nil
		}
	case config.PaneTasbeeh:
		return m.reload(m.store.Increment(m.ctx)), nil
	case config.PaneVerse:
		return m.reload(m.store.NewVerse(m.ctx)), nil
	case config.PaneHabits:
		if m.view.habitCursor < len(m.snap.Habits) {
			id := m.snap.Habits[m.view.habitCursor].ID
			return m.reload(m.store.ToggleHabit(m.ctx, id)), nil
		}
	}
	return m, nil
}

func (m DashboardModel) cycleTheme() DashboardModel {
	name := nextThemeName(m.themeName)
	m.applyTheme(name)
	if m.db != nil {
		if err := m.db.SetSetting(m.ctx, config.SettingTheme, name); err != nil {
			return m.reload(err)
		}
	}
	m.Message = "Theme: " + m.theme.Name
	return m
}
