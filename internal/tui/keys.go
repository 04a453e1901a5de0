package tui

import (
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func registerBindings(r *HandlerRegistry) {
	r.Register(KeyBinding{
		Keys:        []string{"q"},
		Description: "quit",
		Priority:    100,
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m, tea.Quit, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{"tab", "shift+tab"},
		Description: "pane",
		Priority:    90,
		Handler: func(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
			if key == "shift+tab" {
				m.view.cycle(-1)
			} else {
				m.view.cycle(1)
			}
			m.view.sharing = false
			return m, nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:  []string{"up", "k"},
		Panes: []int{config.PanePrayers, config.PaneHabits},
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m.moveCursor(-1), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:  []string{"down", "j"},
		Panes: []int{config.PanePrayers, config.PaneHabits},
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m.moveCursor(1), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{" ", "enter"},
		Description: "toggle",
		Panes:       []int{config.PanePrayers, config.PaneHabits},
		Priority:    10,
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			next, cmd := m.activate()
			return next, cmd, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{"a"},
		Description: "add",
		Panes:       []int{config.PaneHabits},
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m.startHabitInput(), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{"d"},
		Description: "delete",
		Panes:       []int{config.PaneHabits},
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m.removeHabit(), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{" ", "enter", "+", "="},
		Description: "count",
		Panes:       []int{config.PaneTasbeeh},
		Priority:    10,
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			next, cmd := m.activate()
			return next, cmd, true
		},
	})
	r.Register(KeyBinding{
		Keys: []string{"+", "="},
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m.reload(m.store.Increment(m.ctx)), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{"r"},
		Description: "reset",
		Panes:       []int{config.PaneTasbeeh},
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m.reload(m.store.ResetTasbeeh(m.ctx)), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{"g"},
		Description: "goal",
		Panes:       []int{config.PaneTasbeeh},
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m.startGoalInput(), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{" ", "enter", "n"},
		Description: "new verse",
		Panes:       []int{config.PaneVerse},
		Priority:    10,
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			m.view.sharing = false
			return m.reload(m.store.NewVerse(m.ctx)), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{"s"},
		Description: "share",
		Panes:       []int{config.PaneVerse},
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			m.view.sharing = !m.view.sharing
			if m.view.sharing {
				m.Message = "Copy the verse text to share it manually"
			}
			return m, nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{"R"},
		Description: "refresh times",
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m.reload(m.store.RefreshPrayerTimes(m.ctx, time.Now())), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{"t"},
		Description: "theme",
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			return m.cycleTheme(), nil, true
		},
	})
	r.Register(KeyBinding{
		Keys:        []string{"?"},
		Description: "help",
		Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
			m.view.showHelp = !m.view.showHelp
			return m, nil, true
		},
	})
}
