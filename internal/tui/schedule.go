package tui

import (
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

// NextPrayerMsg asks for the next-prayer flag to be recomputed.
type NextPrayerMsg time.Time

// SyncMsg is the periodic decorative sync.
type SyncMsg time.Time

// StartupMsg catches a restored state up with the wall clock as soon as the
// dashboard opens, without waiting for the first timer.
type StartupMsg time.Time

func startupCmd() tea.Cmd {
	return func() tea.Msg { return StartupMsg(time.Now()) }
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.ClockInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func nextPrayerCmd() tea.Cmd {
	return tea.Tick(config.NextPrayerInterval, func(t time.Time) tea.Msg { return NextPrayerMsg(t) })
}

func syncCmd() tea.Cmd {
	return tea.Tick(config.SyncInterval, func(t time.Time) tea.Msg { return SyncMsg(t) })
}

// scheduleCmds starts the three independent timers. Each handler re-arms its
// own timer, and they all stop with the program.
func scheduleCmds() tea.Cmd {
	return tea.Batch(tickCmd(), nextPrayerCmd(), syncCmd())
}
