package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/store"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// --- Model ---
type DashboardModel struct {
	ctx       context.Context
	store     *store.Store
	db        Database
	snap      store.Snapshot
	keys      *HandlerRegistry
	view      *ViewState
	theme     Theme
	themeName string
	location  string

	progress    progress.Model
	goalInput   textinput.Model
	editingGoal bool
	habitInput  textinput.Model
	addingHabit bool

	toasts        []toast
	Message       string
	err           error
	width, height int
}

func NewDashboardModel(ctx context.Context, st *store.Store, db Database, location string) DashboardModel {
	if ctx == nil {
		ctx = context.Background()
	}
	themeName := config.DefaultTheme
	if db != nil {
		if name, ok := db.GetSetting(ctx, config.SettingTheme); ok {
			themeName = name
		}
	}
	if location == "" {
		location = config.DefaultLocation
	}

	ti := textinput.New()
	ti.Placeholder = "300"
	ti.CharLimit = config.MaxGoalDigits
	ti.Width = config.MaxGoalDigits + 2

	hi := textinput.New()
	hi.Placeholder = "New habit"
	hi.CharLimit = config.MaxHabitName
	hi.Width = 24

	m := DashboardModel{
		ctx:        ctx,
		store:      st,
		db:         db,
		snap:       st.Snapshot(),
		keys:       NewHandlerRegistry(),
		view:       newViewState(),
		location:   location,
		goalInput:  ti,
		habitInput: hi,
	}
	m.applyTheme(themeName)
	registerBindings(m.keys)
	return m
}

func (m *DashboardModel) applyTheme(name string) {
	m.themeName = name
	m.theme = ResolveTheme(name)
	m.progress = progress.New(
		progress.WithGradient(m.theme.BarStart, m.theme.BarEnd),
		progress.WithWidth(m.progressWidth()),
		progress.WithoutPercentage(),
	)
}

func (m DashboardModel) progressWidth() int {
	if m.width == 0 {
		return config.ProgressWidth
	}
	w := config.ProgressWidth
	if m.width < config.CompactModeThreshold {
		w = m.width - 16
	}
	if w < config.MinProgressWidth {
		w = config.MinProgressWidth
	}
	if w > config.ProgressWidth {
		w = config.ProgressWidth
	}
	return w
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(startupCmd(), scheduleCmds())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case StartupMsg:
		return m.handleStartup(time.Time(msg)), nil
	case NextPrayerMsg:
		return m.handleNextPrayer(msg)
	case SyncMsg:
		m = m.handleSync(time.Time(msg))
		return m, syncCmd()
	case tea.FocusMsg:
		// Returning to the terminal counts as a sync point.
		return m.handleSync(time.Now()), nil
	case tea.KeyMsg:
		if m.editingGoal {
			return m.handleGoalInput(msg)
		}
		if m.addingHabit {
			return m.handleHabitInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// reload copies fresh state out of the store and turns pending
// notifications into toasts. A non-nil err becomes the status line.
func (m DashboardModel) reload(err error) DashboardModel {
	m.snap = m.store.Snapshot()
	m.toasts = pushToasts(m.toasts, m.store.Drain())
	m.err = err
	if err != nil {
		log.Error().Err(err).Msg("dashboard action failed")
		m.Message = err.Error()
	}
	return m
}

func (m DashboardModel) now() time.Time {
	if m.snap.Now.IsZero() {
		return time.Now()
	}
	return m.snap.Now
}
