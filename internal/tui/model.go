package tui

import (
	"context"

	"github.com/akyairhashvil/deen/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the root bubbletea model. It owns global keys and delegates
// everything else to the dashboard.
type MainModel struct {
	dashboard DashboardModel
}

func NewMainModel(ctx context.Context, st *store.Store, db Database, location string) MainModel {
	return MainModel{dashboard: NewDashboardModel(ctx, st, db, location)}
}

func (m MainModel) Init() tea.Cmd {
	return m.dashboard.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	newDash, cmd := m.dashboard.Update(msg)
	m.dashboard = newDash.(DashboardModel)
	return m, cmd
}

func (m MainModel) View() string {
	return m.dashboard.View()
}
