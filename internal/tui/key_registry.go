package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Panes       []int // empty means every pane
	Priority    int
}

func (b KeyBinding) AppliesToPane(pane int) bool {
	if len(b.Panes) == 0 {
		return true
	}
	for _, p := range b.Panes {
		if p == pane {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesToPane(m.view.focusedPane) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsForPane(pane int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToPane(pane) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForPane(pane int) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsForPane(pane) {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		label := b.Keys[0]
		if label == " " {
			label = "space"
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, " | ")
}
