package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/prayer"
	"github.com/akyairhashvil/deen/internal/util"
	"github.com/akyairhashvil/deen/internal/verses"
	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) View() string {
	var panes string
	prayers := m.renderPane(config.PanePrayers, "Prayer Times", m.renderPrayers())
	tasbeeh := m.renderPane(config.PaneTasbeeh, "Digital Tasbeeh", m.renderTasbeeh())
	verse := m.renderPane(config.PaneVerse, "Daily Verse", m.renderVerse())
	habits := m.renderPane(config.PaneHabits, "Daily Habits", m.renderHabits())

	if m.width > 0 && m.width < config.CompactModeThreshold {
		panes = lipgloss.JoinVertical(lipgloss.Left, prayers, tasbeeh, verse, habits)
	} else {
		left := lipgloss.JoinVertical(lipgloss.Left, prayers, tasbeeh)
		right := lipgloss.JoinVertical(lipgloss.Left, verse, habits)
		panes = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	sections := []string{m.renderHeader(), panes}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.renderFooter())
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) paneWidth() int {
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return util.Clamp(m.width-6, 20, config.PaneWidth*2)
	}
	return config.PaneWidth
}

func (m DashboardModel) renderPane(pane int, title, body string) string {
	border := m.theme.Border
	titleStyle := m.theme.Title
	if m.view.focusedPane == pane {
		titleStyle = m.theme.Focused
		border = lipgloss.Color("214")
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(m.paneWidth())
	return frame.Render(titleStyle.Render(title) + "\n" + body)
}

func (m DashboardModel) renderHeader() string {
	now := m.now()
	title := m.theme.Header.Render("Deen Routine")
	date := m.theme.Text.Render(now.Format("Monday, 2 January 2006"))
	clock := m.theme.Highlight.Render(now.Format("15:04:05"))
	line := fmt.Sprintf("%s  |  %s  |  %s  |  %s", title, date, clock, m.theme.Dim.Render(m.location))

	next := "No upcoming prayer"
	if p, ok := m.snap.State.NextPrayer(); ok {
		next = fmt.Sprintf("Next: %s at %s (%s)", p.Name, prayer.Clock12(p.Time), prayer.TimeUntil(p, now))
	}
	sub := fmt.Sprintf("%s  |  %s", m.theme.Next.Render(next), m.theme.Dim.Render(FormatLastSync(m.snap.LastSync, now)))
	return line + "\n" + sub + "\n"
}

func (m DashboardModel) renderPrayers() string {
	width := m.paneWidth() - 4
	var b strings.Builder
	for i, p := range m.snap.State.Prayers {
		mark := "[ ]"
		if p.Completed {
			mark = "[x]"
		}
		text := fmt.Sprintf("%s %-8s %-7s %8s", mark, p.Name, p.Arabic, prayer.Clock12(p.Time))
		style := m.theme.Text
		switch {
		case p.Completed:
			style = m.theme.Done
		case p.IsNext:
			style = m.theme.Next
			text += "  next"
		}
		line := style.Render(truncate(text, width))
		if m.view.focusedPane == config.PanePrayers && i == m.view.prayerCursor {
			line = m.theme.Focused.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	done := m.snap.State.CompletedPrayers()
	total := len(m.snap.State.Prayers)
	b.WriteString(m.theme.Dim.Render(fmt.Sprintf("%d/%d completed (%d%%)", done, total, util.Percent(done, total))))
	return b.String()
}

func (m DashboardModel) renderTasbeeh() string {
	st := m.snap.State
	pct := util.Percent(st.TasbeehCount, st.TasbeehGoal)
	var b strings.Builder
	b.WriteString(m.theme.Arabic.Render(verses.DhikrFor(st.TasbeehCount)) + "\n")
	b.WriteString(m.theme.Header.Render(fmt.Sprintf("%d", st.TasbeehCount)))
	b.WriteString(m.theme.Dim.Render(fmt.Sprintf(" out of %d goal", st.TasbeehGoal)) + "\n")
	b.WriteString(m.progress.ViewAs(float64(pct)/100) + fmt.Sprintf(" %d%%", pct))
	if st.TasbeehCount >= st.TasbeehGoal {
		b.WriteString("\n" + m.theme.Next.Render("🏆 Daily goal achieved!"))
	}
	if m.editingGoal {
		b.WriteString("\n" + m.theme.Input.Render("Goal: "+m.goalInput.View()))
	}
	return b.String()
}

func (m DashboardModel) renderVerse() string {
	v := verses.At(m.snap.State.DailyVerseIndex)
	wrap := lipgloss.NewStyle().Width(m.paneWidth() - 4)
	if m.view.sharing {
		return wrap.Render(verses.ShareText(v))
	}
	var b strings.Builder
	b.WriteString(wrap.Inherit(m.theme.Arabic).Align(lipgloss.Right).Render(v.Arabic) + "\n")
	b.WriteString(wrap.Inherit(m.theme.Text).Render(fmt.Sprintf("%q", v.Translation)) + "\n")
	b.WriteString(m.theme.Highlight.Render(v.Reference) + "\n")
	b.WriteString(wrap.Inherit(m.theme.Dim).Render(v.Reflection))
	return b.String()
}

func (m DashboardModel) renderHabits() string {
	width := m.paneWidth() - 4
	var b strings.Builder
	done := 0
	for i, h := range m.snap.Habits {
		mark := "[ ]"
		style := m.theme.Text
		if h.Completed {
			mark = "[x]"
			style = m.theme.Done
			done++
		}
		text := fmt.Sprintf("%s %s %s", mark, h.Icon, h.Name)
		streak := m.theme.Next.Render(fmt.Sprintf("🔥%d", h.Streak))
		line := style.Render(truncate(text, width-8)) + " " + m.theme.Dim.Render(string(h.Category)) + " " + streak
		if m.view.focusedPane == config.PaneHabits && i == m.view.habitCursor {
			line = m.theme.Focused.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	total := len(m.snap.Habits)
	b.WriteString(m.theme.Dim.Render(fmt.Sprintf("%d/%d completed (%d%%)", done, total, util.Percent(done, total))))
	if total > 0 && done == total {
		b.WriteString("\n" + m.theme.Next.Render("Alhamdulillah, all habits done today 🎉"))
	}
	if m.addingHabit {
		b.WriteString("\n" + m.theme.Input.Render("Habit: "+m.habitInput.View()))
	}
	return b.String()
}

func (m DashboardModel) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var rendered []string
	for _, t := range m.toasts {
		rendered = append(rendered, m.theme.Toast.Render(t.text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m DashboardModel) renderFooter() string {
	var lines []string
	if m.Message != "" {
		style := m.theme.Highlight
		if m.err != nil {
			style = m.theme.Error
		}
		lines = append(lines, style.Render(m.Message))
	}
	if m.view.showHelp {
		lines = append(lines, m.theme.Dim.Render(m.keys.HelpForPane(m.view.focusedPane)))
	} else {
		lines = append(lines, m.theme.Dim.Render("[tab] pane | [?] help | [q] quit"))
	}
	return strings.Join(lines, "\n")
}
