package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/database"
	"github.com/akyairhashvil/deen/internal/models"
	"github.com/akyairhashvil/deen/internal/store"
	"github.com/akyairhashvil/deen/internal/verses"
	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func setupTestDashboard(t *testing.T) (DashboardModel, *database.Database) {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t)
	st := store.New(db, store.WithRand(func(int) int { return 0 }))
	if err := st.Load(ctx, testNow); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return NewDashboardModel(ctx, st, db, ""), db
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m DashboardModel, keys ...string) DashboardModel {
	t.Helper()
	for _, k := range keys {
		model, _ := m.Update(keyMsg(k))
		m = model.(DashboardModel)
	}
	return m
}

func TestNewDashboardDefaults(t *testing.T) {
	m, _ := setupTestDashboard(t)
	if m.location != config.DefaultLocation {
		t.Fatalf("expected default location, got %q", m.location)
	}
	if m.themeName != config.DefaultTheme {
		t.Fatalf("expected default theme, got %q", m.themeName)
	}
	if m.view.focusedPane != config.PanePrayers {
		t.Fatalf("expected prayers pane focused")
	}
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected scheduler cmd from Init")
	}
}

func TestHandleTickSameDay(t *testing.T) {
	m, _ := setupTestDashboard(t)
	next, cmd := m.handleTick(TickMsg(testNow.Add(time.Second)))
	if cmd == nil {
		t.Fatalf("expected tick to re-arm")
	}
	if !next.snap.Now.Equal(testNow.Add(time.Second)) {
		t.Fatalf("expected clock to advance, got %v", next.snap.Now)
	}
	if len(next.toasts) != 0 {
		t.Fatalf("expected no toasts, got %d", len(next.toasts))
	}
}

func TestHandleTickRollsOver(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "enter") // complete Fajr
	tomorrow := time.Date(2026, 3, 16, 0, 0, 5, 0, time.UTC)

	next, _ := m.handleTick(TickMsg(tomorrow))
	if next.snap.State.CompletedPrayers() != 0 {
		t.Fatalf("expected prayers reset after rollover")
	}
	found := false
	for _, ts := range next.toasts {
		if ts.kind == models.NotifyNewDay {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected new-day toast")
	}
}

func TestTogglePrayerFromKeyboard(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "j", "enter")
	if !m.snap.State.Prayers[1].Completed {
		t.Fatalf("expected Dhuhr completed")
	}
	if len(m.toasts) != 1 || !strings.Contains(m.toasts[0].text, "Dhuhr") {
		t.Fatalf("expected prayer toast, got %+v", m.toasts)
	}
	m = press(t, m, "enter")
	if m.snap.State.Prayers[1].Completed {
		t.Fatalf("expected Dhuhr unmarked")
	}
}

func TestCursorClampsAtEdges(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "k")
	if m.view.prayerCursor != 0 {
		t.Fatalf("cursor should not go above first prayer")
	}
	m = press(t, m, "j", "j", "j", "j", "j", "j")
	if m.view.prayerCursor != 4 {
		t.Fatalf("cursor should stop at Isha, got %d", m.view.prayerCursor)
	}
}

func TestTabCyclesPanes(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "tab")
	if m.view.focusedPane != config.PaneTasbeeh {
		t.Fatalf("expected tasbeeh pane, got %d", m.view.focusedPane)
	}
	m = press(t, m, "tab", "tab", "tab")
	if m.view.focusedPane != config.PanePrayers {
		t.Fatalf("expected wrap to prayers, got %d", m.view.focusedPane)
	}
	m = press(t, m, "shift+tab")
	if m.view.focusedPane != config.PaneHabits {
		t.Fatalf("expected wrap back to habits, got %d", m.view.focusedPane)
	}
}

func TestTasbeehMilestoneToast(t *testing.T) {
	m, _ := setupTestDashboard(t)
	if err := m.store.SetTasbeehCount(context.Background(), 32); err != nil {
		t.Fatalf("SetTasbeehCount failed: %v", err)
	}
	m = press(t, m, "tab", " ")
	if m.snap.State.TasbeehCount != 33 {
		t.Fatalf("expected count 33, got %d", m.snap.State.TasbeehCount)
	}
	if len(m.toasts) != 1 || m.toasts[0].kind != models.NotifyMilestone {
		t.Fatalf("expected milestone toast, got %+v", m.toasts)
	}
	m = press(t, m, "+")
	if m.snap.State.TasbeehCount != 34 || len(m.toasts) != 1 {
		t.Fatalf("expected count 34 without new toast, got %d and %d toasts", m.snap.State.TasbeehCount, len(m.toasts))
	}
	m = press(t, m, "r")
	if m.snap.State.TasbeehCount != 0 {
		t.Fatalf("expected reset, got %d", m.snap.State.TasbeehCount)
	}
}

func TestResetOnlyInTasbeehPane(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "+", "+", "r")
	if m.snap.State.TasbeehCount != 2 {
		t.Fatalf("reset should not fire from prayers pane, got %d", m.snap.State.TasbeehCount)
	}
}

func TestGoalInputFlow(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "tab", "g")
	if !m.editingGoal {
		t.Fatalf("expected goal input open")
	}
	if m.goalInput.Value() != "300" {
		t.Fatalf("expected current goal prefilled, got %q", m.goalInput.Value())
	}

	m.goalInput.SetValue("abc")
	m = press(t, m, "enter")
	if !m.editingGoal || !strings.Contains(m.Message, "number") {
		t.Fatalf("expected number error, got %q", m.Message)
	}

	m.goalInput.SetValue("0")
	m = press(t, m, "enter")
	if !m.editingGoal || !strings.Contains(m.Message, "invalid tasbeeh goal") {
		t.Fatalf("expected invalid goal error, got %q", m.Message)
	}

	m.goalInput.SetValue("120")
	m = press(t, m, "enter")
	if m.editingGoal {
		t.Fatalf("expected goal input closed")
	}
	if m.snap.State.TasbeehGoal != 120 {
		t.Fatalf("expected goal 120, got %d", m.snap.State.TasbeehGoal)
	}
}

func TestGoalInputEscCancels(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "tab", "g", "esc")
	if m.editingGoal {
		t.Fatalf("expected esc to close goal input")
	}
	if m.snap.State.TasbeehGoal != config.DefaultTasbeehGoal {
		t.Fatalf("goal should be unchanged")
	}
}

func TestVerseKeys(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "tab", "tab", "n")
	if m.snap.State.DailyVerseIndex == 0 {
		t.Fatalf("expected verse to change from 0")
	}
	m = press(t, m, "s")
	if !m.view.sharing {
		t.Fatalf("expected share view")
	}
	v := verses.At(m.snap.State.DailyVerseIndex)
	if !strings.Contains(m.renderVerse(), v.Reference) {
		t.Fatalf("share view should include reference")
	}
}

func TestHabitToggleFromKeyboard(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "shift+tab", "j", "j", " ")
	h := m.snap.Habits[2]
	if !h.Completed || h.Streak != 1 {
		t.Fatalf("expected third habit completed with streak 1, got %+v", h)
	}
	if len(m.toasts) == 0 || m.toasts[0].kind != models.NotifyHabitCompleted {
		t.Fatalf("expected habit toast")
	}
}

func TestThemeCyclePersists(t *testing.T) {
	m, db := setupTestDashboard(t)
	m = press(t, m, "t")
	if m.themeName != "dracula" {
		t.Fatalf("expected dracula, got %q", m.themeName)
	}
	got, ok := db.GetSetting(context.Background(), config.SettingTheme)
	if !ok || got != "dracula" {
		t.Fatalf("expected persisted theme, got %q %v", got, ok)
	}
	again := NewDashboardModel(context.Background(), m.store, db, "")
	if again.themeName != "dracula" {
		t.Fatalf("expected theme restored, got %q", again.themeName)
	}
}

func TestFocusAndSyncMessages(t *testing.T) {
	m, _ := setupTestDashboard(t)
	model, cmd := m.Update(tea.FocusMsg{})
	m = model.(DashboardModel)
	if cmd != nil {
		t.Fatalf("focus sync should not re-arm the timer")
	}
	if m.snap.LastSync.IsZero() {
		t.Fatalf("expected focus to record a sync")
	}

	at := testNow.Add(5 * time.Minute)
	model, cmd = m.Update(SyncMsg(at))
	m = model.(DashboardModel)
	if cmd == nil || !m.snap.LastSync.Equal(at) {
		t.Fatalf("expected timed sync at %v, got %v", at, m.snap.LastSync)
	}
	if len(m.toasts) != 0 {
		t.Fatalf("sync should not toast")
	}
}

func TestNextPrayerMsgMovesFlag(t *testing.T) {
	m, _ := setupTestDashboard(t)
	model, cmd := m.Update(NextPrayerMsg(time.Date(2026, 3, 15, 16, 0, 0, 0, time.UTC)))
	m = model.(DashboardModel)
	if cmd == nil {
		t.Fatalf("expected next-prayer timer to re-arm")
	}
	p, ok := m.snap.State.NextPrayer()
	if !ok || p.Name != models.Maghrib {
		t.Fatalf("expected Maghrib next, got %+v", p)
	}
}

func TestViewRendersPanes(t *testing.T) {
	m, _ := setupTestDashboard(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = model.(DashboardModel)
	view := m.View()
	for _, want := range []string{"Prayer Times", "Fajr", "Digital Tasbeeh", "Daily Verse", "Daily Habits", "New Delhi"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}

	model, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	m = model.(DashboardModel)
	if m.progress.Width < config.MinProgressWidth || m.progress.Width > config.ProgressWidth {
		t.Fatalf("progress width out of range: %d", m.progress.Width)
	}
	if m.View() == "" {
		t.Fatalf("expected compact view")
	}
}

func TestHelpTogglesFooter(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "tab", "?")
	footer := m.renderFooter()
	if !strings.Contains(footer, "[r]reset") || !strings.Contains(footer, "[g]goal") {
		t.Fatalf("expected tasbeeh help, got %q", footer)
	}
}

func TestStartupMovesStaleNextFlag(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	early := time.Date(2026, 3, 15, 5, 0, 0, 0, time.UTC)
	st := store.New(db, store.WithRand(func(int) int { return 0 }))
	if err := st.Load(ctx, early); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	m := NewDashboardModel(ctx, st, db, "")
	if p, _ := m.snap.State.NextPrayer(); p.Name != models.Fajr {
		t.Fatalf("expected Fajr next before startup, got %q", p.Name)
	}

	if _, ok := startupCmd()().(StartupMsg); !ok {
		t.Fatalf("expected startup command to emit StartupMsg")
	}

	afternoon := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	model, cmd := m.Update(StartupMsg(afternoon))
	m = model.(DashboardModel)
	if cmd != nil {
		t.Fatalf("startup should not arm another timer")
	}
	if p, _ := m.snap.State.NextPrayer(); p.Name != models.Asr {
		t.Fatalf("expected Asr next after startup, got %q", p.Name)
	}
	if m.snap.LastSync.IsZero() {
		t.Fatalf("expected startup sync")
	}
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
}

func TestHabitAddAndDeleteFromKeyboard(t *testing.T) {
	m, db := setupTestDashboard(t)
	m = press(t, m, "shift+tab", "a")
	if !m.addingHabit {
		t.Fatalf("expected habit input open")
	}
	m = press(t, m, "enter")
	if !m.addingHabit || m.Message == "" {
		t.Fatalf("empty name should keep the input open with an error")
	}
	m = press(t, m, "W", "a", "l", "k", "enter")
	if m.addingHabit {
		t.Fatalf("expected input closed")
	}
	if len(m.snap.Habits) != 8 {
		t.Fatalf("expected 8 habits, got %d", len(m.snap.Habits))
	}
	added := m.snap.Habits[7]
	if added.Name != "Walk" || added.Icon != config.DefaultHabitIcon || m.view.habitCursor != 7 {
		t.Fatalf("unexpected added habit %+v cursor %d", added, m.view.habitCursor)
	}

	m = press(t, m, "d")
	if len(m.snap.Habits) != 7 {
		t.Fatalf("expected 7 habits after delete, got %d", len(m.snap.Habits))
	}
	if m.view.habitCursor != 6 {
		t.Fatalf("expected cursor clamped to 6, got %d", m.view.habitCursor)
	}
	stored, err := db.ListHabits(context.Background())
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	for _, h := range stored {
		if h.Name == "Walk" {
			t.Fatalf("deleted habit still stored")
		}
	}
}

func TestHabitInputEscCancels(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m = press(t, m, "shift+tab", "a", "x", "esc")
	if m.addingHabit || len(m.snap.Habits) != 7 {
		t.Fatalf("esc should cancel without adding")
	}
}
