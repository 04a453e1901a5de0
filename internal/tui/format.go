package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// FormatNotification returns the toast text for n. Sync events are shown in
// the header rather than as a toast.
func FormatNotification(n models.Notification) (string, bool) {
	switch n.Kind {
	case models.NotifyNewDay:
		return "🌅 A new day: prayers and tasbeeh have been reset", true
	case models.NotifyPrayerCompleted:
		return fmt.Sprintf("✅ Prayer completed: may Allah accept your %s prayer", n.Subject), true
	case models.NotifyMilestone:
		return fmt.Sprintf("✨ Milestone reached: %d tasbeeh completed!", n.Count), true
	case models.NotifyGoalReached:
		return fmt.Sprintf("🎉 Subhan Allah! You've reached your goal of %d tasbeeh!", n.Count), true
	case models.NotifyCounterReset:
		return "Counter reset: start your dhikr again", true
	case models.NotifyPrayerTimesUpdated:
		return "Prayer times updated", true
	case models.NotifyVerseChanged:
		return "New verse loaded: may this verse bring you peace and guidance", true
	case models.NotifyHabitCompleted:
		return fmt.Sprintf("%s completed! Streak: %d days", n.Subject, n.Count), true
	case models.NotifyAllHabitsCompleted:
		return "Alhamdulillah, all my habits are completed today 🎉", true
	default:
		return "", false
	}
}

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatLastSync describes how long ago the last sync ran.
func FormatLastSync(last, now time.Time) string {
	if last.IsZero() {
		return "not synced yet"
	}
	d := now.Sub(last)
	if d < time.Minute {
		return "synced just now"
	}
	return "synced " + FormatDuration(d) + " ago"
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}
