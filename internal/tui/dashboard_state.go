package tui

import (
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/models"
)

// ViewState tracks pane focus and per-pane cursors.
type ViewState struct {
	focusedPane  int
	prayerCursor int
	habitCursor  int
	showHelp     bool
	sharing      bool
}

func newViewState() *ViewState {
	return &ViewState{focusedPane: config.PanePrayers}
}

func (v *ViewState) cycle(step int) {
	v.focusedPane = (v.focusedPane + step + config.PaneCount) % config.PaneCount
}

type toast struct {
	kind    models.NotificationKind
	text    string
	expires time.Time
}

// pushToasts appends displayable notifications, keeping the newest few.
func pushToasts(toasts []toast, notes []models.Notification) []toast {
	for _, n := range notes {
		text, ok := FormatNotification(n)
		if !ok {
			continue
		}
		toasts = append(toasts, toast{kind: n.Kind, text: text, expires: n.At.Add(config.ToastDuration)})
	}
	if len(toasts) > config.MaxToasts {
		toasts = toasts[len(toasts)-config.MaxToasts:]
	}
	return toasts
}

func pruneToasts(toasts []toast, now time.Time) []toast {
	var out []toast
	for _, t := range toasts {
		if now.Before(t.expires) {
			out = append(out, t)
		}
	}
	return out
}
