package config

import "time"

// Layout constants.
const (
	// PaneWidth is the preferred width for a dashboard pane.
	PaneWidth = 44

	// CompactModeThreshold stacks panes vertically below this width.
	CompactModeThreshold = 92

	// ProgressWidth is the tasbeeh progress bar width.
	ProgressWidth = 30

	// MinProgressWidth is the narrowest the bar may shrink to.
	MinProgressWidth = 10
)

// Display limits.
const (
	// ToastDuration is how long a notification stays on screen.
	ToastDuration = 3 * time.Second

	// MaxToasts limits stacked notifications.
	MaxToasts = 3

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Focusable panes.
const (
	PanePrayers = iota
	PaneTasbeeh
	PaneVerse
	PaneHabits
	PaneCount
)

// Input constraints.
const (
	// MaxGoalDigits bounds the goal input field.
	MaxGoalDigits = 5
	MaxHabitName  = 40

	DefaultHabitIcon = "⭐"
)
