package models

import "time"

// PrayerName is one of the five daily prayers.
type PrayerName string

const (
	Fajr    PrayerName = "Fajr"
	Dhuhr   PrayerName = "Dhuhr"
	Asr     PrayerName = "Asr"
	Maghrib PrayerName = "Maghrib"
	Isha    PrayerName = "Isha"
)

// PrayerOrder is the fixed display and computation order.
var PrayerOrder = []PrayerName{Fajr, Dhuhr, Asr, Maghrib, Isha}

// PrayerRecord is a single prayer slot for the current day.
type PrayerRecord struct {
	Name      PrayerName `json:"name"`
	Time      string     `json:"time"` // HH:MM, 24-hour
	Arabic    string     `json:"arabic"`
	Completed bool       `json:"completed"`
	IsNext    bool       `json:"isNext"`
}

// AppState is the persisted daily state. Timestamps serialize as RFC 3339.
type AppState struct {
	Prayers         []PrayerRecord `json:"prayers"`
	TasbeehCount    int            `json:"tasbeehCount"`
	TasbeehGoal     int            `json:"tasbeehGoal"`
	DailyVerseIndex int            `json:"dailyVerseIndex"`
	LastUpdated     time.Time      `json:"lastUpdated"`
}

// Clone returns a copy that shares no slices with s.
func (s AppState) Clone() AppState {
	out := s
	out.Prayers = append([]PrayerRecord(nil), s.Prayers...)
	return out
}

// CompletedPrayers counts prayers marked done.
func (s AppState) CompletedPrayers() int {
	n := 0
	for _, p := range s.Prayers {
		if p.Completed {
			n++
		}
	}
	return n
}

// NextPrayer returns the record flagged as next, if any.
func (s AppState) NextPrayer() (PrayerRecord, bool) {
	for _, p := range s.Prayers {
		if p.IsNext {
			return p, true
		}
	}
	return PrayerRecord{}, false
}

// HabitCategory groups habits for display.
type HabitCategory string

const (
	CategorySpiritual HabitCategory = "spiritual"
	CategoryHealth    HabitCategory = "health"
	CategoryLearning  HabitCategory = "learning"
)

// Habit is a daily checkbox with a running streak.
type Habit struct {
	ID        string
	Name      string
	Icon      string
	Category  HabitCategory
	Completed bool
	Streak    int
	Position  int
}

// DayLog summarises a finished day.
type DayLog struct {
	Date             string // YYYY-MM-DD
	PrayersCompleted int
	TasbeehCount     int
	TasbeehGoal      int
	HabitsCompleted  int
	HabitsTotal      int
	RecordedAt       time.Time
}

// NotificationKind enumerates events raised by the store.
type NotificationKind string

const (
	NotifyNewDay             NotificationKind = "new-day"
	NotifyPrayerCompleted    NotificationKind = "prayer-completed"
	NotifyMilestone          NotificationKind = "milestone-reached"
	NotifyGoalReached        NotificationKind = "goal-reached"
	NotifyCounterReset       NotificationKind = "counter-reset"
	NotifyPrayerTimesUpdated NotificationKind = "prayer-times-updated"
	NotifyVerseChanged       NotificationKind = "verse-changed"
	NotifyHabitCompleted     NotificationKind = "habit-completed"
	NotifyAllHabitsCompleted NotificationKind = "all-habits-completed"
	NotifySynced             NotificationKind = "synced"
)

// Notification is a typed event; display text is up to the presentation layer.
type Notification struct {
	Kind    NotificationKind
	Subject string // prayer or habit name
	Count   int    // tasbeeh count, habit streak
	At      time.Time
}
