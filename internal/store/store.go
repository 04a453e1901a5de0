// Package store owns the daily routine state: prayers, the tasbeeh counter,
// the verse of the day and habits. It decides when that state rolls over to a
// new day and persists every mutation. It has no timers of its own; callers
// drive it with explicit timestamps.
package store

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/database"
	"github.com/akyairhashvil/deen/internal/models"
	"github.com/akyairhashvil/deen/internal/prayer"
	"github.com/akyairhashvil/deen/internal/verses"
	"github.com/rs/zerolog/log"
)

// Persistence is the storage port the store writes through.
//
//go:generate mockgen -source=store.go -destination=mock_persistence_test.go -package=store
type Persistence interface {
	database.StateRepository
	database.HabitRepository
	database.HistoryRepository
}

// Snapshot is a read-only copy of the store for rendering.
type Snapshot struct {
	State    models.AppState
	Habits   []models.Habit
	Now      time.Time
	LastSync time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithEstimator replaces the seasonal prayer-time estimator.
func WithEstimator(e prayer.Estimator) Option {
	return func(s *Store) { s.estimator = e }
}

// WithRand replaces the verse draw; intn(n) must return [0, n).
func WithRand(intn func(int) int) Option {
	return func(s *Store) { s.intn = intn }
}

// WithDefaultGoal sets the goal used when no state exists yet.
func WithDefaultGoal(goal int) Option {
	return func(s *Store) {
		if goal > 0 {
			s.defaultGoal = goal
		}
	}
}

// WithKey overrides the storage key of the state blob.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// Store is the single writer of AppState.
type Store struct {
	mu          sync.Mutex
	repo        Persistence
	estimator   prayer.Estimator
	intn        func(int) int
	key         string
	defaultGoal int

	loaded   bool
	state    models.AppState
	habits   []models.Habit
	now      time.Time
	lastSync time.Time
	pending  []models.Notification
}

func New(repo Persistence, opts ...Option) *Store {
	s := &Store{
		repo:        repo,
		estimator:   prayer.Seasonal{},
		intn:        rand.Intn,
		key:         config.StateKey,
		defaultGoal: config.DefaultTasbeehGoal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads persisted state, or builds and saves defaults when none exists.
// A corrupt blob is logged and replaced by defaults. Load does not roll the
// day over; the first Tick does that so the new-day notification fires.
func (s *Store) Load(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok, err := s.repo.LoadState(ctx, s.key)
	var derr *database.DeserializationError
	if errors.As(err, &derr) {
		log.Warn().Err(err).Str("key", s.key).Msg("persisted state unreadable, starting fresh")
		ok, err = false, nil
	}
	if err != nil {
		return err
	}

	s.now = now
	if ok {
		s.state = s.sanitize(state)
	} else if err := s.commit(ctx, s.freshState(now, s.defaultGoal)); err != nil {
		return err
	}

	habits, err := s.repo.ListHabits(ctx)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		habits = defaultHabits()
		if err := s.repo.SaveHabits(ctx, habits); err != nil {
			return err
		}
	}
	s.habits = habits
	s.loaded = true
	return nil
}

func (s *Store) freshState(now time.Time, goal int) models.AppState {
	return models.AppState{
		Prayers:         s.prayersFor(now),
		TasbeehCount:    0,
		TasbeehGoal:     goal,
		DailyVerseIndex: s.intn(verses.Count()),
		LastUpdated:     now,
	}
}

func (s *Store) prayersFor(now time.Time) []models.PrayerRecord {
	return prayer.MarkNext(s.estimator.Estimate(now), prayer.NextByHour(now))
}

// sanitize repairs fields a hand-edited or older blob may carry.
func (s *Store) sanitize(state models.AppState) models.AppState {
	if len(state.Prayers) != len(models.PrayerOrder) {
		state.Prayers = s.prayersFor(state.LastUpdated)
	}
	if state.TasbeehGoal <= 0 {
		state.TasbeehGoal = s.defaultGoal
	}
	if state.TasbeehCount < 0 {
		state.TasbeehCount = 0
	}
	if state.DailyVerseIndex < 0 || state.DailyVerseIndex >= verses.Count() {
		state.DailyVerseIndex = 0
	}
	if countNext(state.Prayers) != 1 {
		state.Prayers = prayer.MarkNext(state.Prayers, prayer.NextByHour(state.LastUpdated))
	}
	return state
}

// Tick advances the clock. When now falls on a later calendar day than the
// last update, the day rolls over. Otherwise only the display time changes.
func (s *Store) Tick(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	s.now = now
	if sameDay(s.state.LastUpdated, now) {
		return nil
	}
	return s.rollover(ctx, now)
}

// rollover writes the finished day, the reset habits and the new state. Memory
// only moves to the new day once every write succeeded; otherwise the next
// Tick retries, and RecordDay is an upsert so the retry is harmless.
func (s *Store) rollover(ctx context.Context, now time.Time) error {
	finished := s.dayLog(now)

	next := s.state.Clone()
	next.Prayers = s.prayersFor(now)
	next.TasbeehCount = 0
	next.DailyVerseIndex = s.intn(verses.Count())
	next.LastUpdated = now
	habits := resetHabits(s.habits)

	var errs []error
	if err := s.repo.RecordDay(ctx, finished); err != nil {
		errs = append(errs, err)
	}
	if err := s.repo.SaveHabits(ctx, habits); err != nil {
		errs = append(errs, err)
	}
	if err := s.repo.SaveState(ctx, s.key, next); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		log.Error().Err(err).Str("finished", finished.Date).Msg("day rollover failed")
		return err
	}

	s.state = next
	s.habits = habits
	s.notify(models.NotifyNewDay, "", 0)
	log.Info().Str("finished", finished.Date).Int("prayers", finished.PrayersCompleted).Msg("day rolled over")
	return nil
}

func (s *Store) dayLog(now time.Time) models.DayLog {
	done := 0
	for _, h := range s.habits {
		if h.Completed {
			done++
		}
	}
	return models.DayLog{
		Date:             s.state.LastUpdated.In(now.Location()).Format("2006-01-02"),
		PrayersCompleted: s.state.CompletedPrayers(),
		TasbeehCount:     s.state.TasbeehCount,
		TasbeehGoal:      s.state.TasbeehGoal,
		HabitsCompleted:  done,
		HabitsTotal:      len(s.habits),
		RecordedAt:       now,
	}
}

// RefreshNextPrayer reassigns the next-prayer flag using the hour thresholds.
// Completed flags are untouched. State is written only when the flag moves.
func (s *Store) RefreshNextPrayer(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	idx := prayer.NextByHour(now)
	if exactlyNext(s.state.Prayers, idx) {
		return nil
	}
	next := s.state.Clone()
	next.Prayers = prayer.MarkNext(next.Prayers, idx)
	return s.commit(ctx, next)
}

func countNext(prayers []models.PrayerRecord) int {
	n := 0
	for _, p := range prayers {
		if p.IsNext {
			n++
		}
	}
	return n
}

func exactlyNext(prayers []models.PrayerRecord, idx int) bool {
	for i, p := range prayers {
		if p.IsNext != (i == idx) {
			return false
		}
	}
	return true
}

// RefreshPrayerTimes recomputes today's times, keeping completion marks. On a
// new calendar day it performs the full rollover instead.
func (s *Store) RefreshPrayerTimes(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	s.now = now
	if !sameDay(s.state.LastUpdated, now) {
		return s.rollover(ctx, now)
	}
	done := make(map[models.PrayerName]bool, len(s.state.Prayers))
	for _, p := range s.state.Prayers {
		done[p.Name] = p.Completed
	}
	next := s.state.Clone()
	next.Prayers = s.prayersFor(now)
	for i := range next.Prayers {
		next.Prayers[i].Completed = done[next.Prayers[i].Name]
	}
	next.LastUpdated = now
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.notify(models.NotifyPrayerTimesUpdated, "", 0)
	return nil
}

// ToggleDone flips the completed flag of the named prayer.
func (s *Store) ToggleDone(ctx context.Context, name models.PrayerName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	next := s.state.Clone()
	for i := range next.Prayers {
		p := &next.Prayers[i]
		if p.Name != name {
			continue
		}
		p.Completed = !p.Completed
		if err := s.commit(ctx, next); err != nil {
			return err
		}
		if p.Completed {
			s.notify(models.NotifyPrayerCompleted, string(p.Name), 0)
		}
		return nil
	}
	return &NotFoundError{Resource: "prayer", Name: string(name)}
}

// SetTasbeehCount stores n as the current count. Callers clamp; only
// negative values are rejected.
func (s *Store) SetTasbeehCount(ctx context.Context, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCount(ctx, n)
}

func (s *Store) setCount(ctx context.Context, n int) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if n < 0 {
		return ErrNegativeCount
	}
	next := s.state.Clone()
	next.TasbeehCount = n
	return s.commit(ctx, next)
}

// Increment adds one to the counter. Reaching the goal raises goal-reached;
// otherwise every multiple of 33 raises milestone-reached.
func (s *Store) Increment(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.state.TasbeehCount + 1
	if err := s.setCount(ctx, n); err != nil {
		return err
	}
	switch {
	case n == s.state.TasbeehGoal:
		s.notify(models.NotifyGoalReached, "", n)
	case n%config.MilestoneEvery == 0:
		s.notify(models.NotifyMilestone, "", n)
	}
	return nil
}

// ResetTasbeeh zeroes the counter.
func (s *Store) ResetTasbeeh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.setCount(ctx, 0); err != nil {
		return err
	}
	s.notify(models.NotifyCounterReset, "", 0)
	return nil
}

// SetGoal changes the tasbeeh goal. The goal survives day rollover.
func (s *Store) SetGoal(ctx context.Context, goal int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	if goal <= 0 {
		return &InvalidGoalError{Goal: goal}
	}
	next := s.state.Clone()
	next.TasbeehGoal = goal
	return s.commit(ctx, next)
}

// NewVerse swaps the verse of the day for a different one.
func (s *Store) NewVerse(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	next := s.state.Clone()
	next.DailyVerseIndex = verses.Other(next.DailyVerseIndex, s.intn)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.notify(models.NotifyVerseChanged, verses.At(next.DailyVerseIndex).Reference, 0)
	return nil
}

// Sync marks a sync point. There is no backend; this only records the time.
func (s *Store) Sync(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSync = now
	s.notify(models.NotifySynced, "", 0)
	log.Debug().Time("at", now).Msg("auto-sync completed")
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		State:    s.state.Clone(),
		Habits:   append([]models.Habit(nil), s.habits...),
		Now:      s.now,
		LastSync: s.lastSync,
	}
}

// Drain returns pending notifications in emission order and clears them.
func (s *Store) Drain() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

func (s *Store) notify(kind models.NotificationKind, subject string, count int) {
	at := s.now
	if at.IsZero() {
		at = time.Now()
	}
	s.pending = append(s.pending, models.Notification{Kind: kind, Subject: subject, Count: count, At: at})
}

// commit saves next and only then makes it the current state, so a failed
// write leaves memory as it was.
func (s *Store) commit(ctx context.Context, next models.AppState) error {
	if err := s.repo.SaveState(ctx, s.key, next); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("save state failed")
		return err
	}
	s.state = next
	return nil
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
