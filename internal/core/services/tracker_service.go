package services

import (
	"errors"
	"fmt"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

var (
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrInvalidDocument     = errors.New("invalid document")
)

// StateStore persists the single tracker document. The disk store and the
// in-memory test double both satisfy it.
type StateStore interface {
	Load() *domain.AppState
	Save(s *domain.AppState) error
	Reset() error
}

// TrackerService orchestrates the pure engine over a persisted document. All
// mutations funnel through Apply, so a transform that returns its input
// untouched costs no write.
type TrackerService struct {
	store StateStore
	state *domain.AppState
}

func NewTrackerService(store StateStore) *TrackerService {
	return &TrackerService{
		store: store,
		state: store.Load(),
	}
}

// State returns the current document. Callers must treat it as read-only.
func (s *TrackerService) State() *domain.AppState {
	return s.state
}

// Apply runs a pure transform and persists the result when it actually
// changed. Transforms signal "nothing happened" by returning their input
// pointer unchanged.
func (s *TrackerService) Apply(fn func(*domain.AppState) *domain.AppState) error {
	next := fn(s.state)
	if next == s.state {
		return nil
	}

	if err := s.store.Save(next); err != nil {
		return fmt.Errorf("tracker service: failed to persist state: %w", err)
	}

	s.state = next
	return nil
}

func (s *TrackerService) ToggleBasic(date, basicID string) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.ToggleBasicCompletion(st, date, basicID)
	})
}

func (s *TrackerService) ToggleHabit(date, habitID string) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.ToggleHabitCompletion(st, date, habitID)
	})
}

func (s *TrackerService) SetGoalCount(date, goalID string, count int) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.SetMonthlyGoalCountForDay(st, date, goalID, count)
	})
}

func (s *TrackerService) SetReflection(date, text string) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.SetReflection(st, date, text)
	})
}

// AddGalleryHabit tracks a habit from the built-in gallery, localizing its
// name with the document's locale.
func (s *TrackerService) AddGalleryHabit(galleryID string) error {
	g, ok := domain.GalleryHabitByID(galleryID)
	if !ok {
		return fmt.Errorf("%w: habit %q", ErrGalleryItemNotFound, galleryID)
	}

	habit := domain.TrackedHabit(g, s.state.Locale)
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.AddHabit(st, habit)
	})
}

func (s *TrackerService) AddCustomHabit(name string, category domain.Category, target int) (domain.DailyHabit, error) {
	habit, err := domain.NewCustomHabit(name, category, target)
	if err != nil {
		return domain.DailyHabit{}, err
	}

	err = s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.AddHabit(st, habit)
	})
	return habit, err
}

func (s *TrackerService) RemoveHabit(id string) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.RemoveHabit(st, id)
	})
}

func (s *TrackerService) ToggleHabitEnabled(id string) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.ToggleHabitEnabled(st, id)
	})
}

func (s *TrackerService) AddGalleryGoal(galleryID string) error {
	g, ok := domain.GalleryGoalByID(galleryID)
	if !ok {
		return fmt.Errorf("%w: goal %q", ErrGalleryItemNotFound, galleryID)
	}

	goal := domain.TrackedGoal(g, s.state.Locale)
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.AddMonthlyGoal(st, goal)
	})
}

func (s *TrackerService) AddCustomGoal(name string, category domain.Category, target int) (domain.MonthlyGoal, error) {
	goal, err := domain.NewCustomGoal(name, category, target)
	if err != nil {
		return domain.MonthlyGoal{}, err
	}

	err = s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.AddMonthlyGoal(st, goal)
	})
	return goal, err
}

func (s *TrackerService) RemoveGoal(id string) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.RemoveMonthlyGoal(st, id)
	})
}

func (s *TrackerService) ToggleBasicEnabled(basicID string) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.ToggleBasicEnabled(st, basicID)
	})
}

func (s *TrackerService) SetRamadanStartDate(date string) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.SetRamadanStartDate(st, date)
	})
}

func (s *TrackerService) SetLocale(locale string) error {
	return s.Apply(func(st *domain.AppState) *domain.AppState {
		return domain.SetLocale(st, locale)
	})
}

func (s *TrackerService) CompleteSetup() error {
	return s.Apply(domain.CompleteSetup)
}

func (s *TrackerService) DayStats(date string) domain.DayStats {
	return domain.ComputeDayStats(s.state, date)
}

func (s *TrackerService) CurrentStreak(today string) int {
	return domain.CurrentStreak(s.state, today)
}

func (s *TrackerService) LongestStreak() int {
	return domain.LongestStreak(s.state)
}

func (s *TrackerService) TotalCompleted() int {
	return domain.TotalCompleted(s.state)
}

func (s *TrackerService) GoalProgress(goalID string) int {
	return domain.MonthlyGoalProgress(s.state, goalID)
}

func (s *TrackerService) Grid(today string) []domain.GridDay {
	return domain.GridStatus(s.state, today)
}

// Export serializes the whole document for backup.
func (s *TrackerService) Export() (string, error) {
	return domain.Export(s.state)
}

// Import replaces the document with a backup, migrating old schema versions.
// The previous document survives untouched when the text is not plausible.
func (s *TrackerService) Import(text string) error {
	imported := domain.Import(text)
	if imported == nil {
		return ErrInvalidDocument
	}

	if err := s.store.Save(imported); err != nil {
		return fmt.Errorf("tracker service: failed to persist imported state: %w", err)
	}

	s.state = imported
	return nil
}

// Reset wipes the document back to first-run defaults, keeping the locale.
func (s *TrackerService) Reset() error {
	locale := s.state.Locale
	if err := s.store.Reset(); err != nil {
		return fmt.Errorf("tracker service: failed to reset state: %w", err)
	}

	s.state = domain.DefaultState(locale)
	return s.store.Save(s.state)
}
