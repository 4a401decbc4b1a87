package domain

import (
	"errors"
	"time"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrGoalNameEmpty    = errors.New("goal name cannot be empty")
	ErrGoalNameTooLong  = errors.New("goal name is too long (max 100 chars)")
	ErrGoalTargetZero   = errors.New("goal target must be positive")
	ErrInvalidCategory  = errors.New("invalid category")
)

const (
	// SchemaVersion is the current shape of the persisted document.
	// Older versions are upgraded by the migration chain in migrate.go.
	SchemaVersion = 4

	DefaultLocale = "en"

	// DefaultRamadanStart anchors day numbering for fresh documents.
	DefaultRamadanStart = "2026-02-18"

	RamadanDays = 30

	MaxNameLen = 100
)

const (
	SourceGallery = "gallery"
	SourceCustom  = "custom"
)

// DailyHabit is a recurring action tracked once per day. Disabling a habit
// hides it from new days but keeps its recorded completions.
type DailyHabit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Source    string    `json:"source"`
	Enabled   bool      `json:"enabled"`
	Target    int       `json:"target,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlyGoal is a numeric-target action summed over the whole month.
// Progress may exceed Target; there is no cap.
type MonthlyGoal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Source    string    `json:"source"`
	Target    int       `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

// DayEntry records everything the user touched on one calendar date.
type DayEntry struct {
	Basics                 map[string]bool      `json:"basics"`
	Completions            map[string]bool      `json:"completions"`
	MonthlyGoalCompletions map[string]GoalCount `json:"monthly_goal_completions"`
	Reflection             string               `json:"reflection,omitempty"`
}

// AppState is the whole persisted document. There is exactly one per device.
// Transforms never mutate it in place: every operation returns a fresh
// document (or the same pointer when nothing changed), so callers can detect
// no-ops by comparing references.
type AppState struct {
	Version          int                  `json:"version"`
	Locale           string               `json:"locale"`
	SetupComplete    bool                 `json:"setup_complete"`
	RamadanStartDate string               `json:"ramadan_start_date"`
	EnabledBasics    []string             `json:"enabled_basics"`
	DailyHabits      []DailyHabit         `json:"daily_habits"`
	MonthlyGoals     []MonthlyGoal        `json:"monthly_goals"`
	Days             map[string]*DayEntry `json:"days"`
}

// DefaultState returns the canonical empty document: setup incomplete, all
// basics enabled, no habits, no goals, no days.
func DefaultState(locale string) *AppState {
	if locale == "" {
		locale = DefaultLocale
	}

	basics := Basics()
	enabled := make([]string, 0, len(basics))
	for _, b := range basics {
		enabled = append(enabled, b.ID)
	}

	return &AppState{
		Version:          SchemaVersion,
		Locale:           locale,
		SetupComplete:    false,
		RamadanStartDate: DefaultRamadanStart,
		EnabledBasics:    enabled,
		DailyHabits:      []DailyHabit{},
		MonthlyGoals:     []MonthlyGoal{},
		Days:             map[string]*DayEntry{},
	}
}

// clone copies the document one level deep. Day entries are shared until a
// transform touches them; the transform clones the entry it writes to.
func (s *AppState) clone() *AppState {
	out := *s
	out.EnabledBasics = append([]string(nil), s.EnabledBasics...)
	out.DailyHabits = append([]DailyHabit(nil), s.DailyHabits...)
	out.MonthlyGoals = append([]MonthlyGoal(nil), s.MonthlyGoals...)
	out.Days = make(map[string]*DayEntry, len(s.Days))
	for date, e := range s.Days {
		out.Days[date] = e
	}
	return &out
}

func (e *DayEntry) clone() *DayEntry {
	out := &DayEntry{
		Basics:                 make(map[string]bool, len(e.Basics)),
		Completions:            make(map[string]bool, len(e.Completions)),
		MonthlyGoalCompletions: make(map[string]GoalCount, len(e.MonthlyGoalCompletions)),
		Reflection:             e.Reflection,
	}
	for k, v := range e.Basics {
		out.Basics[k] = v
	}
	for k, v := range e.Completions {
		out.Completions[k] = v
	}
	for k, v := range e.MonthlyGoalCompletions {
		out.MonthlyGoalCompletions[k] = v
	}
	return out
}

// HabitByID returns the habit and whether it exists.
func (s *AppState) HabitByID(id string) (DailyHabit, bool) {
	for _, h := range s.DailyHabits {
		if h.ID == id {
			return h, true
		}
	}
	return DailyHabit{}, false
}

// GoalByID returns the monthly goal and whether it exists.
func (s *AppState) GoalByID(id string) (MonthlyGoal, bool) {
	for _, g := range s.MonthlyGoals {
		if g.ID == id {
			return g, true
		}
	}
	return MonthlyGoal{}, false
}

// BasicEnabled reports whether the basic id is in the enabled set.
func (s *AppState) BasicEnabled(id string) bool {
	for _, b := range s.EnabledBasics {
		if b == id {
			return true
		}
	}
	return false
}
