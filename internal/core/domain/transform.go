package domain

// Transforms are the only way the document changes. Each one takes the current
// document plus parameters and returns a new document, leaving the input
// untouched. When nothing changes the same pointer comes back, which lets
// callers skip a pointless persist.

// EnsureDayEntry lazily creates the entry for a date. Every enabled basic
// starts unchecked: the user confirms each one for the day by checking it.
// Re-invoking on an existing date is a reference-stable no-op and never
// overwrites recorded data.
func EnsureDayEntry(s *AppState, date string) *AppState {
	if _, ok := s.Days[date]; ok {
		return s
	}

	entry := &DayEntry{
		Basics:                 make(map[string]bool, len(s.EnabledBasics)),
		Completions:            map[string]bool{},
		MonthlyGoalCompletions: map[string]GoalCount{},
	}
	for _, id := range s.EnabledBasics {
		entry.Basics[id] = false
	}

	out := s.clone()
	out.Days[date] = entry
	return out
}

// mutateEntry ensures the entry exists, clones the write path, and hands the
// fresh entry to fn.
func mutateEntry(s *AppState, date string, fn func(e *DayEntry)) *AppState {
	s = EnsureDayEntry(s, date)
	out := s.clone()
	entry := out.Days[date].clone()
	fn(entry)
	out.Days[date] = entry
	return out
}

// ToggleBasicCompletion flips one basic for one date.
func ToggleBasicCompletion(s *AppState, date, basicID string) *AppState {
	return mutateEntry(s, date, func(e *DayEntry) {
		e.Basics[basicID] = !e.Basics[basicID]
	})
}

// ToggleHabitCompletion flips one daily habit for one date.
func ToggleHabitCompletion(s *AppState, date, habitID string) *AppState {
	return mutateEntry(s, date, func(e *DayEntry) {
		e.Completions[habitID] = !e.Completions[habitID]
	})
}

// SetMonthlyGoalCountForDay records the day's contribution toward a monthly
// goal. Negative counts clamp to zero; nothing clamps against the goal's
// target, since exceeding it is a valid state.
func SetMonthlyGoalCountForDay(s *AppState, date, goalID string, count int) *AppState {
	return mutateEntry(s, date, func(e *DayEntry) {
		e.MonthlyGoalCompletions[goalID] = NewGoalCount(count)
	})
}

// SetReflection stores the free-text note for a date.
func SetReflection(s *AppState, date, text string) *AppState {
	return mutateEntry(s, date, func(e *DayEntry) {
		e.Reflection = text
	})
}

// AddHabit appends a habit, keeping at most one per id. A duplicate id is a
// reference-stable no-op.
func AddHabit(s *AppState, h DailyHabit) *AppState {
	if _, ok := s.HabitByID(h.ID); ok {
		return s
	}
	out := s.clone()
	out.DailyHabits = append(out.DailyHabits, h)
	return out
}

// RemoveHabit drops a habit by id. Recorded completions on past days are kept.
func RemoveHabit(s *AppState, id string) *AppState {
	if _, ok := s.HabitByID(id); !ok {
		return s
	}
	out := s.clone()
	habits := out.DailyHabits[:0:0]
	for _, h := range out.DailyHabits {
		if h.ID != id {
			habits = append(habits, h)
		}
	}
	out.DailyHabits = habits
	return out
}

// ToggleHabitEnabled flips the enabled flag without touching history. Past
// statistics are still computed against the current enabled set; see the note
// on ComputeDayStats.
func ToggleHabitEnabled(s *AppState, id string) *AppState {
	idx := -1
	for i, h := range s.DailyHabits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	out := s.clone()
	out.DailyHabits[idx].Enabled = !out.DailyHabits[idx].Enabled
	return out
}

// AddMonthlyGoal appends a goal, keeping at most one per id.
func AddMonthlyGoal(s *AppState, g MonthlyGoal) *AppState {
	if _, ok := s.GoalByID(g.ID); ok {
		return s
	}
	out := s.clone()
	out.MonthlyGoals = append(out.MonthlyGoals, g)
	return out
}

// RemoveMonthlyGoal drops a goal by id.
func RemoveMonthlyGoal(s *AppState, id string) *AppState {
	if _, ok := s.GoalByID(id); !ok {
		return s
	}
	out := s.clone()
	goals := out.MonthlyGoals[:0:0]
	for _, g := range out.MonthlyGoals {
		if g.ID != id {
			goals = append(goals, g)
		}
	}
	out.MonthlyGoals = goals
	return out
}

// ToggleBasicEnabled adds or removes a basic from the enabled set. New days
// created afterwards reflect the change; existing entries are untouched.
func ToggleBasicEnabled(s *AppState, basicID string) *AppState {
	out := s.clone()
	for i, id := range out.EnabledBasics {
		if id == basicID {
			out.EnabledBasics = append(out.EnabledBasics[:i], out.EnabledBasics[i+1:]...)
			return out
		}
	}
	out.EnabledBasics = append(out.EnabledBasics, basicID)
	return out
}

// SetRamadanStartDate re-anchors day numbering for the whole document. The
// date must parse; otherwise the document is returned unchanged.
func SetRamadanStartDate(s *AppState, date string) *AppState {
	if _, ok := ParseDate(date); !ok {
		return s
	}
	out := s.clone()
	out.RamadanStartDate = date
	return out
}

// SetLocale switches the display language. Logic never depends on it.
func SetLocale(s *AppState, locale string) *AppState {
	if locale == "" || locale == s.Locale {
		return s
	}
	out := s.clone()
	out.Locale = locale
	return out
}

// CompleteSetup closes the first-run flow.
func CompleteSetup(s *AppState) *AppState {
	if s.SetupComplete {
		return s
	}
	out := s.clone()
	out.SetupComplete = true
	return out
}
