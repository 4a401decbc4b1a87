package domain

import "encoding/json"

// DecodeOrDefault turns a persisted blob into a fully migrated document. It
// never fails: empty, corrupt, or implausible input degrades to the default
// document, so a broken storage cell means "start fresh" rather than a crash.
func DecodeOrDefault(raw []byte, locale string) *AppState {
	if len(raw) == 0 {
		return DefaultState(locale)
	}
	if state := Import(string(raw)); state != nil {
		return state
	}
	return DefaultState(locale)
}

// Export serializes the full document for backup or transfer. The output
// round-trips through Import.
func Export(s *AppState) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Import parses an exported document, routing it through the same migration
// chain as the load path so older exports still come back in the current
// shape. Payloads that are not a plausible document — not a JSON object, or
// lacking a numeric version — yield nil rather than an error; the caller
// decides what to show.
func Import(text string) *AppState {
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil
	}

	version, ok := documentVersion(doc)
	if !ok || version < 1 {
		return nil
	}

	doc = Migrate(doc)

	data, err := json.Marshal(doc)
	if err != nil {
		return nil
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}

	normalize(&state)
	return &state
}

// normalize repairs holes a hand-edited or partial document may carry so the
// rest of the engine never has to nil-check collections.
func normalize(s *AppState) {
	if s.Locale == "" {
		s.Locale = DefaultLocale
	}
	if s.RamadanStartDate == "" {
		s.RamadanStartDate = DefaultRamadanStart
	}
	if s.EnabledBasics == nil {
		s.EnabledBasics = []string{}
	}
	if s.DailyHabits == nil {
		s.DailyHabits = []DailyHabit{}
	}
	if s.MonthlyGoals == nil {
		s.MonthlyGoals = []MonthlyGoal{}
	}
	if s.Days == nil {
		s.Days = map[string]*DayEntry{}
	}
	for _, entry := range s.Days {
		if entry.Basics == nil {
			entry.Basics = map[string]bool{}
		}
		if entry.Completions == nil {
			entry.Completions = map[string]bool{}
		}
		if entry.MonthlyGoalCompletions == nil {
			entry.MonthlyGoalCompletions = map[string]GoalCount{}
		}
	}
}
