package domain_test

import (
	"testing"

	"github.com/HasanAboShally/dayma/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedState(t *testing.T) *domain.AppState {
	t.Helper()

	s := domain.DefaultState("ar")
	s = domain.CompleteSetup(s)
	s = domain.AddHabit(s, galleryHabit(t, "quran-daily"))
	s = domain.AddMonthlyGoal(s, galleryGoal(t, "monthly-charity"))
	s = domain.ToggleBasicCompletion(s, "2026-02-18", "fajr")
	s = domain.ToggleHabitCompletion(s, "2026-02-18", "quran-daily")
	s = domain.SetMonthlyGoalCountForDay(s, "2026-02-19", "monthly-charity", 7)
	s = domain.SetReflection(s, "2026-02-19", "weather was kind")
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	s := populatedState(t)

	text, err := domain.Export(s)
	require.NoError(t, err)

	back := domain.Import(text)
	require.NotNil(t, back)

	assert.Equal(t, s.Version, back.Version)
	assert.Equal(t, s.Locale, back.Locale)
	assert.Equal(t, s.SetupComplete, back.SetupComplete)
	assert.Equal(t, s.RamadanStartDate, back.RamadanStartDate)
	assert.Equal(t, s.EnabledBasics, back.EnabledBasics)
	assert.Equal(t, s.MonthlyGoals, back.MonthlyGoals)
	assert.Equal(t, s.DailyHabits, back.DailyHabits)
	assert.Equal(t, s.Days, back.Days)
}

func TestImportRejectsImplausibleDocuments(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Not JSON at all", "definitely not json"},
		{"JSON but not an object", `[1, 2, 3]`},
		{"Object without version", `{"locale": "en", "days": {}}`},
		{"Version is not a number", `{"version": "four"}`},
		{"Version below the oldest known", `{"version": 0}`},
		{"Empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, domain.Import(tt.text))
		})
	}
}

func TestImportNormalizesSparseDocuments(t *testing.T) {
	s := domain.Import(`{"version": 4}`)
	require.NotNil(t, s)

	assert.NotNil(t, s.Days)
	assert.NotNil(t, s.DailyHabits)
	assert.NotNil(t, s.MonthlyGoals)
	assert.Equal(t, domain.DefaultLocale, s.Locale)
	assert.Equal(t, domain.DefaultRamadanStart, s.RamadanStartDate)
}

func TestDecodeOrDefault(t *testing.T) {
	t.Run("Success: valid blob decodes", func(t *testing.T) {
		text, err := domain.Export(populatedState(t))
		require.NoError(t, err)

		s := domain.DecodeOrDefault([]byte(text), "en")
		assert.Equal(t, "ar", s.Locale)
		assert.Len(t, s.DailyHabits, 1)
	})

	t.Run("Degrade: empty storage starts fresh", func(t *testing.T) {
		s := domain.DecodeOrDefault(nil, "ar")
		require.NotNil(t, s)
		assert.Equal(t, "ar", s.Locale)
		assert.False(t, s.SetupComplete)
	})

	t.Run("Degrade: corrupt storage starts fresh instead of crashing", func(t *testing.T) {
		s := domain.DecodeOrDefault([]byte(`{"version": "corrupt`), "en")
		require.NotNil(t, s)
		assert.Equal(t, domain.SchemaVersion, s.Version)
		assert.Empty(t, s.Days)
	})
}

func TestGoalCountJSON(t *testing.T) {
	t.Run("Legacy booleans re-encode as booleans", func(t *testing.T) {
		s := domain.Import(`{"version": 4, "days": {"2026-02-18": {"monthly_goal_completions": {"monthly-charity": true}}}}`)
		require.NotNil(t, s)

		text, err := domain.Export(s)
		require.NoError(t, err)
		assert.Contains(t, text, `"monthly-charity":true`)
	})

	t.Run("Numeric counts stay numeric", func(t *testing.T) {
		s := domain.SetMonthlyGoalCountForDay(domain.DefaultState("en"), "2026-02-18", "monthly-charity", 7)

		text, err := domain.Export(s)
		require.NoError(t, err)
		assert.Contains(t, text, `"monthly-charity":7`)
	})

	t.Run("Edge Case: negative numbers clamp on decode", func(t *testing.T) {
		s := domain.Import(`{"version": 4, "days": {"2026-02-18": {"monthly_goal_completions": {"monthly-charity": -3}}}}`)
		require.NotNil(t, s)
		assert.Equal(t, 0, s.Days["2026-02-18"].MonthlyGoalCompletions["monthly-charity"].Count)
	})
}
