package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

// run executes the CLI against an isolated store rooted in a temp dir.
func run(t *testing.T, args ...string) error {
	t.Helper()

	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func isolateStore(t *testing.T) {
	t.Helper()
	t.Setenv("DAYMA_PATH", t.TempDir())
}

func TestInitCommand(t *testing.T) {
	isolateStore(t)

	require.NoError(t, run(t, "init", "--locale", "ar", "--start", "2026-02-19"))

	tracker, err := loadTracker()
	require.NoError(t, err)

	s := tracker.State()
	assert.True(t, s.SetupComplete)
	assert.Equal(t, "ar", s.Locale)
	assert.Equal(t, "2026-02-19", s.RamadanStartDate)
}

func TestInitCommand_RejectsBadStartDate(t *testing.T) {
	isolateStore(t)

	err := run(t, "init", "--start", "19-02-2026")
	assert.Error(t, err)
}

func TestInitCommand_RejectsUnknownLocale(t *testing.T) {
	isolateStore(t)

	err := run(t, "init", "--locale", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")

	tracker, err := loadTracker()
	require.NoError(t, err)
	assert.Equal(t, "en", tracker.State().Locale, "a rejected locale must not stick")
}

func TestCheckCommand(t *testing.T) {
	isolateStore(t)
	require.NoError(t, run(t, "init"))

	t.Run("Success: toggles a basic for a day", func(t *testing.T) {
		require.NoError(t, run(t, "check", "fajr", "--on", "2026-02-20"))

		tracker, err := loadTracker()
		require.NoError(t, err)
		assert.True(t, tracker.State().Days["2026-02-20"].Basics["fajr"])
	})

	t.Run("Success: toggles a tracked habit", func(t *testing.T) {
		require.NoError(t, run(t, "habit", "add", "quran-daily"))
		require.NoError(t, run(t, "check", "quran-daily", "--on", "2026-02-20"))

		tracker, err := loadTracker()
		require.NoError(t, err)
		assert.True(t, tracker.State().Days["2026-02-20"].Completions["quran-daily"])
	})

	t.Run("Fail: unknown id", func(t *testing.T) {
		err := run(t, "check", "night-jog")
		assert.Error(t, err)
	})
}

func TestHabitCommands(t *testing.T) {
	isolateStore(t)
	require.NoError(t, run(t, "init"))

	t.Run("Success: adds a custom habit", func(t *testing.T) {
		require.NoError(t, run(t, "habit", "add", "--custom", "Call my parents", "--category", "charity"))

		tracker, err := loadTracker()
		require.NoError(t, err)

		require.Len(t, tracker.State().DailyHabits, 1)
		h := tracker.State().DailyHabits[0]
		assert.Equal(t, "Call my parents", h.Name)
		assert.Equal(t, domain.CategoryCharity, h.Category)
		assert.Equal(t, domain.SourceCustom, h.Source)
	})

	t.Run("Success: disables and removes", func(t *testing.T) {
		tracker, err := loadTracker()
		require.NoError(t, err)
		id := tracker.State().DailyHabits[0].ID

		require.NoError(t, run(t, "habit", "toggle", id))

		tracker, err = loadTracker()
		require.NoError(t, err)
		h, _ := tracker.State().HabitByID(id)
		assert.False(t, h.Enabled)

		require.NoError(t, run(t, "habit", "rm", id))

		tracker, err = loadTracker()
		require.NoError(t, err)
		assert.Empty(t, tracker.State().DailyHabits)
	})

	t.Run("Fail: removing an unknown habit", func(t *testing.T) {
		err := run(t, "habit", "rm", "no-such-habit")
		assert.Error(t, err)
	})

	t.Run("Success: disables a basic", func(t *testing.T) {
		require.NoError(t, run(t, "habit", "basic", "dhuhr"))

		tracker, err := loadTracker()
		require.NoError(t, err)
		assert.False(t, tracker.State().BasicEnabled("dhuhr"))
	})
}

func TestGoalCommands(t *testing.T) {
	isolateStore(t)
	require.NoError(t, run(t, "init"))

	t.Run("Success: adopts a gallery goal and logs counts", func(t *testing.T) {
		require.NoError(t, run(t, "goal", "add", "monthly-khatm"))
		require.NoError(t, run(t, "log", "monthly-khatm", "2", "--on", "2026-02-19"))
		require.NoError(t, run(t, "log", "monthly-khatm", "3", "--on", "2026-02-20"))

		tracker, err := loadTracker()
		require.NoError(t, err)
		assert.Equal(t, 5, tracker.GoalProgress("monthly-khatm"))
	})

	t.Run("Fail: logging against an unknown goal", func(t *testing.T) {
		err := run(t, "log", "no-such-goal", "1")
		assert.Error(t, err)
	})

	t.Run("Fail: count must be numeric", func(t *testing.T) {
		err := run(t, "log", "monthly-khatm", "two")
		assert.Error(t, err)
	})

	t.Run("Success: removes the goal and its counts", func(t *testing.T) {
		require.NoError(t, run(t, "goal", "rm", "monthly-khatm"))

		tracker, err := loadTracker()
		require.NoError(t, err)
		assert.Empty(t, tracker.State().MonthlyGoals)
	})
}

func TestReflectCommand(t *testing.T) {
	isolateStore(t)
	require.NoError(t, run(t, "init"))

	require.NoError(t, run(t, "reflect", "--on", "2026-02-20", "Alhamdulillah", "for", "today"))

	tracker, err := loadTracker()
	require.NoError(t, err)
	assert.Equal(t, "Alhamdulillah for today", tracker.State().Days["2026-02-20"].Reflection)
}

func TestImportCommand(t *testing.T) {
	isolateStore(t)
	require.NoError(t, run(t, "init"))

	donor := domain.DefaultState("en")
	donor = domain.CompleteSetup(donor)
	donor = domain.ToggleBasicCompletion(donor, "2026-02-20", "isha")
	text, err := domain.Export(donor)
	require.NoError(t, err)

	backup := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(backup, []byte(text), 0o644))

	t.Run("Success: replaces the document from a backup file", func(t *testing.T) {
		require.NoError(t, run(t, "import", backup))

		tracker, err := loadTracker()
		require.NoError(t, err)
		assert.True(t, tracker.State().Days["2026-02-20"].Basics["isha"])
	})

	t.Run("Fail: implausible backup leaves the document alone", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"hello": "world"}`), 0o644))

		err := run(t, "import", bad)
		assert.Error(t, err)

		tracker, err := loadTracker()
		require.NoError(t, err)
		assert.True(t, tracker.State().Days["2026-02-20"].Basics["isha"])
	})
}

func TestResetCommand(t *testing.T) {
	isolateStore(t)
	require.NoError(t, run(t, "init", "--locale", "ar"))
	require.NoError(t, run(t, "check", "fajr", "--on", "2026-02-20"))

	t.Run("Fail: refuses without --yes", func(t *testing.T) {
		err := run(t, "reset")
		assert.Error(t, err)
	})

	t.Run("Success: wipes data but keeps the locale", func(t *testing.T) {
		require.NoError(t, run(t, "reset", "--yes"))

		tracker, err := loadTracker()
		require.NoError(t, err)
		assert.Empty(t, tracker.State().Days)
		assert.Equal(t, "ar", tracker.State().Locale)
	})
}
