package domain

import (
	"math"
	"sort"
)

// Streak and grid thresholds: a day counts toward a streak at or above
// StreakThreshold percent, and shows as perfect at or above PerfectThreshold.
const (
	StreakThreshold  = 50
	PerfectThreshold = 90
)

// DayStats is the derived completion summary for one calendar date.
type DayStats struct {
	BasicsTotal int `json:"basics_total"`
	BasicsDone  int `json:"basics_done"`
	DailyTotal  int `json:"daily_total"`
	DailyDone   int `json:"daily_done"`
	MonthlyDone int `json:"monthly_done"`
	Percent     int `json:"percent"`
}

// ComputeDayStats derives the completion summary for a date. Totals come from
// the currently enabled basics and habits, not from whatever was enabled when
// the entry was created, so disabling a habit reshapes past percentages too.
//
// The percent is existence-sensitive: a date with no entry is always 0, and a
// date whose entry exists but has zero trackable items is vacuously 100.
func ComputeDayStats(s *AppState, date string) DayStats {
	st := DayStats{BasicsTotal: len(s.EnabledBasics)}
	for _, h := range s.DailyHabits {
		if h.Enabled {
			st.DailyTotal++
		}
	}

	entry, ok := s.Days[date]
	if !ok {
		return st
	}

	for _, id := range s.EnabledBasics {
		if entry.Basics[id] {
			st.BasicsDone++
		}
	}
	for _, h := range s.DailyHabits {
		if h.Enabled && entry.Completions[h.ID] {
			st.DailyDone++
		}
	}
	for _, gc := range entry.MonthlyGoalCompletions {
		if gc.Done() {
			st.MonthlyDone++
		}
	}

	total := st.BasicsTotal + st.DailyTotal
	if total == 0 {
		st.Percent = 100
		return st
	}

	st.Percent = int(math.Round(100 * float64(st.BasicsDone+st.DailyDone) / float64(total)))
	if st.Percent > 100 {
		st.Percent = 100
	}
	return st
}

// streakFloor bounds backward walks: a streak cannot extend to dates before
// tracking began, meaning the earlier of the Ramadan start and the earliest
// recorded entry.
func streakFloor(s *AppState) string {
	floor := s.RamadanStartDate
	for date := range s.Days {
		if floor == "" || date < floor {
			floor = date
		}
	}
	return floor
}

// CurrentStreak counts consecutive qualifying days ending today, walking
// backward day by day. A day qualifies when it has no trackable items at all
// (vacuous pass) or its entry reaches the streak threshold. Today itself is
// exempt only when untouched: an absent entry today does not break the run,
// but a below-threshold one does.
func CurrentStreak(s *AppState, today string) int {
	if _, ok := ParseDate(today); !ok {
		return 0
	}

	floor := streakFloor(s)
	streak := 0

	for date := today; date >= floor; date = AddDays(date, -1) {
		st := ComputeDayStats(s, date)
		_, exists := s.Days[date]

		switch {
		case st.BasicsTotal+st.DailyTotal == 0:
			streak++
		case exists && st.Percent >= StreakThreshold:
			streak++
		case !exists && date == today:
			// nothing recorded yet today; the run continues from yesterday
		default:
			return streak
		}
	}

	return streak
}

// LongestStreak scans every recorded date in ascending order and extends a run
// only when the date is exactly one calendar day after the previous counted
// date and meets the streak threshold. Unlike CurrentStreak it has no "today"
// anchor.
func LongestStreak(s *AppState) int {
	dates := make([]string, 0, len(s.Days))
	for date := range s.Days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	longest, run := 0, 0
	prev := ""

	for _, date := range dates {
		if ComputeDayStats(s, date).Percent < StreakThreshold {
			run, prev = 0, ""
			continue
		}
		if prev != "" && AddDays(prev, 1) == date {
			run++
		} else {
			run = 1
		}
		prev = date
		if run > longest {
			longest = run
		}
	}

	return longest
}

// TotalCompleted sums habit check-offs plus goal day-flags across all days.
// Goals count as present-or-absent here (one per touched day), matching the
// legacy boolean accounting rather than MonthlyGoalProgress's numeric sum.
func TotalCompleted(s *AppState) int {
	total := 0
	for _, entry := range s.Days {
		for _, done := range entry.Completions {
			if done {
				total++
			}
		}
		for _, gc := range entry.MonthlyGoalCompletions {
			if gc.Done() {
				total++
			}
		}
	}
	return total
}

// MonthlyGoalProgress sums the per-day counts of one goal over every recorded
// day: a legacy boolean flag counts as one, a numeric day contributes its full
// count. There is no cap at the goal's target.
func MonthlyGoalProgress(s *AppState, goalID string) int {
	total := 0
	for _, entry := range s.Days {
		gc, ok := entry.MonthlyGoalCompletions[goalID]
		if !ok {
			continue
		}
		if gc.Legacy {
			if gc.Done() {
				total++
			}
			continue
		}
		total += gc.Count
	}
	return total
}

// GridDayStatus classifies a calendar day for the 30-day grid.
type GridDayStatus string

const (
	GridFuture      GridDayStatus = "future"
	GridToday       GridDayStatus = "today"
	GridPastEmpty   GridDayStatus = "past-empty"
	GridPastPartial GridDayStatus = "past-partial"
	GridPastGood    GridDayStatus = "past-good"
	GridPastPerfect GridDayStatus = "past-perfect"
)

// GridDay is one cell of the 30-day grid.
type GridDay struct {
	Day               int           `json:"day"`
	Date              string        `json:"date"`
	Status            GridDayStatus `json:"status"`
	CompletionPercent int           `json:"completion_percent"`
}

// GridStatus builds the 30 cells of the month grid anchored at the document's
// Ramadan start. A past date with no entry is always past-empty, whatever the
// zero-entry percent says.
func GridStatus(s *AppState, today string) []GridDay {
	grid := make([]GridDay, 0, RamadanDays)

	for day := 1; day <= RamadanDays; day++ {
		date := AddDays(s.RamadanStartDate, day-1)
		st := ComputeDayStats(s, date)

		cell := GridDay{Day: day, Date: date, CompletionPercent: st.Percent}
		_, exists := s.Days[date]

		switch {
		case date > today:
			cell.Status = GridFuture
		case date == today:
			cell.Status = GridToday
		case !exists:
			cell.Status = GridPastEmpty
		case st.Percent >= PerfectThreshold:
			cell.Status = GridPastPerfect
		case st.Percent >= StreakThreshold:
			cell.Status = GridPastGood
		default:
			cell.Status = GridPastPartial
		}

		grid = append(grid, cell)
	}

	return grid
}
