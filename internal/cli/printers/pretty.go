// Package printers renders tracker state for the terminal.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(color.Output, t.Sprint(title))
}

// DayHeader prints the date with its Ramadan day number and percent.
func (pp *PrettyPrint) DayHeader(s *domain.AppState, date string) {
	st := domain.ComputeDayStats(s, date)
	day := domain.RamadanDay(date, s.RamadanStartDate)

	t := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)

	_, _ = t.Fprintf(color.Output, "%s", date)
	if day >= 1 && day <= domain.RamadanDays {
		_, _ = f.Fprintf(color.Output, "  Ramadan day %d", day)
	}
	_, _ = pp.percentPrinter(st.Percent).Fprintf(color.Output, "  %d%%\n", st.Percent)
}

// Checklist prints the basics and enabled habits for one date.
func (pp *PrettyPrint) Checklist(s *domain.AppState, date string) {
	entry := s.Days[date]

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, b := range domain.Basics() {
		if !s.BasicEnabled(b.ID) {
			continue
		}
		done := entry != nil && entry.Basics[b.ID]
		tbl.AddRow(pp.mark(done), b.ID, domain.Translate(s.Locale, b.LabelKey))
	}
	for _, h := range s.DailyHabits {
		if !h.Enabled {
			continue
		}
		done := entry != nil && entry.Completions[h.ID]
		tbl.AddRow(pp.mark(done), h.ID, h.Name)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Goals prints monthly goals with month-to-date progress.
func (pp *PrettyPrint) Goals(s *domain.AppState) {
	if len(s.MonthlyGoals) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = fmt.Fprintln(color.Output, f.Sprint(" no monthly goals"))
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Goal"), bold.Sprint("Progress"), bold.Sprint("Target"))
	for _, g := range s.MonthlyGoals {
		progress := domain.MonthlyGoalProgress(s, g.ID)
		p := color.New()
		if progress >= g.Target {
			p = color.New(color.FgHiGreen)
		}
		tbl.AddRow(g.Name, p.Sprintf("%d", progress), fmt.Sprintf("%d", g.Target))
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Grid prints the 30-day month grid, one week of cells per line.
func (pp *PrettyPrint) Grid(cells []domain.GridDay) {
	for i, cell := range cells {
		_, _ = pp.cellPrinter(cell.Status).Fprintf(color.Output, "%2d ", cell.Day)
		if (i+1)%7 == 0 {
			_, _ = fmt.Fprintln(color.Output, "")
		}
	}
	_, _ = fmt.Fprint(color.Output, "\n\n")

	f := color.New(color.Faint)
	_, _ = f.Fprintln(color.Output, "faint: untouched  yellow: partial  green: good  bright green: perfect")
}

// Streaks prints the derived streak numbers.
func (pp *PrettyPrint) Streaks(current, longest, total int) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Current streak"), fmt.Sprintf("%d", current))
	tbl.AddRow(bold.Sprint("Longest streak"), fmt.Sprintf("%d", longest))
	tbl.AddRow(bold.Sprint("Habits completed"), fmt.Sprintf("%d", total))

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Reflection prints the free-text note for a date, if any.
func (pp *PrettyPrint) Reflection(s *domain.AppState, date string) {
	entry := s.Days[date]
	if entry == nil || entry.Reflection == "" {
		return
	}

	i := color.New(color.Italic)
	_, _ = i.Fprintf(color.Output, "%q\n", entry.Reflection)
}

// Gallery prints the curated habit and goal templates.
func (pp *PrettyPrint) Gallery(locale string) {
	bold := color.New(color.Bold)

	pp.Title("Habit gallery")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Category"))
	for _, g := range domain.HabitGallery() {
		tbl.AddRow(g.ID, domain.Translate(locale, g.LabelKey), string(g.Category))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	pp.NewLine()
	pp.Title("Goal gallery")
	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Target"))
	for _, g := range domain.GoalGallery() {
		tbl.AddRow(g.ID, domain.Translate(locale, g.LabelKey), fmt.Sprintf("%d", g.DefaultTarget))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) mark(done bool) string {
	if done {
		return color.New(color.FgHiGreen).Sprint("✔")
	}
	return color.New(color.Faint).Sprint("·")
}

func (pp *PrettyPrint) percentPrinter(percent int) *color.Color {
	switch {
	case percent >= domain.PerfectThreshold:
		return color.New(color.FgHiGreen, color.Bold)
	case percent >= domain.StreakThreshold:
		return color.New(color.FgGreen)
	case percent > 0:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Faint)
	}
}

func (pp *PrettyPrint) cellPrinter(status domain.GridDayStatus) *color.Color {
	switch status {
	case domain.GridToday:
		return color.New(color.FgHiCyan, color.Bold, color.Underline)
	case domain.GridPastPerfect:
		return color.New(color.FgHiGreen, color.Bold)
	case domain.GridPastGood:
		return color.New(color.FgGreen)
	case domain.GridPastPartial:
		return color.New(color.FgYellow)
	case domain.GridFuture:
		return color.New(color.Faint, color.Italic)
	default:
		return color.New(color.Faint)
	}
}
