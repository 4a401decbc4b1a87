package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

func addCheck(topLevel *cobra.Command) {
	var on string

	cmd := &cobra.Command{
		Use:   "check <id>",
		Short: "Toggle a basic or habit for a day.",
		Example: `
dayma check fajr
dayma check quran-daily --on 2026-02-20
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one basic or habit id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}
			date, err := resolveOn(on)
			if err != nil {
				return err
			}

			id := args[0]
			s := t.State()

			switch {
			case isBasic(id):
				err = t.ToggleBasic(date, id)
			case isTrackedHabit(s, id):
				err = t.ToggleHabit(date, id)
			default:
				return fmt.Errorf("no basic or habit with id %q, see dayma status", id)
			}
			if err != nil {
				return err
			}

			pp.NewLine()
			pp.DayHeader(t.State(), date)
			pp.NewLine()
			pp.Checklist(t.State(), date)
			return nil
		},
	}

	addOnFlag(cmd, &on)

	topLevel.AddCommand(cmd)
}

func isBasic(id string) bool {
	_, ok := domain.BasicByID(id)
	return ok
}

func isTrackedHabit(s *domain.AppState, id string) bool {
	_, ok := s.HabitByID(id)
	return ok
}
