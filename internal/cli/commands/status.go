package commands

import (
	"github.com/spf13/cobra"
)

func addStatus(topLevel *cobra.Command) {
	var on string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the checklist, goals and streaks for a day.",
		Example: `
dayma status
dayma status --on 2026-02-20
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}
			date, err := resolveOn(on)
			if err != nil {
				return err
			}

			s := t.State()

			pp.NewLine()
			pp.DayHeader(s, date)
			pp.NewLine()
			pp.Checklist(s, date)
			pp.Reflection(s, date)

			pp.NewLine()
			pp.Goals(s)

			pp.NewLine()
			pp.Streaks(t.CurrentStreak(today()), t.LongestStreak(), t.TotalCompleted())

			return nil
		},
	}

	addOnFlag(cmd, &on)

	topLevel.AddCommand(cmd)
}
