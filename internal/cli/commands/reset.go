package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func addReset(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all tracked data back to first-run defaults.",
		Example: `
dayma reset --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this deletes all tracked data, re-run with --yes to confirm")
			}

			t, err := loadTracker()
			if err != nil {
				return err
			}
			if err := t.Reset(); err != nil {
				return err
			}

			fmt.Println("Tracker reset.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the wipe.")

	topLevel.AddCommand(cmd)
}
