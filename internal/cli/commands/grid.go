package commands

import (
	"github.com/spf13/cobra"
)

func addGrid(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Show the 30-day month grid.",
		Example: `
dayma grid
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}

			pp.NewLine()
			pp.Grid(t.Grid(today()))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
