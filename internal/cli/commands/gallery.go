package commands

import (
	"github.com/spf13/cobra"
)

func addGallery(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List the curated habit and goal templates.",
		Example: `
dayma gallery
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}

			pp.NewLine()
			pp.Gallery(t.State().Locale)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
