package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addReflect(topLevel *cobra.Command) {
	var on string

	cmd := &cobra.Command{
		Use:   "reflect <text>",
		Short: "Write the day's reflection note.",
		Example: `
dayma reflect Alhamdulillah for an easy fast today
dayma reflect --on 2026-02-20 "A slow day"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the reflection text")
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

			if err := t.SetReflection(date, strings.Join(args, " ")); err != nil {
				return err
			}

			fmt.Printf("Reflection saved for %s.\n", date)
			return nil
		},
	}

	addOnFlag(cmd, &on)

	topLevel.AddCommand(cmd)
}
