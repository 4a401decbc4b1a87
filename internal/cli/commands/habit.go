package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

func addHabit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage tracked daily habits.",
		Example: `
dayma habit add quran-daily
dayma habit add --custom "Call my parents" --category charity
dayma habit rm custom-3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addHabitAdd(cmd)
	addHabitRemove(cmd)
	addHabitToggle(cmd)
	addBasicToggle(cmd)

	topLevel.AddCommand(cmd)
}

func addHabitAdd(topLevel *cobra.Command) {
	var custom string
	var category string
	var target int

	cmd := &cobra.Command{
		Use:   "add [gallery-id]",
		Short: "Track a gallery habit, or a custom one with --custom.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}

			if custom != "" {
				h, err := t.AddCustomHabit(custom, domain.Category(category), target)
				if err != nil {
					return err
				}
				fmt.Printf("Tracking %q as %s.\n", h.Name, h.ID)
				return nil
			}

			if len(args) != 1 {
				return errors.New("requires a gallery id, or --custom with a name")
			}
			if err := t.AddGalleryHabit(args[0]); err != nil {
				return err
			}
			fmt.Printf("Tracking %s.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&custom, "custom", "", "Name for a habit that is not in the gallery.")
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryLearning), "Category for a custom habit.")
	cmd.Flags().IntVar(&target, "target", 0, "Optional daily count target for a custom habit.")

	topLevel.AddCommand(cmd)
}

func addHabitRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Stop tracking a habit and drop its history.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}
			if _, ok := t.State().HabitByID(args[0]); !ok {
				return fmt.Errorf("no habit with id %q", args[0])
			}
			if err := t.RemoveHabit(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %s.\n", args[0])
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addHabitToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Enable or disable a habit without losing its history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}
			if _, ok := t.State().HabitByID(args[0]); !ok {
				return fmt.Errorf("no habit with id %q", args[0])
			}
			if err := t.ToggleHabitEnabled(args[0]); err != nil {
				return err
			}

			h, _ := t.State().HabitByID(args[0])
			state := "disabled"
			if h.Enabled {
				state = "enabled"
			}
			fmt.Printf("%s is now %s.\n", args[0], state)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addBasicToggle(topLevel *cobra.Command) {
	ids := make([]string, 0, len(domain.Basics()))
	for _, b := range domain.Basics() {
		ids = append(ids, b.ID)
	}

	cmd := &cobra.Command{
		Use:   "basic <id>",
		Short: "Enable or disable one of the fixed basics.",
		Long:  "Enable or disable one of the fixed basics: " + strings.Join(ids, ", ") + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}
			if _, ok := domain.BasicByID(args[0]); !ok {
				return fmt.Errorf("no basic with id %q", args[0])
			}
			if err := t.ToggleBasicEnabled(args[0]); err != nil {
				return err
			}

			state := "disabled"
			if t.State().BasicEnabled(args[0]) {
				state = "enabled"
			}
			fmt.Printf("%s is now %s.\n", args[0], state)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
