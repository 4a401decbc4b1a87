package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage monthly goals.",
		Example: `
dayma goal add monthly-khatm
dayma goal add --custom "Memorize Juz Amma" --target 37
dayma goal rm custom-2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGoalAdd(cmd)
	addGoalRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalAdd(topLevel *cobra.Command) {
	var custom string
	var category string
	var target int

	cmd := &cobra.Command{
		Use:   "add [gallery-id]",
		Short: "Adopt a gallery goal, or a custom one with --custom.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}

			if custom != "" {
				g, err := t.AddCustomGoal(custom, domain.Category(category), target)
				if err != nil {
					return err
				}
				fmt.Printf("Added goal %q as %s (target %d).\n", g.Name, g.ID, g.Target)
				return nil
			}

			if len(args) != 1 {
				return errors.New("requires a gallery id, or --custom with a name")
			}
			if err := t.AddGalleryGoal(args[0]); err != nil {
				return err
			}
			fmt.Printf("Added goal %s.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&custom, "custom", "", "Name for a goal that is not in the gallery.")
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryLearning), "Category for a custom goal.")
	cmd.Flags().IntVar(&target, "target", 0, "Whole-month target for a custom goal.")

	topLevel.AddCommand(cmd)
}

func addGoalRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Drop a monthly goal and its recorded counts.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}
			if _, ok := t.State().GoalByID(args[0]); !ok {
				return fmt.Errorf("no goal with id %q", args[0])
			}
			if err := t.RemoveGoal(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %s.\n", args[0])
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addLog(topLevel *cobra.Command) {
	var on string

	cmd := &cobra.Command{
		Use:   "log <goal-id> <count>",
		Short: "Record a day's count toward a monthly goal.",
		Example: `
dayma log monthly-khatm 2
dayma log monthly-charity 1 --on 2026-02-20
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a goal id and a count")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("count must be a number, got %q", args[1])
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

			goal, ok := t.State().GoalByID(args[0])
			if !ok {
				return fmt.Errorf("no goal with id %q", args[0])
			}

			count, _ := strconv.Atoi(args[1])
			if err := t.SetGoalCount(date, args[0], count); err != nil {
				return err
			}

			fmt.Printf("%s: %d on %s, %d/%d for the month.\n",
				goal.Name, count, date, t.GoalProgress(args[0]), goal.Target)
			return nil
		},
	}

	addOnFlag(cmd, &on)

	topLevel.AddCommand(cmd)
}
