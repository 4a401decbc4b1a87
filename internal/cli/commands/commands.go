// Package commands wires the dayma command line interface.
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HasanAboShally/dayma/internal/adapters/localstore"
	"github.com/HasanAboShally/dayma/internal/cli/printers"
	"github.com/HasanAboShally/dayma/internal/core/domain"
	"github.com/HasanAboShally/dayma/internal/core/services"
)

var pp = &printers.PrettyPrint{}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dayma",
		Short: "Ramadan habit tracking on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addInit(topLevel)
	addStatus(topLevel)
	addGrid(topLevel)
	addCheck(topLevel)
	addHabit(topLevel)
	addGoal(topLevel)
	addLog(topLevel)
	addReflect(topLevel)
	addGallery(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addReset(topLevel)
	addSync(topLevel)
}

func loadTracker() (*services.TrackerService, error) {
	cfg, err := localstore.LoadConfig()
	if err != nil {
		return nil, err
	}
	store, err := localstore.Load(cfg)
	if err != nil {
		return nil, err
	}
	return services.NewTrackerService(store), nil
}

func today() string {
	return domain.FormatDate(time.Now())
}

// addOnFlag registers the shared --on date flag used by day-scoped commands.
func addOnFlag(cmd *cobra.Command, on *string) {
	cmd.Flags().StringVar(on, "on", "", "Date to record against (YYYY-MM-DD, default today).")
}

func resolveOn(on string) (string, error) {
	if on == "" {
		return today(), nil
	}
	if _, ok := domain.ParseDate(on); !ok {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", on)
	}
	return on, nil
}
