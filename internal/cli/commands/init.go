package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

func addInit(topLevel *cobra.Command) {
	var locale string
	var start string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up the tracker for this Ramadan.",
		Example: `
dayma init
dayma init --locale ar --start 2026-02-18
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}

			if locale != "" {
				if !localeSupported(locale) {
					return fmt.Errorf("unsupported locale %q, pick one of: %s",
						locale, strings.Join(domain.SupportedLocales(), ", "))
				}
				if err := t.SetLocale(locale); err != nil {
					return err
				}
			}
			if start != "" {
				if _, err := resolveOn(start); err != nil {
					return err
				}
				if err := t.SetRamadanStartDate(start); err != nil {
					return err
				}
			}
			if err := t.CompleteSetup(); err != nil {
				return err
			}

			fmt.Printf("Tracker ready. Ramadan starts %s.\n", t.State().RamadanStartDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "",
		"Display locale, one of: "+strings.Join(domain.SupportedLocales(), ", ")+".")
	cmd.Flags().StringVar(&start, "start", "", "First day of Ramadan (YYYY-MM-DD).")

	topLevel.AddCommand(cmd)
}

func localeSupported(locale string) bool {
	for _, l := range domain.SupportedLocales() {
		if l == locale {
			return true
		}
	}
	return false
}
