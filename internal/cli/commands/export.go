package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole document as JSON.",
		Example: `
dayma export > backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}

			text, err := t.Export()
			if err != nil {
				return err
			}

			fmt.Println(text)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the document with a backup (stdin when no file).",
		Example: `
dayma import backup.json
cat backup.json | dayma import
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}

			var raw []byte
			if len(args) == 1 {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}

			if err := t.Import(string(raw)); err != nil {
				return err
			}

			fmt.Println("Document imported.")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
