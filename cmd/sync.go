package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export profile, settings and history to a JSON backup (- for stdout)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "-" {
			return application.Export(os.Stdout)
		}

		outputFile := ""
		if len(args) == 1 {
			outputFile = args[0]
		}
		path, err := application.ExportFile(outputFile)
		if err != nil {
			return fmt.Errorf("error exporting data: %w", err)
		}

		fmt.Printf("✅ Data exported successfully to %s\n", path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [backup-file]",
	Short: "Replace all data with a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imp, err := application.ImportFile(args[0])
		var ierr *storage.ImportError
		if errors.As(err, &ierr) {
			return fmt.Errorf("Backup rejected, nothing was changed: %s", ierr.Reason)
		}
		if err != nil {
			return fmt.Errorf("Failed to import backup: %w", err)
		}

		fmt.Printf("✅ Imported %d exercises and %d cardio types\n", len(imp.State.History), len(imp.State.CardioHistory))
		for _, d := range imp.Discarded {
			fmt.Printf("%s %s\n", yellow("Skipped:"), d)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
