package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Start today's draft session",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr := application.Tracker()
		if err := tr.Start(); err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}

		fmt.Printf("✅ Started session %s\n", tr.Active().ID)
		return nil
	},
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)
}
