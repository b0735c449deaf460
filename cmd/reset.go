package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all profile, settings and history data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return fmt.Errorf("This deletes everything. Export a backup first, then pass --yes")
		}

		application.Reset()
		fmt.Println("✅ All data deleted")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "Confirm the reset")
	rootCmd.AddCommand(resetCmd)
}
