package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the last removal, swap or rest day while its undo window is open",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := application.Tracker().UndoLast()
		if err != nil {
			return err
		}

		fmt.Printf("✅ Undone: %s\n", a.Label)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
