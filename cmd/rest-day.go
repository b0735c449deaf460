package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var restDayRemove bool

var restDayCmd = &cobra.Command{
	Use:   "rest-day [day]",
	Short: "Mark a day (default today) as a rest day; resting today closes the open session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := ""
		if len(args) == 1 {
			day = args[0]
		}
		tr := application.Tracker()

		if restDayRemove {
			if day == "" {
				day = application.Now().Format("2006-01-02")
			}
			if err := tr.UndoRestDay(day); err != nil {
				return fmt.Errorf("Failed to remove rest day: %w", err)
			}
			fmt.Printf("✅ Removed rest day %s\n", day)
			return nil
		}

		if err := tr.LogRestDay(day); err != nil {
			return fmt.Errorf("Failed to log rest day: %w", err)
		}
		fmt.Println("✅ Rest day logged")
		if a, ok := tr.Undo().Pending(); ok {
			fmt.Printf("%s %s (run `liftlog undo` within %s)\n", yellow("Undo:"), a.Label, tr.Undo().Window())
		}
		return nil
	},
}

func init() {
	restDayCmd.Flags().BoolVarP(&restDayRemove, "remove", "r", false, "Remove the rest day instead")
	rootCmd.AddCommand(restDayCmd)
}
