package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Finish the current session and save it to history",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := application.Tracker().Finish()
		if err != nil {
			return fmt.Errorf("Failed to finish session: %w", err)
		}

		if res.Empty() {
			fmt.Println("Nothing was logged, no workout saved")
			return nil
		}
		fmt.Printf("✅ Session saved: %d exercises, %d sets, %d cardio entries\n",
			len(res.ExerciseIDs), res.Sets, res.Cardio)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
