package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var swapExerciseCmd = &cobra.Command{
	Use:   "swap-ex [exercise-index|id] [new-exercise]",
	Short: "Swap an exercise in the current session with another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldID, err := resolveEntry(args[0])
		if err != nil {
			return err
		}
		def, err := resolveExercise(args[1])
		if err != nil {
			return err
		}

		tr := application.Tracker()
		if err := tr.SwapExercise(oldID, def.ID); err != nil {
			return fmt.Errorf("Failed to swap exercise: %w", err)
		}

		fmt.Printf("✅ Swapped exercise to %s\n", def.Name)
		if a, ok := tr.Undo().Pending(); ok && a.ExerciseID == oldID {
			fmt.Printf("%s %s (run `liftlog undo` within %s)\n", yellow("Undo:"), a.Label, tr.Undo().Window())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExerciseCmd)
}
