package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addExerciseCmd = &cobra.Command{
	Use:   "add-ex [exercise]",
	Short: "Add an exercise to the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := resolveExercise(args[0])
		if err != nil {
			return err
		}
		if err := application.Tracker().AddExercise(def.ID); err != nil {
			return fmt.Errorf("Failed to add exercise: %w", err)
		}

		fmt.Printf("✅ Added %s %s\n", def.Emoji, def.Name)
		return nil
	},
}

var removeExerciseCmd = &cobra.Command{
	Use:   "remove-ex [exercise-index|id]",
	Short: "Remove an exercise and its logged sets from the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveEntry(args[0])
		if err != nil {
			return err
		}
		tr := application.Tracker()
		if err := tr.RemoveExercise(id); err != nil {
			return fmt.Errorf("Failed to remove exercise: %w", err)
		}

		fmt.Printf("✅ Removed %s\n", id)
		if a, ok := tr.Undo().Pending(); ok {
			fmt.Printf("%s %s (run `liftlog undo` within %s)\n", yellow("Undo:"), a.Label, tr.Undo().Window())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addExerciseCmd)
	rootCmd.AddCommand(removeExerciseCmd)
}
