package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	editWeight float64
	editReps   int
)

var editSetCmd = &cobra.Command{
	Use:   "edit-set [exercise-index|id] [set-number]",
	Short: "Change a logged set in the current session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, idx, err := resolveSet(args)
		if err != nil {
			return err
		}
		if err := application.Tracker().UpdateSet(id, idx, editWeight, editReps); err != nil {
			return fmt.Errorf("Failed to update set: %w", err)
		}

		fmt.Printf("✅ Set %d for %s is now %s x %d\n", idx+1, id, fmtWeight(editWeight), editReps)
		return nil
	},
}

var deleteSetCmd = &cobra.Command{
	Use:   "delete-set [exercise-index|id] [set-number]",
	Short: "Delete a logged set from the current session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, idx, err := resolveSet(args)
		if err != nil {
			return err
		}
		if err := application.Tracker().DeleteSet(id, idx); err != nil {
			return fmt.Errorf("Failed to delete set: %w", err)
		}

		fmt.Printf("✅ Deleted set %d for %s\n", idx+1, id)
		return nil
	},
}

func resolveSet(args []string) (string, int, error) {
	id, err := resolveEntry(args[0])
	if err != nil {
		return "", 0, err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("Invalid set number. Must be a positive integer")
	}
	return id, n - 1, nil
}

func init() {
	editSetCmd.Flags().Float64VarP(&editWeight, "weight", "w", 0, "New weight")
	editSetCmd.Flags().IntVarP(&editReps, "reps", "r", 0, "New reps")
	editSetCmd.MarkFlagRequired("weight")
	editSetCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(editSetCmd)
	rootCmd.AddCommand(deleteSetCmd)
}
