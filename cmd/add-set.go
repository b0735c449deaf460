package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	newSetWeight float64
	newSetReps   int
)

var addSetCmd = &cobra.Command{
	Use:   "add-set [exercise-index|id]",
	Short: "Log a set for an exercise in the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveEntry(args[0])
		if err != nil {
			return err
		}

		n, err := application.Tracker().LogSet(id, newSetWeight, newSetReps)
		if err != nil {
			return fmt.Errorf("Failed to log set: %w", err)
		}

		fmt.Printf("✅ Set %d for %s: %s %s x %d\n", n+1, id, fmtWeight(newSetWeight), unit(), newSetReps)
		return nil
	},
}

func init() {
	addSetCmd.Flags().Float64VarP(&newSetWeight, "weight", "w", 0, "Weight used for the set")
	addSetCmd.Flags().IntVarP(&newSetReps, "reps", "r", 0, "Number of reps performed")
	addSetCmd.MarkFlagRequired("weight")
	addSetCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(addSetCmd)
}
