package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/session"
)

var (
	logNote   string
	logAnchor string
)

var logCmd = &cobra.Command{
	Use:   "log [exercise] [WEIGHTxREPS...]",
	Short: "Save today's sets for an exercise without a session (replaces today's record)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := resolveExercise(args[0])
		if err != nil {
			return err
		}
		sets, err := parseSets(args[1:])
		if err != nil {
			return err
		}

		opts := session.SaveOptions{Note: logNote}
		if logAnchor != "" {
			anchor, err := parseSets([]string{logAnchor})
			if err != nil {
				return err
			}
			opts.Anchor = &anchor[0]
		}

		rec, err := application.Tracker().SaveStrength(def.ID, sets, opts)
		if err != nil {
			return fmt.Errorf("Failed to save %s: %w", def.Name, err)
		}

		fmt.Printf("✅ Saved %d sets of %s\n", len(rec.Sets), def.Name)
		if base, ok := models.Baseline(application.State().History[def.ID]); ok && rec.BaselineWeight != nil {
			fmt.Printf("%s %s\n", cyan("Baseline set:"), formatSet(base))
		}
		return nil
	},
}

var logCardioCmd = &cobra.Command{
	Use:   "log-cardio [running|swimming]",
	Short: "Save today's cardio without a session (replaces today's record of that type)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := application.Tracker().SaveCardio(args[0], []models.CardioEntry{cardioFromFlags()})
		if err != nil {
			return fmt.Errorf("Failed to save cardio: %w", err)
		}

		fmt.Printf("✅ Saved %s min of %s\n", fmtWeight(rec.TotalMinutes()), args[0])
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&logNote, "note", "n", "", "Note for the record")
	logCmd.Flags().StringVarP(&logAnchor, "anchor", "a", "", "Anchor set, defaults to the heaviest")
	addCardioFlags(logCardioCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(logCardioCmd)
}
