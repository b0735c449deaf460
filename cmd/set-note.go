package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var setNoteCmd = &cobra.Command{
	Use:   "set-note [exercise-index|id] [note...]",
	Short: "Attach a note to an exercise in the current session (no note clears it)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveEntry(args[0])
		if err != nil {
			return err
		}
		note := strings.TrimSpace(strings.Join(args[1:], " "))
		if err := application.Tracker().SetNote(id, note); err != nil {
			return fmt.Errorf("Failed to set note: %w", err)
		}

		if note == "" {
			fmt.Printf("✅ Cleared note for %s\n", id)
			return nil
		}
		fmt.Printf("✅ Note saved for %s\n", id)
		return nil
	},
}

var anchorCmd = &cobra.Command{
	Use:   "anchor [exercise-index|id] [WEIGHTxREPS]",
	Short: "Pin the set saved as the exercise's anchor when the session ends",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveEntry(args[0])
		if err != nil {
			return err
		}
		sets, err := parseSets(args[1:])
		if err != nil {
			return err
		}
		if err := application.Tracker().SetAnchor(id, sets[0]); err != nil {
			return fmt.Errorf("Failed to set anchor: %w", err)
		}

		fmt.Printf("✅ Anchor for %s: %s\n", id, formatSet(sets[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setNoteCmd)
	rootCmd.AddCommand(anchorCmd)
}
