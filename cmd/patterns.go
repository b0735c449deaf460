package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/metrics"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show training habits found in your history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !application.State().Settings.InsightsEnabled {
			fmt.Println("Insights are turned off (liftlog profile --insights=true)")
			return nil
		}

		patterns := metrics.Patterns(application.Activity(), application.Catalog())
		if len(patterns) == 0 {
			fmt.Printf("Log at least %d sessions to see patterns\n", metrics.MinPatternSessions)
			return nil
		}
		for _, p := range patterns {
			fmt.Printf("%s %s\n   %s\n", p.Icon, bold(p.Title), p.Detail)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
