package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/metrics"
)

var musclesWindow int

var musclesCmd = &cobra.Command{
	Use:   "muscles",
	Short: "Show sessions per muscle group over the last 7, 30 or 90 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := metrics.ParseWindow(musclesWindow)
		if err != nil {
			return err
		}

		st := application.State()
		dist := metrics.MuscleDistribution(st.History, application.Catalog(), window, application.Now())
		total := dist.Total()

		fmt.Printf("%s last %d days, %d sessions\n\n", green("Muscle groups:"), window, total)
		for _, g := range catalog.Groups {
			n := dist[g]
			pct := 0
			if total > 0 {
				pct = n * 100 / total
			}
			bar := strings.Repeat("█", pct/5)
			fmt.Printf("  %-10s %-20s %3d%% (%d)\n", titleWord(string(g)), cyan(bar), pct, n)
		}
		return nil
	},
}

func init() {
	musclesCmd.Flags().IntVarP(&musclesWindow, "days", "d", 30, "Window in days: 7, 30 or 90")
	rootCmd.AddCommand(musclesCmd)
}
