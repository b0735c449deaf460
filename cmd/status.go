package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/metrics"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show streak, strength score, totals and the open session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := application.State()
		now := application.Now()
		sum := metrics.Summarize(application.Activity(), now)
		score := metrics.StrengthScore(st.History, application.Catalog())

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()

		name := st.Profile.Name
		if name == "" {
			name = "Athlete"
		}
		fmt.Printf("%s %s\n", boldGreen("👋"), boldGreen(name))
		if application.DemoMode() {
			fmt.Println(yellow("Demo data is on, nothing you log is saved to your history"))
		}
		fmt.Println()

		fmt.Printf("%s %d days (best %d)\n", red("🔥 Streak:"), sum.Streak.Current, sum.Streak.Best)
		fmt.Printf("%s %d/100 (progress %.0f%%, coverage %d/%d)\n",
			cyan("💪 Strength score:"), score.Score, score.AvgPct, score.Tracked, score.Total)
		fmt.Printf("%s %d\n", cyan("Workout days:"), sum.WorkoutDays)
		fmt.Printf("%s %d strength, %d cardio\n", cyan("Sessions:"), sum.StrengthCount, sum.CardioCount)
		fmt.Printf("%s %s %s\n", cyan("Total volume:"), fmtWeight(sum.TotalVolume), unit())
		if sum.CardioMinutes > 0 {
			fmt.Printf("%s %s min\n", cyan("Cardio time:"), fmtWeight(sum.CardioMinutes))
		}
		if sum.LastWorkout != "" {
			fmt.Printf("%s %s (%d days ago)\n", cyan("Last workout:"), sum.LastWorkout, sum.DaysSince)
		}
		if sum.ShowRestPrompt {
			fmt.Println(yellow("It's been a while. Taking a break? Log it with `liftlog rest-day`."))
		}

		tr := application.Tracker()
		if s := tr.Active(); s != nil {
			fmt.Printf("\n%s %s with %d exercises\n", green("Open session:"), s.Status, len(s.Entries))
		}
		if a, ok := tr.Undo().Pending(); ok {
			fmt.Printf("%s %s\n", yellow("Undo available:"), a.Label)
		}
		if n := len(application.Discarded()); n > 0 {
			fmt.Printf("%s %d malformed records were dropped on load\n", red("Warning:"), n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
