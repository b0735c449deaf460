package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/metrics"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

var (
	limitSessions int
	historyOnly   bool
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise]",
	Short: "Display detailed information and training history for a particular exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := resolveExercise(args[0])
		if err != nil {
			return fmt.Errorf("failed to get exercise: %w", err)
		}
		st := application.State()
		sessions := st.History[ex.ID]

		// Define color functions.
		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		if !historyOnly {
			fmt.Println(boldGreen("Exercise Information:"))
			fmt.Printf("  %s: %s %s\n", boldCyan("Name"), ex.Emoji, ex.Name)
			fmt.Printf("  %s: %s\n", boldCyan("Equipment"), ex.Kind())
			fmt.Printf("  %s: %s\n", boldCyan("Target"), ex.Target)
			if ex.Muscles != "" {
				fmt.Printf("  %s: %s\n", boldCyan("Muscles"), ex.Muscles)
			}
			if g, ok := catalog.GroupOf(ex.Target); ok {
				fmt.Printf("  %s: %s\n", boldCyan("Group"), g)
			}
			for _, cue := range ex.Cues {
				fmt.Printf("  • %s\n", cue)
			}
			if ex.Progression != "" {
				fmt.Printf("  %s: %s\n", boldCyan("Progression"), ex.Progression)
			}

			gym, _ := catalog.Gym(st.Profile.GymType)
			if w, ok := catalog.SuggestWeight(ex, st.Profile, gym); ok {
				fmt.Printf("  %s: %s %s\n", boldCyan("Suggested start"), fmtWeight(w), unit())
			}
			if pb, ok := metrics.BestSet(sessions); ok {
				fmt.Printf("  %s: %s (%s: %s %s)\n",
					boldCyan("All-time PR"), formatSet(pb.Set),
					yellow("Calculated 1RM"), fmtWeight(utils.RoundTo(pb.Estimated1RM, 0.5)), unit())
			}
			if len(sessions) > 0 {
				fmt.Printf("  %s: %.0f%%\n", boldCyan("Progress"), metrics.ImprovementRatio(sessions)*100)
			}
			fmt.Println()
		}

		fmt.Printf("%s %s:\n", boldGreen("History for"), ex.Name)
		if len(sessions) == 0 {
			fmt.Println(magenta("  No training sessions found."))
			return nil
		}

		start := 0
		if limitSessions > 0 && len(sessions) > limitSessions {
			start = len(sessions) - limitSessions
		}
		for i := len(sessions) - 1; i >= start; i-- {
			s := sessions[i]
			fmt.Printf("\n%s %s\n", boldGreen("Session"), s.Date.Format("2006-01-02 15:04"))
			if s.Note != "" {
				fmt.Printf("   %s: %s\n", magenta("Notes"), s.Note)
			}
			if s.AnchorWeight != nil && s.AnchorReps != nil {
				fmt.Printf("   %s: %s x %d\n", cyan("Anchor"), fmtWeight(*s.AnchorWeight), *s.AnchorReps)
			}
			fmt.Printf("      %-4s | %-12s | %-5s\n", "Set", "Weight ("+unit()+")", "Reps")
			fmt.Println("      " + strings.Repeat("─", 30))
			for j, set := range s.Sets {
				fmt.Printf("      %-4d | %-12s | %-5d\n", j+1, fmtWeight(set.Weight), set.Reps)
			}
		}

		if base, ok := models.Baseline(sessions); ok {
			fmt.Printf("\n%s %s\n", cyan("Baseline:"), formatSet(base))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showExCmd)
	showExCmd.Flags().IntVarP(&limitSessions, "limit", "l", 5, "Number of sessions to display")
	showExCmd.Flags().BoolVarP(&historyOnly, "history-only", "H", false, "Display only history without exercise details")
}
