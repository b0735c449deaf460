package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr := application.Tracker()
		s := tr.Active()
		if s == nil {
			return fmt.Errorf("No active session")
		}

		st := application.State()
		gym, _ := catalog.Gym(st.Profile.GymType)

		fmt.Printf("%s %s\n", green("Session:"), s.Date)
		fmt.Printf("%s %s\n", cyan("Status:"), s.Status)
		if s.Source != "" {
			fmt.Printf("%s %s\n", cyan("Source:"), s.Source)
		}
		if s.StartedAt != nil {
			duration := application.Now().Sub(*s.StartedAt).Round(time.Second)
			fmt.Printf("%s %s\n", red("Duration:"), duration)
		}
		fmt.Println()

		// Define table indent and column widths.
		tableIndent := "   "
		setColWidth := 6
		currentColWidth := 20
		prevColWidth := 20

		horizontalBorder := tableIndent + "┌" +
			strings.Repeat("─", setColWidth) + "┬" +
			strings.Repeat("─", currentColWidth) + "┬" +
			strings.Repeat("─", prevColWidth) + "┐"
		headerLine := fmt.Sprintf(tableIndent+"│%-*s│%-*s│%-*s│",
			setColWidth, "Set",
			currentColWidth, "Current",
			prevColWidth, "Last Session",
		)
		midBorder := tableIndent + "├" +
			strings.Repeat("─", setColWidth) + "┼" +
			strings.Repeat("─", currentColWidth) + "┼" +
			strings.Repeat("─", prevColWidth) + "┤"
		bottomBorder := tableIndent + "└" +
			strings.Repeat("─", setColWidth) + "┴" +
			strings.Repeat("─", currentColWidth) + "┴" +
			strings.Repeat("─", prevColWidth) + "┘"

		for i, e := range s.Entries {
			def, _ := application.Catalog().Lookup(e.ExerciseID)
			fmt.Printf("%d. %s %s %s\n", i+1, def.Emoji, bold(e.Name), cyan("("+e.Muscle+")"))

			if note := s.Notes[e.ExerciseID]; note != "" {
				fmt.Printf("%s%s %s\n", tableIndent, yellow("Note:"), note)
			}

			if e.Kind == models.EntryCardio {
				for j, c := range s.Cardio[e.ExerciseID] {
					fmt.Printf("%s%d) %s min %s\n", tableIndent, j+1, fmtWeight(c.DurationMin), c.Activity)
				}
				if len(s.Cardio[e.ExerciseID]) == 0 {
					fmt.Printf("%s%s\n", tableIndent, "no cardio logged")
				}
				fmt.Println()
				continue
			}

			if w, ok := catalog.SuggestWeight(def, st.Profile, gym); ok {
				fmt.Printf("%s%s %s %s\n", tableIndent, cyan("Suggested:"), fmtWeight(w), unit())
			}

			var prev []models.LoggedSet
			hist := st.History[e.ExerciseID]
			for j := len(hist) - 1; j >= 0; j-- {
				if utils.DayKey(hist[j].Date) != s.Date {
					prev = hist[j].Sets
					break
				}
			}

			sets := s.Sets[e.ExerciseID]
			rows := max(len(sets), len(prev))
			if rows == 0 {
				fmt.Printf("%s%s\n\n", tableIndent, "no sets yet")
				continue
			}

			fmt.Println(horizontalBorder)
			fmt.Println(headerLine)
			fmt.Println(midBorder)
			for j := 0; j < rows; j++ {
				cur, last := "", ""
				if j < len(sets) {
					cur = formatSet(sets[j])
				}
				if j < len(prev) {
					last = formatSet(prev[j])
				}
				fmt.Printf(tableIndent+"│%-*d│%-*s│%-*s│\n",
					setColWidth, j+1,
					currentColWidth, cur,
					prevColWidth, last,
				)
			}
			fmt.Println(bottomBorder)
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
