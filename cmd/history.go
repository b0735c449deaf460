package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/utils"
)

var (
	filterExercise string
	filterDay      string
	historyLimit   int
)

// historyCmd shows logged days, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display training history by day, optionally filtered by exercise and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := application.State()

		if filterDay != "" {
			day, err := utils.ParseDay(filterDay)
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}
			filterDay = day
		}

		type line struct {
			at   string
			text string
		}
		byDay := make(map[string][]line)
		for id, sessions := range st.History {
			if filterExercise != "" && id != filterExercise {
				continue
			}
			name := id
			if def, ok := application.Catalog().Lookup(id); ok {
				name = def.Name
			}
			for _, s := range sessions {
				sets := make([]string, len(s.Sets))
				for i, set := range s.Sets {
					sets[i] = formatSet(set)
				}
				text := fmt.Sprintf("%s: %s", name, strings.Join(sets, ", "))
				if s.Note != "" {
					text += yellow("  # " + s.Note)
				}
				day := utils.DayKey(s.Date)
				byDay[day] = append(byDay[day], line{at: s.Date.Format("15:04"), text: text})
			}
		}
		for kind, sessions := range st.CardioHistory {
			if filterExercise != "" && kind != filterExercise && "cardio_"+kind != filterExercise {
				continue
			}
			for _, s := range sessions {
				text := fmt.Sprintf("%s: %s min", titleWord(kind), fmtWeight(s.TotalMinutes()))
				day := utils.DayKey(s.Date)
				byDay[day] = append(byDay[day], line{at: s.Date.Format("15:04"), text: text})
			}
		}
		if filterExercise == "" {
			for _, d := range st.RestDays {
				if _, ok := byDay[d]; !ok {
					byDay[d] = []line{{text: cyan("rest day")}}
				}
			}
		}

		days := make([]string, 0, len(byDay))
		for d := range byDay {
			if filterDay == "" || d == filterDay {
				days = append(days, d)
			}
		}
		sort.Sort(sort.Reverse(sort.StringSlice(days)))
		if historyLimit > 0 && len(days) > historyLimit {
			days = days[:historyLimit]
		}
		if len(days) == 0 {
			fmt.Println("No history yet")
			return nil
		}

		for _, d := range days {
			fmt.Printf("%s\n", green(d))
			lines := byDay[d]
			sort.Slice(lines, func(i, j int) bool { return lines[i].at < lines[j].at })
			for _, l := range lines {
				fmt.Printf("  %s\n", l.text)
			}
		}
		return nil
	},
}

var deleteRecordCmd = &cobra.Command{
	Use:   "delete-record [exercise|cardio-type] [day]",
	Short: "Delete the record of an exercise or cardio type on a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if _, ok := application.Catalog().Lookup(id); !ok {
			if _, isCardio := application.State().CardioHistory[id]; !isCardio {
				def, err := resolveExercise(id)
				if err != nil {
					return err
				}
				id = def.ID
			}
		}
		if err := application.Tracker().DeleteRecord(id, args[1]); err != nil {
			return fmt.Errorf("Failed to delete record: %w", err)
		}

		fmt.Printf("✅ Deleted %s on %s\n", id, args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(deleteRecordCmd)
	historyCmd.Flags().StringVarP(&filterExercise, "exercise", "e", "", "Filter by exercise ID or cardio type")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Show at most this many days")
}
