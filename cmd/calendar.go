package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// details is a flag to enable verbose day details.
var details bool

// calendarCmd prints the month grid. Workout days are green, rest days
// blue, and today is underlined.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of workout and rest days",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := application.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		activity := application.Activity()
		workouts := activity.WorkoutDays()
		rests := make(map[string]bool)
		for _, d := range application.State().RestDays {
			rests[d] = true
		}

		workoutColor := color.New(color.FgGreen, color.Bold).SprintFunc()
		restColor := color.New(color.FgBlue).SprintFunc()
		todayColor := color.New(color.Underline).SprintFunc()

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		var marked []string
		for day := 1; day <= lastOfMonth.Day(); day++ {
			key := utils.DayKey(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
			dayStr := fmt.Sprintf("%2d", day)
			switch {
			case workouts[key]:
				dayStr = workoutColor(dayStr)
				marked = append(marked, key)
			case rests[key]:
				dayStr = restColor(dayStr)
				marked = append(marked, key)
			}
			if key == utils.DayKey(now) {
				dayStr = todayColor(dayStr)
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		fmt.Printf("  %s: workout\n", workoutColor("██"))
		fmt.Printf("  %s: rest\n", restColor("██"))

		if details {
			fmt.Println("\nDay Details:")
			sort.Strings(marked)
			days := application.State().Meta.Days
			for _, key := range marked {
				d, _ := utils.ParseDayKey(key)
				e := days[key]
				if e.Type == models.DayRest || (e.Type == "" && rests[key]) {
					fmt.Printf("  %s: rest\n", d.Format("Mon, 02 Jan 2006"))
					continue
				}
				fmt.Printf("  %s: %s\n", d.Format("Mon, 02 Jan 2006"), strings.Join(e.ExerciseIDs, ", "))
			}
		}
		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print the exercises of each marked day")
}
