package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/models"
)

var cardioEntry struct {
	duration    float64
	distance    float64
	unit        string
	pace        string
	activity    string
	environment string
	stroke      string
	effort      string
}

// cardioFromFlags builds an entry from the shared cardio flags.
func cardioFromFlags() models.CardioEntry {
	e := models.CardioEntry{
		DurationMin:  cardioEntry.duration,
		DistanceUnit: cardioEntry.unit,
		Pace:         cardioEntry.pace,
		Activity:     cardioEntry.activity,
		Environment:  cardioEntry.environment,
		Stroke:       cardioEntry.stroke,
		Effort:       cardioEntry.effort,
	}
	if cardioEntry.distance > 0 {
		d := cardioEntry.distance
		e.Distance = &d
	}
	return e
}

func addCardioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&cardioEntry.duration, "minutes", "m", 0, "Duration in minutes")
	cmd.Flags().Float64VarP(&cardioEntry.distance, "distance", "d", 0, "Distance covered")
	cmd.Flags().StringVar(&cardioEntry.unit, "unit", "mi", "Distance unit")
	cmd.Flags().StringVar(&cardioEntry.pace, "pace", "", "Pace, e.g. 9:30/mi")
	cmd.Flags().StringVar(&cardioEntry.activity, "activity", "", "Activity, e.g. treadmill or outdoor run")
	cmd.Flags().StringVar(&cardioEntry.environment, "env", "", "Environment, e.g. indoor or pool")
	cmd.Flags().StringVar(&cardioEntry.stroke, "stroke", "", "Swimming stroke")
	cmd.Flags().StringVar(&cardioEntry.effort, "effort", "", "Effort: easy, moderate or hard")
	cmd.MarkFlagRequired("minutes")
}

var addCardioCmd = &cobra.Command{
	Use:   "add-cardio [exercise-index|id]",
	Short: "Log a cardio entry for a cardio exercise in the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveEntry(args[0])
		if err != nil {
			return err
		}
		if err := application.Tracker().LogCardio(id, cardioFromFlags()); err != nil {
			return fmt.Errorf("Failed to log cardio: %w", err)
		}

		fmt.Printf("✅ Logged %s min of %s\n", fmtWeight(cardioEntry.duration), id)
		return nil
	},
}

func init() {
	addCardioFlags(addCardioCmd)
	rootCmd.AddCommand(addCardioCmd)
}
