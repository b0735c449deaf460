package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()

		var perr error
		application.UpdateProfile(func(p *models.Profile) {
			if f.Changed("name") {
				p.Name, _ = f.GetString("name")
			}
			if f.Changed("gender") {
				g, _ := f.GetString("gender")
				switch {
				case strings.EqualFold(g, string(models.Male)):
					p.Gender = models.Male
				case strings.EqualFold(g, string(models.Female)):
					p.Gender = models.Female
				default:
					perr = fmt.Errorf("gender must be %s or %s", models.Male, models.Female)
				}
			}
			if f.Changed("tier") {
				s, _ := f.GetString("tier")
				t, err := models.ParseTier(s)
				if err != nil {
					perr = err
					return
				}
				p.Tier = t
			}
			if f.Changed("bodyweight") {
				p.BodyWeight, _ = f.GetFloat64("bodyweight")
			}
			if f.Changed("gym") {
				id, _ := f.GetString("gym")
				if _, err := catalog.Gym(id); err != nil {
					perr = err
					return
				}
				p.GymType = id
			}
			if f.Changed("goal") {
				p.Goal, _ = f.GetString("goal")
			}
		})
		if perr != nil {
			return perr
		}

		application.UpdateSettings(func(s *models.Settings) {
			if f.Changed("insights") {
				s.InsightsEnabled, _ = f.GetBool("insights")
			}
			if f.Changed("bar") {
				s.BarWeight, _ = f.GetFloat64("bar")
			}
			if f.Changed("unit") {
				s.Unit, _ = f.GetString("unit")
			}
		})

		st := application.State()
		p := st.Profile
		fmt.Printf("%s %s\n", cyan("Name:"), p.Name)
		fmt.Printf("%s %s\n", cyan("Gender:"), p.Gender)
		fmt.Printf("%s %s\n", cyan("Experience:"), p.Tier)
		fmt.Printf("%s %s %s\n", cyan("Body weight:"), fmtWeight(p.BodyWeight), unit())
		fmt.Printf("%s %s\n", cyan("Gym:"), p.GymType)
		fmt.Printf("%s %s\n", cyan("Goal:"), p.Goal)
		fmt.Printf("%s %v\n", cyan("Insights:"), st.Settings.InsightsEnabled)
		fmt.Printf("%s %s %s\n", cyan("Bar:"), fmtWeight(st.Settings.BarWeight), unit())
		return nil
	},
}

func init() {
	f := profileCmd.Flags()
	f.String("name", "", "Your name")
	f.String("gender", "", "male or female")
	f.String("tier", "", "beginner, novice, intermediate or advanced")
	f.Float64("bodyweight", 0, "Body weight")
	f.String("gym", "", "planet, commercial, iron or home")
	f.String("goal", "", "Training goal")
	f.Bool("insights", true, "Show habit patterns")
	f.Float64("bar", 45, "Bar weight for plate loading")
	f.String("unit", "lb", "Weight unit label")
	rootCmd.AddCommand(profileCmd)
}
