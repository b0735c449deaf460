package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/catalog"
)

var (
	newSessionTemplate string
	newSessionPlan     string
	newSessionStart    bool
)

var newSessionCmd = &cobra.Command{
	Use:   "new-session [exercise...]",
	Short: "Create today's draft session from exercises, a template or a generated plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr := application.Tracker()

		var err error
		switch {
		case newSessionTemplate != "":
			err = tr.ApplyTemplate(newSessionTemplate)
		case newSessionPlan != "":
			split, perr := catalog.ParseSplit(newSessionPlan)
			if perr != nil {
				return perr
			}
			gym, gerr := catalog.Gym(application.State().Profile.GymType)
			if gerr != nil {
				return gerr
			}
			err = tr.ApplyPlan(split, gym)
		default:
			ids := make([]string, 0, len(args))
			for _, a := range args {
				def, rerr := resolveExercise(a)
				if rerr != nil {
					return rerr
				}
				ids = append(ids, def.ID)
			}
			err = tr.NewSession("manual", ids...)
		}
		if err != nil {
			return fmt.Errorf("Failed to create session: %w", err)
		}

		s := tr.Active()
		fmt.Printf("✅ Draft session with %d exercises\n", len(s.Entries))
		if newSessionStart {
			if err := tr.Start(); err != nil {
				return fmt.Errorf("Failed to start session: %w", err)
			}
			fmt.Println("✅ Session started")
		}
		return nil
	},
}

func init() {
	newSessionCmd.Flags().StringVarP(&newSessionTemplate, "template", "t", "", "Template ID (push, pull, legs, full_body or a custom one)")
	newSessionCmd.Flags().StringVarP(&newSessionPlan, "plan", "p", "", "Generate a plan for a split (push, pull, legs, fullbody)")
	newSessionCmd.Flags().BoolVarP(&newSessionStart, "start", "s", false, "Start the session right away")
	rootCmd.AddCommand(newSessionCmd)
}
