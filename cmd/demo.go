package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:       "demo [on|off]",
	Short:     "Browse generated demo data without touching your history",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "on":
			application.SetDemoMode(true)
			fmt.Println("✅ Demo data on, your history is kept aside")
		case "off":
			application.SetDemoMode(false)
			fmt.Println("✅ Demo data off")
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
