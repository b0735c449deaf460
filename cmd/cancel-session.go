package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/session"
)

var cancelForce bool

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the current session without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := application.Tracker().Cancel(cancelForce)
		if errors.Is(err, session.ErrConfirmDiscard) {
			return fmt.Errorf("Session has logged sets, pass --force to discard them")
		}
		if err != nil {
			return fmt.Errorf("Failed to cancel session: %w", err)
		}

		fmt.Println("✅ Session cancelled successfully")
		return nil
	},
}

func init() {
	cancelSessionCmd.Flags().BoolVarP(&cancelForce, "force", "f", false, "Discard logged sets")
	rootCmd.AddCommand(cancelSessionCmd)
}
