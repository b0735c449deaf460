package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/config"
	"github.com/misterclayt0n/liftlog/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file and create the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("Failed to resolve config path: %w", err)
			}
			path = p
		}

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := config.Save(path, appConfig); err != nil {
				return err
			}
			fmt.Printf("✅ Wrote config to %s\n", path)
		} else {
			fmt.Printf("Config already exists at %s\n", path)
		}

		if store == nil {
			return fmt.Errorf("Failed to open database %s", appConfig.DB.ConnectionString)
		}
		fmt.Printf("✅ Database ready (%s): %s\n", store.Driver(), appConfig.DB.ConnectionString)
		fmt.Printf("Schema version %d\n", storage.StorageVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
