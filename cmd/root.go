package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/misterclayt0n/liftlog/internal/app"
	"github.com/misterclayt0n/liftlog/internal/config"
	"github.com/misterclayt0n/liftlog/internal/logging"
	"github.com/misterclayt0n/liftlog/internal/storage"
)

var (
	configPath  string
	appConfig   *config.Config
	store       *storage.Storage
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:           "liftlog",
	Short:         "Workout tracker for the terminal: sessions, streaks and strength score",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}
		appConfig = cfg

		logging.Setup(logging.SetupParams{
			LogFileName:   cfg.Log.File,
			LogToStdout:   cfg.Log.ToStdout,
			LogLevel:      cfg.Log.Level,
			LogFormatJSON: cfg.Log.JSON,
		})

		opts := app.Options{
			WriteDelay: cfg.App.WriteDelay(),
			UndoWindow: cfg.App.UndoWindow(),
		}
		store, err = storage.Open(cfg.DB.ConnectionString)
		if err != nil {
			// Keep working from memory; nothing will be saved.
			logrus.WithError(err).Warn("database unavailable, changes will not be saved")
			store = nil
		} else {
			opts.Backend = store
		}

		application = app.New(opts)
		return application.Load()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return shutdown(true)
	},
}

// shutdown flushes the app and closes the store. A failed command does
// not persist its state, but writes queued while loading still land.
func shutdown(persist bool) error {
	if application != nil {
		if persist {
			application.Close()
		} else {
			application.Abort()
		}
		application = nil
	}
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

// Execute runs the root command. Cobra skips the post-run hook when a
// command fails, so the shutdown runs here as well.
func Execute() error {
	err := rootCmd.Execute()
	return multierr.Append(err, shutdown(false))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/liftlog/config.toml)")
}
