package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/catalog"
)

var importTemplatesCmd = &cobra.Command{
	Use:   "import-templates [file]",
	Short: "Import workout templates from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		added, err := application.ImportTemplates(file)
		if err != nil {
			return fmt.Errorf("failed to import templates: %w", err)
		}

		fmt.Printf("✅ Imported %d templates\n", len(added))
		return nil
	},
}

var listTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List workout templates and generated plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range application.Catalog().Templates() {
			fmt.Printf("%s - %s\n", cyan(t.ID), bold(t.Name))
			if t.Description != "" {
				fmt.Printf("   %s\n", t.Description)
			}
			fmt.Printf("   %s\n", strings.Join(t.ExerciseIDs, ", "))
		}

		gym, err := catalog.Gym(application.State().Profile.GymType)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s %s %s\n", green("Plans for"), gym.Emoji, gym.Label)
		for _, split := range []catalog.Split{catalog.SplitPush, catalog.SplitPull, catalog.SplitLegs, catalog.SplitFullBody} {
			ids, err := catalog.GeneratePlan(split, gym)
			if err != nil {
				continue
			}
			fmt.Printf("   %-8s %s\n", split, strings.Join(ids, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importTemplatesCmd)
	rootCmd.AddCommand(listTemplatesCmd)
}
