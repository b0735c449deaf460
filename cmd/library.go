package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
)

var (
	libraryKind   string
	libraryGroup  string
	libraryBasics bool
)

var libraryCmd = &cobra.Command{
	Use:   "library [query]",
	Short: "List exercises in the library, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := application.Catalog()

		defs := cat.All()
		if len(args) == 1 {
			defs = cat.Search(args[0])
		}
		if libraryKind != "" {
			kind, err := models.ParseKind(libraryKind)
			if err != nil {
				return err
			}
			defs = filterDefs(defs, func(d models.Definition) bool { return d.Kind() == kind })
		}
		if libraryGroup != "" {
			defs = filterDefs(defs, func(d models.Definition) bool {
				g, ok := catalog.GroupOf(d.Target)
				return ok && string(g) == libraryGroup
			})
		}
		if libraryBasics {
			basics := make(map[string]bool, len(catalog.BigBasics))
			for _, id := range catalog.BigBasics {
				basics[id] = true
			}
			defs = filterDefs(defs, func(d models.Definition) bool { return basics[d.ID] })
		}

		pinned := make(map[string]bool)
		for _, id := range application.State().Meta.Pinned {
			pinned[id] = true
		}
		for _, d := range defs {
			mark := " "
			if pinned[d.ID] {
				mark = yellow("★")
			}
			fmt.Printf("%s %s %-28s %-10s %s\n", mark, d.Emoji, d.Name, d.Kind(), cyan(d.ID))
		}
		fmt.Printf("\n%d exercises\n", len(defs))
		return nil
	},
}

var pinCmd = &cobra.Command{
	Use:   "pin [exercise]",
	Short: "Pin or unpin an exercise in the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := resolveExercise(args[0])
		if err != nil {
			return err
		}
		unpin, _ := cmd.Flags().GetBool("remove")
		if err := application.Tracker().Pin(def.ID, !unpin); err != nil {
			return err
		}

		if unpin {
			fmt.Printf("✅ Unpinned %s\n", def.Name)
		} else {
			fmt.Printf("✅ Pinned %s\n", def.Name)
		}
		return nil
	},
}

func filterDefs(defs []models.Definition, keep func(models.Definition) bool) []models.Definition {
	var out []models.Definition
	for _, d := range defs {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func init() {
	libraryCmd.Flags().StringVarP(&libraryKind, "kind", "k", "", "machine, dumbbell, barbell, cardio")
	libraryCmd.Flags().StringVarP(&libraryGroup, "group", "g", "", "chest, back, legs, core, arms, shoulders")
	libraryCmd.Flags().BoolVarP(&libraryBasics, "basics", "b", false, "Only the big basics")
	pinCmd.Flags().BoolP("remove", "r", false, "Unpin instead")
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(pinCmd)
}
