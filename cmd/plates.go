package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/liftlog/internal/metrics"
)

var (
	platesBar    float64
	platesCustom []float64
)

var platesCmd = &cobra.Command{
	Use:   "plates [target-weight]",
	Short: "Work out the plates to load per side for a target weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.ParseFloat(args[0], 64)
		if err != nil || target <= 0 {
			return fmt.Errorf("Invalid target weight %q", args[0])
		}

		bar := platesBar
		if bar <= 0 {
			bar = application.State().Settings.BarWeight
		}
		if bar <= 0 {
			bar = appConfig.App.BarWeight
		}

		load := metrics.LoadPlates(target, bar, platesCustom)
		fmt.Printf("%s %s\n", green("Per side:"), load.Display)
		fmt.Printf("%s %s %s\n", cyan("Bar:"), fmtWeight(bar), unit())
		fmt.Printf("%s %s %s\n", cyan("Total:"), fmtWeight(load.Actual), unit())
		if load.Actual != target {
			fmt.Printf("%s %s %s can't be loaded exactly\n", yellow("Note:"), fmtWeight(target), unit())
		}
		return nil
	},
}

func init() {
	platesCmd.Flags().Float64VarP(&platesBar, "bar", "b", 0, "Bar weight (default from settings)")
	platesCmd.Flags().Float64SliceVarP(&platesCustom, "plates", "p", nil, "Available plates, e.g. 45,25,10,5")
	rootCmd.AddCommand(platesCmd)
}
