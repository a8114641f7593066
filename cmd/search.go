package cmd

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/precinct-sim/precinct-sim/sim"
	"github.com/precinct-sim/precinct-sim/sim/experiment"
	"github.com/precinct-sim/precinct-sim/sim/report"
)

var (
	searchTarget   float64 // Average wait target in minutes
	searchPrecinct string  // Precinct to search (default: first in the file)
	searchSeed     int64   // Overrides the election file's seed
)

// searchCmd sweeps electorate mixes for the smallest split-ticket share
// that pushes the median wait past the target
var searchCmd = &cobra.Command{
	Use:   "search <election.yaml>",
	Short: "Find the split-ticket share at which a wait target is exceeded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		election, err := sim.LoadElection(args[0])
		if err != nil {
			return err
		}
		p, err := pickPrecinct(election, searchPrecinct)
		if err != nil {
			return err
		}
		seed := election.Seed
		if cmd.Flags().Changed("seed") {
			seed = searchSeed
		}

		est := newEstimator(seed)
		if viper.GetBool("progress") {
			// total trial count is unknown up front, the sweep stops early
			bar := progressbar.Default(-1, "trials")
			est.Progress = func() { _ = bar.Add(1) }
			defer func() { _ = bar.Finish() }()
		}

		th, err := experiment.FindSplitThreshold(est, p, searchTarget)
		if err != nil {
			return err
		}
		report.WriteThreshold(cmd.OutOrStdout(), p.Name, searchTarget, th)
		return nil
	},
}

func init() {
	searchCmd.Flags().Float64Var(&searchTarget, "target-wait", 0, "Average wait target in minutes")
	searchCmd.Flags().StringVar(&searchPrecinct, "precinct", "", "Precinct name (default: first in the file)")
	searchCmd.Flags().Int64Var(&searchSeed, "seed", 0, "Base seed for trials (overrides the election file's)")
	_ = searchCmd.MarkFlagRequired("target-wait")

	rootCmd.AddCommand(searchCmd)
}
