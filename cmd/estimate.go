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
	estimatePrecinct string  // Precinct to estimate (default: first in the file)
	estimateStraight float64 // Overrides the precinct's straight-ticket share
	estimateSeed     int64   // Overrides the election file's seed
)

// estimateCmd estimates a precinct's wait time over repeated trials
var estimateCmd = &cobra.Command{
	Use:   "estimate <election.yaml>",
	Short: "Estimate a precinct's wait time over repeated trials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		election, err := sim.LoadElection(args[0])
		if err != nil {
			return err
		}
		p, err := pickPrecinct(election, estimatePrecinct)
		if err != nil {
			return err
		}

		straightPct := p.PercentStraightTicket
		if cmd.Flags().Changed("straight-pct") {
			straightPct = estimateStraight
		}
		seed := election.Seed
		if cmd.Flags().Changed("seed") {
			seed = estimateSeed
		}

		est := newEstimator(seed)
		if viper.GetBool("progress") {
			bar := progressbar.Default(int64(est.Trials), "trials")
			est.Progress = func() { _ = bar.Add(1) }
			defer func() { _ = bar.Finish() }()
		}

		means, err := est.TrialMeans(p, straightPct)
		if err != nil {
			return err
		}
		report.WriteTrialStats(cmd.OutOrStdout(), p.Name, straightPct, experiment.NewTrialStats(means))
		return nil
	},
}

func init() {
	estimateCmd.Flags().StringVar(&estimatePrecinct, "precinct", "", "Precinct name (default: first in the file)")
	estimateCmd.Flags().Float64Var(&estimateStraight, "straight-pct", 0, "Straight-ticket share in [0, 1] (overrides the precinct's)")
	estimateCmd.Flags().Int64Var(&estimateSeed, "seed", 0, "Base seed for trials (overrides the election file's)")

	rootCmd.AddCommand(estimateCmd)
}
