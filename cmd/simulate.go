package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/precinct-sim/precinct-sim/sim"
	"github.com/precinct-sim/precinct-sim/sim/report"
)

var (
	simSeed     int64  // Overrides the election file's seed
	printVoters bool   // Print a per-voter table after each precinct block
	csvPath     string // Export every simulated voter to this CSV file
)

// simulateCmd runs one election day for every precinct in the file
var simulateCmd = &cobra.Command{
	Use:   "simulate <election.yaml>",
	Short: "Simulate one election day for every precinct",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		election, err := sim.LoadElection(args[0])
		if err != nil {
			return err
		}
		seed := election.Seed
		if cmd.Flags().Changed("seed") {
			seed = simSeed
		}

		out := cmd.OutOrStdout()
		days := make([]report.PrecinctDay, 0, len(election.Precincts))
		for _, p := range election.Precincts {
			voters, err := p.Simulate(p.PercentStraightTicket, p.StraightTicketDuration, seed)
			if err != nil {
				return fmt.Errorf("precinct %q: %w", p.Name, err)
			}
			report.WriteDaySummary(out, sim.SummarizeDay(p, voters))
			if printVoters {
				report.WriteVoterTable(out, voters)
				fmt.Fprintln(out)
			}
			days = append(days, report.PrecinctDay{Precinct: p.Name, Voters: voters})
		}

		if csvPath != "" {
			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("creating csv file: %w", err)
			}
			if err := report.WriteVotersCSV(f, days); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing csv file: %w", err)
			}
			logrus.Infof("Wrote voter CSV to %s", csvPath)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Random seed (overrides the election file's)")
	simulateCmd.Flags().BoolVar(&printVoters, "print-voters", false, "Print one row per voter after each summary")
	simulateCmd.Flags().StringVar(&csvPath, "csv", "", "Write all simulated voters to a CSV file")

	rootCmd.AddCommand(simulateCmd)
}
