package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/precinct-sim/precinct-sim/sim/fixture"
)

var (
	genOut       string // Output path ("" writes to stdout)
	genPrecincts int    // Number of precincts to generate
	genSeed      int64  // Seed for the generator
)

// generateCmd writes a synthetic election file
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic election file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genPrecincts < 1 {
			return fmt.Errorf("precincts must be at least 1, got %d", genPrecincts)
		}

		election := fixture.NewFactory(genSeed).Election(genPrecincts)
		data, err := yaml.Marshal(&election)
		if err != nil {
			return fmt.Errorf("marshaling election: %w", err)
		}

		if genOut == "" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(genOut, data, 0644); err != nil {
			return fmt.Errorf("writing election file: %w", err)
		}
		logrus.Infof("Wrote %d precincts to %s", genPrecincts, genOut)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genOut, "out", "", "Output path (default: stdout)")
	generateCmd.Flags().IntVar(&genPrecincts, "precincts", 3, "Number of precincts to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for the generator")

	rootCmd.AddCommand(generateCmd)
}
