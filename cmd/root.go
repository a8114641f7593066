package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/precinct-sim/precinct-sim/sim"
	"github.com/precinct-sim/precinct-sim/sim/experiment"
)

var cfgFile string // Optional config file with defaults for the persistent flags

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "precinct-sim",
	Short: "Discrete-event simulator for election-day polling places",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(viper.GetString("log"))
		if err != nil {
			return fmt.Errorf("invalid log level %q", viper.GetString("log"))
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up persistent flags shared by all subcommands
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.precinct-sim.yaml)")
	rootCmd.PersistentFlags().String("log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().Int("trials", 20, "Number of trials per wait estimate")
	rootCmd.PersistentFlags().Int("parallel", 1, "Number of trials to run concurrently")
	rootCmd.PersistentFlags().Bool("progress", false, "Show a progress bar while trials run")

	_ = viper.BindPFlags(rootCmd.PersistentFlags())
}

// initConfig reads in a config file and matching environment variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".precinct-sim")
	}

	viper.SetEnvPrefix("PRECINCT_SIM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// pickPrecinct selects a precinct by name, defaulting to the first one
// in the election file.
func pickPrecinct(e *sim.Election, name string) (sim.Precinct, error) {
	if name == "" {
		return e.Precincts[0], nil
	}
	return e.Precinct(name)
}

// newEstimator builds an estimator from the persistent trial flags.
func newEstimator(baseSeed int64) experiment.Estimator {
	return experiment.Estimator{
		Trials:   viper.GetInt("trials"),
		BaseSeed: baseSeed,
		Parallel: viper.GetInt("parallel"),
	}
}
