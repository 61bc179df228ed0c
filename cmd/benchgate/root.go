package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"benchgate/internal/telemetry"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit

const (
	defaultBaselinePath = "benchmark-baselines.json"
	defaultThreshold    = 0.10
)

// rootCmd represents the base command. Running it executes the gate itself;
// there is no separate subcommand for the primary operation.
var rootCmd = &cobra.Command{
	Use:   "benchgate",
	Short: "CI gate that fails the build on benchmark regressions",
	Long: `benchgate compares current benchmark measurements against a stored
baseline and fails the build when any metric regressed beyond the
configured threshold.

It reads a results JSON document ({"benchmarks": [{"method": ..., "mean": ...}]})
and a flat baseline JSON document (method -> mean nanoseconds), prints a
comparison report to stdout, and exits 1 when a regression is detected.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGate,
}

// Execute runs the root command and maps errors to exit codes. A regression
// failure has already printed its full report, so it exits without an extra
// error line; everything else gets a short diagnostic on stderr.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errGateFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'benchgate --help' for usage.")
		}
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.Flags().StringVar(&gateResults, "results", "", "Path to the benchmark results JSON file")
	rootCmd.Flags().String("baseline", defaultBaselinePath, "Path to the baseline JSON file")
	rootCmd.Flags().Float64("threshold", defaultThreshold, "Regression threshold as a fraction (0.10 = 10%)")
	rootCmd.MarkFlagRequired("results")

	viper.BindPFlag("baseline", rootCmd.Flags().Lookup("baseline"))
	viper.BindPFlag("threshold", rootCmd.Flags().Lookup("threshold"))
}

// initConfig reads in ENV variables if set.
func initConfig() {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	viper.SetEnvPrefix("BENCHGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("baseline", defaultBaselinePath)
	viper.SetDefault("threshold", defaultThreshold)
	viper.SetDefault("verbose", false)

	telemetry.InitLogger(viper.GetBool("verbose"))
}
