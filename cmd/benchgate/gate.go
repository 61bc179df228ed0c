package main

import (
	"errors"
	"fmt"
	"log/slog"

	"benchgate/internal/benchmark"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errGateFailed signals exit code 1 after the diagnostic or full report has
// already been written. Execute treats it as silent.
var errGateFailed = errors.New("benchmark gate failed")

var gateResults string

// Loader functions are variables so tests can substitute fixtures without
// touching the filesystem.
var (
	loadResultsFunc  = benchmark.LoadResults
	loadBaselineFunc = benchmark.LoadBaseline
)

func runGate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	baselinePath := viper.GetString("baseline")
	threshold := viper.GetFloat64("threshold")

	results, err := loadResultsFunc(gateResults)
	if err != nil {
		// Fatal: short diagnostic, no report, baseline never opened.
		if errors.Is(err, benchmark.ErrResultsNotFound) {
			fmt.Fprintf(out, "❌ Benchmark results file not found: %s\n", gateResults)
		} else {
			var malformed *benchmark.MalformedResultsError
			if errors.As(err, &malformed) {
				err = malformed.Err
			}
			fmt.Fprintf(out, "❌ Failed to load results: %v\n", err)
		}
		return errGateFailed
	}
	slog.Debug("loaded benchmark results", "path", gateResults, "count", len(results))

	baseline, warn := loadBaselineFunc(baselinePath)
	if warn != nil {
		// Degraded mode: every benchmark classifies as new.
		fmt.Fprintf(out, "⚠️  Warning: Could not load baseline: %v\n", warn)
		slog.Warn("baseline unusable, proceeding with empty table", "path", baselinePath, "error", warn)
	}
	slog.Debug("loaded baseline", "path", baselinePath, "entries", len(baseline))

	summary := benchmark.Classify(results, baseline, threshold)
	benchmark.Render(out, summary, threshold)

	if summary.HasRegressions() {
		slog.Debug("regressions detected", "count", len(summary.Regressions))
		return errGateFailed
	}
	return nil
}
