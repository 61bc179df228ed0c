package benchmark

import (
	"fmt"
	"math"
)

// Category is the outcome of comparing one measurement against the baseline.
// Every result gets exactly one category.
type Category int

const (
	// Regression: relative slowdown exceeds the threshold.
	Regression Category = iota
	// SlowerWithinThreshold: slower than baseline, but within the threshold.
	SlowerWithinThreshold
	// Improvement: at or below the baseline mean.
	Improvement
	// NewBenchmark: no baseline entry for the method.
	NewBenchmark
)

func (c Category) String() string {
	switch c {
	case Regression:
		return "regression"
	case SlowerWithinThreshold:
		return "slower-within-threshold"
	case Improvement:
		return "improvement"
	case NewBenchmark:
		return "new-benchmark"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Classification pairs a result with its category, its relative change versus
// baseline, and the preformatted report message.
type Classification struct {
	Result   Result
	Category Category
	Change   float64
	Message  string
}

// Summary holds the classified messages bucketed for display, in input order.
// SlowerWithinThreshold and Improvement share the WithinThreshold bucket.
type Summary struct {
	WithinThreshold []string
	NewBenchmarks   []string
	Regressions     []string
}

// HasRegressions reports whether the gate should fail.
func (s Summary) HasRegressions() bool { return len(s.Regressions) > 0 }

// ClassifyResult classifies a single measurement. Threshold is a fraction
// (0.10 = 10%) and the comparison is strictly greater-than: a change exactly
// equal to the threshold is not a regression. A zero baseline mean forces the
// change to zero, so it can never regress; this is deliberate policy.
func ClassifyResult(r Result, baseline Baseline, threshold float64) Classification {
	base, ok := baseline[r.Method]
	if !ok {
		return Classification{
			Result:   r,
			Category: NewBenchmark,
			Message:  fmt.Sprintf("%s: new benchmark (mean: %.0fns)", r.Method, float64(r.Mean)),
		}
	}

	var change float64
	if base != 0 {
		change = (float64(r.Mean) - base) / base
	}

	c := Classification{Result: r, Change: change}
	switch {
	case change > threshold:
		c.Category = Regression
		c.Message = fmt.Sprintf("%s: %.1f%% regression (baseline: %.0fns, current: %.0fns)",
			r.Method, change*100, base, float64(r.Mean))
	case change > 0:
		c.Category = SlowerWithinThreshold
		c.Message = fmt.Sprintf("%s: %.1f%% slower (within threshold)", r.Method, change*100)
	default:
		c.Category = Improvement
		c.Message = fmt.Sprintf("%s: %.1f%% faster (improvement)", r.Method, math.Abs(change)*100)
	}
	return c
}

// Classify runs ClassifyResult over every measurement and buckets the
// messages for the reporter. Results are independent; no cross-metric
// aggregation happens here.
func Classify(results []Result, baseline Baseline, threshold float64) Summary {
	var s Summary
	for _, r := range results {
		c := ClassifyResult(r, baseline, threshold)
		switch c.Category {
		case Regression:
			s.Regressions = append(s.Regressions, c.Message)
		case NewBenchmark:
			s.NewBenchmarks = append(s.NewBenchmarks, c.Message)
		default:
			s.WithinThreshold = append(s.WithinThreshold, c.Message)
		}
	}
	return s
}
