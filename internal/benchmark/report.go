package benchmark

import (
	"fmt"
	"io"
	"strings"

	"benchgate/internal/ui"
)

const bannerWidth = 70

// Render writes the comparison report. Section order is fixed:
// within-threshold/improvements first, then new benchmarks, then regressions.
// The regressions section closes with a second banner; a run with no
// regressions closes with an all-clear line instead. The report is written
// exactly once per run.
func Render(w io.Writer, s Summary, threshold float64) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, ui.BannerStyle.Render("BENCHMARK COMPARISON REPORT"))
	fmt.Fprintln(w, banner)

	if len(s.WithinThreshold) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.SectionOKStyle.Render("✓ Improvements/Within Threshold:"))
		for _, msg := range s.WithinThreshold {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}

	if len(s.NewBenchmarks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.SectionNewStyle.Render("+ New Benchmarks:"))
		for _, msg := range s.NewBenchmarks {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}

	if s.HasRegressions() {
		fmt.Fprintln(w)
		header := fmt.Sprintf("❌ REGRESSIONS DETECTED (> %.0f%% threshold):", threshold*100)
		fmt.Fprintln(w, ui.SectionFailStyle.Render(header))
		for _, msg := range s.Regressions {
			fmt.Fprintf(w, "  %s\n", msg)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, banner)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.SectionOKStyle.Render("✓ All benchmarks within acceptable threshold"))
	fmt.Fprintf(w, "%s\n\n", banner)
}
