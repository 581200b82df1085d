// Package textformat renders a Histogram's percentile distribution as
// plain text or CSV, the way the histogram's own command-line driver
// reports it. It consumes only hdrhistogram's public iterator output
// plus a value-unit scaling ratio; it has no access to histogram
// internals.
package textformat

import (
	"fmt"
	"io"
	"strings"

	"github.com/hdrstats/hdrhistogram"
)

// WritePercentileDistribution writes h's percentile distribution to w,
// one line per percentile tick from the underlying percentile iterator.
// valueUnitsPerBucket scales raw recorded values before printing (for
// example 1e3 to report microsecond values as milliseconds).
func WritePercentileDistribution(w io.Writer, h *hdrhistogram.Histogram, ticksPerHalfDistance int32, valueUnitsPerBucket float64) error {
	if valueUnitsPerBucket <= 0 {
		valueUnitsPerBucket = 1
	}

	if _, err := fmt.Fprintf(w, "%12s %14s %10s %14s\n\n", "Value", "Percentile", "TotalCount", "1/(1-Pct)"); err != nil {
		return err
	}

	it := h.Percentiles(ticksPerHalfDistance)
	for it.HasNext() {
		step := it.Next()
		value := float64(step.ValueIteratedTo) / valueUnitsPerBucket
		pct := step.PercentileIteratedTo / 100.0
		inverse := "inf"
		if pct < 1 {
			inverse = fmt.Sprintf("%.2f", 1/(1-pct))
		}
		if _, err := fmt.Fprintf(w, "%12.3f %2s%12.7f %10d %14s\n",
			value, "", pct, step.TotalCountToThisValue, inverse); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n#[Mean    = %12.3f, StdDeviation   = %12.3f]\n#[Max     = %12.3f, TotalCount     = %d]\n",
		h.Mean()/valueUnitsPerBucket, h.StdDev()/valueUnitsPerBucket,
		float64(h.Max())/valueUnitsPerBucket, h.TotalCount())
	return err
}

// WritePercentileCSV writes h's percentile distribution as CSV with
// columns Value,Percentile,TotalCount.
func WritePercentileCSV(w io.Writer, h *hdrhistogram.Histogram, ticksPerHalfDistance int32, valueUnitsPerBucket float64) error {
	if valueUnitsPerBucket <= 0 {
		valueUnitsPerBucket = 1
	}

	var b strings.Builder
	b.WriteString("Value,Percentile,TotalCount\n")
	it := h.Percentiles(ticksPerHalfDistance)
	for it.HasNext() {
		step := it.Next()
		value := float64(step.ValueIteratedTo) / valueUnitsPerBucket
		fmt.Fprintf(&b, "%.3f,%.7f,%d\n", value, step.PercentileIteratedTo/100.0, step.TotalCountToThisValue)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
