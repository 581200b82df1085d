// Package hdrdouble adapts hdrhistogram's integer Histogram to record
// floating-point values. It is a thin scale-and-delegate layer, not a
// second algorithm: every recorded double is divided by a conversion
// ratio and rounded to the nearest integer before being handed to an
// ordinary hdrhistogram.Histogram, and every value read back is
// multiplied by that same ratio.
package hdrdouble

import (
	"math"

	"github.com/hdrstats/hdrhistogram"
)

// Histogram records double values across a fixed dynamic range
// (highestToLowestValueRatio : 1), with significantFigures decimal
// digits of precision preserved at every magnitude. The core
// histogram's integer range never grows; for a value outside the current
// integer window, RecordValue changes the conversion ratio instead (see
// rescaleIfNeeded). RecordValue reports hdrhistogram.ErrOutOfRange for a
// negative value.
type Histogram struct {
	core  *hdrhistogram.Histogram
	ratio float64
}

// New constructs a double-valued Histogram. highestToLowestValueRatio
// must be >= 2; it bounds the ratio between the largest and smallest
// values the histogram can distinguish from each other (not from zero).
func New(highestToLowestValueRatio float64, significantFigures int) (*Histogram, error) {
	if highestToLowestValueRatio < 2 {
		return nil, hdrhistogram.ErrInvalidConfiguration
	}
	core, err := hdrhistogram.New(1, int64(highestToLowestValueRatio), significantFigures)
	if err != nil {
		return nil, err
	}
	return &Histogram{core: core, ratio: 1.0}, nil
}

// toInt converts a double value into the core histogram's integer
// space at the current conversion ratio. It does not change the ratio;
// RecordValue and RecordValues call rescaleIfNeeded before it.
func (h *Histogram) toInt(v float64) int64 {
	return int64(math.Round(v / h.ratio))
}

func (h *Histogram) fromInt(v int64) float64 {
	return float64(v) * h.ratio
}

// RecordValue records v, rescaling the conversion ratio if necessary to
// keep v within the core histogram's trackable integer range.
func (h *Histogram) RecordValue(v float64) error {
	if v < 0 {
		return hdrhistogram.ErrOutOfRange
	}
	if v == 0 {
		return h.core.Record(1)
	}
	h.rescaleIfNeeded(v)
	return h.core.Record(h.toInt(v))
}

// RecordValues records n occurrences of v.
func (h *Histogram) RecordValues(v float64, n int64) error {
	if v < 0 {
		return hdrhistogram.ErrOutOfRange
	}
	if v == 0 {
		return h.core.RecordValues(1, n)
	}
	h.rescaleIfNeeded(v)
	return h.core.RecordValues(h.toInt(v), n)
}

// rescaleIfNeeded grows the conversion ratio so that v maps into the
// core histogram's [lowest, highest] integer window. It never shrinks
// the ratio, so precision for previously recorded values is preserved.
func (h *Histogram) rescaleIfNeeded(v float64) {
	lowest := float64(h.core.LowestTrackableValue())
	highest := float64(h.core.HighestTrackableValue())
	for h.toInt(v) > int64(highest) {
		h.ratio *= 2
	}
	for v/h.ratio < lowest && h.ratio > 1e-300 {
		h.ratio /= 2
	}
}

// Mean returns the recorded distribution's arithmetic mean.
func (h *Histogram) Mean() float64 { return h.fromInt(int64(math.Round(h.core.Mean()))) }

// ValueAtPercentile returns the largest value such that p percent of
// recorded values are at or below it.
func (h *Histogram) ValueAtPercentile(p float64) float64 {
	return h.fromInt(h.core.ValueAtPercentile(p))
}

// TotalCount returns the number of values recorded.
func (h *Histogram) TotalCount() int64 { return h.core.TotalCount() }

// Reset clears all recorded values, keeping the current conversion
// ratio.
func (h *Histogram) Reset() { h.core.Reset() }
