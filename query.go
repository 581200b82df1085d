package hdrhistogram

import "math"

// TotalCount returns the tracked total count across all bins.
func (h *Histogram) TotalCount() int64 {
	return int64(h.counts.total())
}

// Min returns the lowest equivalent of the smallest recorded value, or 0
// if the histogram is empty.
func (h *Histogram) Min() int64 {
	for i := int32(0); i < h.countsLen; i++ {
		if h.counts.get(int(i)) != 0 {
			return h.lowestEquivalentValue(h.valueFromIndex(i))
		}
	}
	return 0
}

// Max returns the highest equivalent of the largest recorded value, or 0
// if the histogram is empty.
func (h *Histogram) Max() int64 {
	for i := h.countsLen - 1; i >= 0; i-- {
		if h.counts.get(int(i)) != 0 {
			return h.highestEquivalentValue(h.valueFromIndex(i))
		}
	}
	return 0
}

// Mean returns the approximate arithmetic mean of recorded values, or 0
// if the histogram is empty.
func (h *Histogram) Mean() float64 {
	total := h.counts.total()
	if total == 0 {
		return 0
	}
	var sum float64
	for i := int32(0); i < h.countsLen; i++ {
		c := h.counts.get(int(i))
		if c == 0 {
			continue
		}
		v := h.valueFromIndex(i)
		sum += float64(h.medianEquivalentValue(v)) * float64(c)
	}
	return sum / float64(total)
}

// StdDev returns the approximate standard deviation of recorded values,
// or 0 if the histogram is empty.
func (h *Histogram) StdDev() float64 {
	total := h.counts.total()
	if total == 0 {
		return 0
	}
	mean := h.Mean()
	var sumSquares float64
	for i := int32(0); i < h.countsLen; i++ {
		c := h.counts.get(int(i))
		if c == 0 {
			continue
		}
		v := h.valueFromIndex(i)
		d := float64(h.medianEquivalentValue(v)) - mean
		sumSquares += d * d * float64(c)
	}
	return math.Sqrt(sumSquares / float64(total))
}

// ValueAtPercentile returns the value at or below which p percent of
// recorded values fall. p is clamped to [0, 100]. The target rank is
// round-half-up (math.Floor(x+0.5)) and never below 1 for a non-empty
// histogram, per the resolved open question in SPEC_FULL.md §4.5.
func (h *Histogram) ValueAtPercentile(p float64) int64 {
	total := h.counts.total()
	if total == 0 {
		return 0
	}
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}

	target := int64(math.Floor((p/100.0)*float64(total) + 0.5))
	if target < 1 {
		target = 1
	}

	var sum int64
	for i := int32(0); i < h.countsLen; i++ {
		sum += int64(h.counts.get(int(i)))
		if sum >= target {
			return h.highestEquivalentValue(h.valueFromIndex(i))
		}
	}
	return h.Max()
}

// PercentileAtOrBelow returns the percentage of recorded values at or
// below v. Returns 100 if v exceeds the tracked range, 0 on an empty
// histogram.
func (h *Histogram) PercentileAtOrBelow(v int64) float64 {
	total := h.counts.total()
	if total == 0 {
		return 0
	}
	if v > h.highestTrackableValue {
		return 100
	}

	lv := h.lowestEquivalentValue(v)
	var sum uint64
	for i := int32(0); i < h.countsLen; i++ {
		if h.valueFromIndex(i) <= lv {
			sum += h.counts.get(int(i))
		}
	}
	return percentOf(sum, total)
}

// CountBetween returns the sum of counts of bins whose representative
// value lies in [lowestEquivalentValue(lo), highestEquivalentValue(hi)].
// It errors if either endpoint is outside the tracked range.
func (h *Histogram) CountBetween(lo, hi int64) (int64, error) {
	idxLo := h.countsIndexFor(lo)
	idxHi := h.countsIndexFor(hi)
	if idxLo < 0 || idxLo >= h.countsLen {
		return 0, outOfRangef("lower bound %d is out of tracked range", lo)
	}
	if idxHi < 0 || idxHi >= h.countsLen {
		return 0, outOfRangef("upper bound %d is out of tracked range", hi)
	}

	loEq := h.lowestEquivalentValue(lo)
	hiEq := h.highestEquivalentValue(hi)

	var sum int64
	for i := int32(0); i < h.countsLen; i++ {
		v := h.valueFromIndex(i)
		if v >= loEq && v <= hiEq {
			sum += int64(h.counts.get(int(i)))
		}
	}
	return sum, nil
}

// CountAt returns the count recorded in the bin containing v.
func (h *Histogram) CountAt(v int64) (int64, error) {
	idx := h.countsIndexFor(v)
	if idx < 0 || idx >= h.countsLen {
		return 0, outOfRangef("value %d exceeds highestTrackableValue %d", v, h.highestTrackableValue)
	}
	return int64(h.counts.get(int(idx))), nil
}

// HasOverflowed reports whether the sum of per-bin counts disagrees with
// the tracked total count. This is the case, for example, when a reader
// of the atomic-counts variant observes a torn concurrent update, after
// decoding a frame whose header total_count disagrees with its per-bin
// counts (the decoder keeps the header's value), or after a Subtract that
// failed part-way through.
func (h *Histogram) HasOverflowed() bool {
	var sum uint64
	for i := int32(0); i < h.countsLen; i++ {
		sum += h.counts.get(int(i))
	}
	return sum != h.counts.total()
}

// ReestablishTotalCount recomputes the total count from the per-bin sums.
// It is not atomic; the caller is responsible for quiescing recording
// first.
func (h *Histogram) ReestablishTotalCount() {
	var sum uint64
	for i := int32(0); i < h.countsLen; i++ {
		sum += h.counts.get(int(i))
	}
	h.counts.setTotal(sum)
}
