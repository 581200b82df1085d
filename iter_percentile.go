package hdrhistogram

import "math"

// percentileIterator walks percentiles from 0 to 100. After each emitted
// step the target percentile advances by halving the remaining distance
// to 100%, subdivided into ticksPerHalfDistance sub-steps; it terminates
// by ultimately emitting a final 100% step once all counts are consumed.
// Grounded on millken-hdrhistogram/hdr.go's pIterator.
type percentileIterator struct {
	h                      *Histogram
	ticksPerHalfDistance   int32
	idx                    int32
	countToIdx             uint64
	percentileToIterateTo  float64
	seenLast               bool
	prevValueIteratedTo    int64
}

func newPercentileIterator(h *Histogram, ticksPerHalfDistance int32) *percentileIterator {
	if ticksPerHalfDistance < 1 {
		ticksPerHalfDistance = 1
	}
	return &percentileIterator{h: h, ticksPerHalfDistance: ticksPerHalfDistance}
}

func (it *percentileIterator) HasNext() bool {
	total := it.h.counts.total()
	if total == 0 {
		return false
	}
	if it.countToIdx < total {
		return true
	}
	return !it.seenLast
}

func (it *percentileIterator) Next() IterationValue {
	total := it.h.counts.total()

	if it.countToIdx >= total {
		it.seenLast = true
		return IterationValue{
			ValueIteratedTo:       it.prevValueIteratedTo,
			ValueIteratedFrom:     it.prevValueIteratedTo,
			TotalCountToThisValue: int64(it.countToIdx),
			Percentile:            100,
			PercentileIteratedTo:  100,
		}
	}

	for it.idx < it.h.countsLen {
		i := it.idx
		it.idx++
		c := it.h.counts.get(int(i))
		it.countToIdx += c
		v := it.h.valueFromIndex(i)
		valueTo := it.h.highestEquivalentValue(v)

		currentPercentile := 100.0 * float64(it.countToIdx) / float64(total)
		if c != 0 && it.percentileToIterateTo <= currentPercentile {
			res := IterationValue{
				ValueIteratedTo:       valueTo,
				ValueIteratedFrom:     it.prevValueIteratedTo,
				CountAtThisValue:      int64(c),
				CountAddedInThisStep:  int64(c),
				TotalCountToThisValue: int64(it.countToIdx),
				Percentile:            it.percentileToIterateTo,
				PercentileIteratedTo:  it.percentileToIterateTo,
			}
			it.prevValueIteratedTo = valueTo

			halfDistance := math.Pow(2, math.Log(100.0/(100.0-it.percentileToIterateTo))/math.Log(2)+1)
			ticks := float64(it.ticksPerHalfDistance) * halfDistance
			it.percentileToIterateTo += 100.0 / ticks

			return res
		}
	}

	it.seenLast = true
	return IterationValue{
		ValueIteratedTo:       it.prevValueIteratedTo,
		ValueIteratedFrom:     it.prevValueIteratedTo,
		TotalCountToThisValue: int64(it.countToIdx),
		Percentile:            100,
		PercentileIteratedTo:  100,
	}
}
