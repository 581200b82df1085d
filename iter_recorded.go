package hdrhistogram

// recordedIterator yields exactly one step per non-zero counts-array
// slot. Grounded on millken-hdrhistogram/hdr.go's rIterator, which skips
// zero-count slots the same way.
type recordedIterator struct {
	h                   *Histogram
	idx                 int32
	countToIdx          uint64
	totalValueToIdx      int64
	prevValueIteratedTo int64
}

func newRecordedIterator(h *Histogram) *recordedIterator {
	return &recordedIterator{h: h}
}

func (it *recordedIterator) HasNext() bool {
	total := it.h.counts.total()
	if it.countToIdx >= total {
		return false
	}
	for i := it.idx; i < it.h.countsLen; i++ {
		if it.h.counts.get(int(i)) != 0 {
			return true
		}
	}
	return false
}

func (it *recordedIterator) Next() IterationValue {
	total := it.h.counts.total()
	for it.idx < it.h.countsLen {
		i := it.idx
		it.idx++
		c := it.h.counts.get(int(i))
		if c == 0 {
			continue
		}
		it.countToIdx += c
		v := it.h.valueFromIndex(i)
		valueTo := it.h.highestEquivalentValue(v)
		it.totalValueToIdx += int64(c) * it.h.medianEquivalentValue(v)

		res := IterationValue{
			ValueIteratedTo:       valueTo,
			ValueIteratedFrom:     it.prevValueIteratedTo,
			CountAtThisValue:      int64(c),
			CountAddedInThisStep:  int64(c),
			TotalCountToThisValue: int64(it.countToIdx),
			TotalValueToThisValue: it.totalValueToIdx,
			Percentile:            percentOf(it.countToIdx, total),
			PercentileIteratedTo:  percentOf(it.countToIdx, total),
		}
		it.prevValueIteratedTo = valueTo
		return res
	}
	return IterationValue{}
}
