package hdrhistogram

// allValuesIterator yields every counts-array slot, zero or not, in
// ascending value order.
type allValuesIterator struct {
	h                   *Histogram
	idx                 int32
	countToIdx          uint64
	totalValueToIdx     int64
	prevValueIteratedTo int64
}

func newAllValuesIterator(h *Histogram) *allValuesIterator {
	return &allValuesIterator{h: h}
}

func (it *allValuesIterator) HasNext() bool {
	return it.idx < it.h.countsLen
}

func (it *allValuesIterator) Next() IterationValue {
	i := it.idx
	it.idx++
	c := it.h.counts.get(int(i))
	it.countToIdx += c
	v := it.h.valueFromIndex(i)
	valueTo := it.h.highestEquivalentValue(v)
	it.totalValueToIdx += int64(c) * it.h.medianEquivalentValue(v)
	total := it.h.counts.total()

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
