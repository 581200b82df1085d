package hdrhistogram

// linearIterator advances ValueIteratedTo by a fixed bucketWidth on each
// step, aggregating the counts of every raw counts-array slot whose
// representative value falls within the current step's range. It keeps
// emitting (possibly empty) steps past the last recorded value until the
// reporting level reaches the histogram's max, per spec.
type linearIterator struct {
	h                   *Histogram
	bucketWidth         int64
	idx                 int32
	countToIdx          uint64
	totalValueToIdx     int64
	reportingLevel      int64
	prevValueIteratedTo int64
	maxValue            int64
	done                bool
}

func newLinearIterator(h *Histogram, bucketWidth int64) *linearIterator {
	if bucketWidth < 1 {
		bucketWidth = 1
	}
	it := &linearIterator{
		h:              h,
		bucketWidth:    bucketWidth,
		reportingLevel: bucketWidth,
		maxValue:       h.Max(),
	}
	if h.counts.total() == 0 {
		it.done = true
	}
	return it
}

func (it *linearIterator) HasNext() bool {
	return !it.done
}

func (it *linearIterator) Next() IterationValue {
	total := it.h.counts.total()
	var countAdded uint64

	for it.idx < it.h.countsLen {
		v := it.h.valueFromIndex(it.idx)
		if it.h.lowestEquivalentValue(v) > it.reportingLevel {
			break
		}
		c := it.h.counts.get(int(it.idx))
		countAdded += c
		it.countToIdx += c
		it.totalValueToIdx += int64(c) * it.h.medianEquivalentValue(v)
		it.idx++
	}

	valueTo := it.h.highestEquivalentValue(it.reportingLevel)
	res := IterationValue{
		ValueIteratedTo:       valueTo,
		ValueIteratedFrom:     it.prevValueIteratedTo,
		CountAtThisValue:      int64(countAdded),
		CountAddedInThisStep:  int64(countAdded),
		TotalCountToThisValue: int64(it.countToIdx),
		TotalValueToThisValue: it.totalValueToIdx,
		Percentile:            percentOf(it.countToIdx, total),
		PercentileIteratedTo:  percentOf(it.countToIdx, total),
	}
	it.prevValueIteratedTo = valueTo
	it.reportingLevel += it.bucketWidth

	if it.countToIdx >= total && it.reportingLevel > it.maxValue {
		it.done = true
	}
	return res
}
