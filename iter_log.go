package hdrhistogram

// logarithmicIterator is like linearIterator except the step width
// multiplies by logBase after each step instead of staying fixed.
type logarithmicIterator struct {
	h                   *Histogram
	logBase             float64
	idx                 int32
	countToIdx          uint64
	totalValueToIdx     int64
	reportingLevel      int64
	prevValueIteratedTo int64
	maxValue            int64
	done                bool
}

func newLogarithmicIterator(h *Histogram, firstBucketWidth int64, logBase float64) *logarithmicIterator {
	if firstBucketWidth < 1 {
		firstBucketWidth = 1
	}
	if logBase <= 1 {
		logBase = 2
	}
	it := &logarithmicIterator{
		h:              h,
		logBase:        logBase,
		reportingLevel: firstBucketWidth,
		maxValue:       h.Max(),
	}
	if h.counts.total() == 0 {
		it.done = true
	}
	return it
}

func (it *logarithmicIterator) HasNext() bool {
	return !it.done
}

func (it *logarithmicIterator) Next() IterationValue {
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

	next := int64(float64(it.reportingLevel) * it.logBase)
	if next <= it.reportingLevel {
		next = it.reportingLevel + 1
	}
	it.reportingLevel = next

	if it.countToIdx >= total && it.reportingLevel > it.maxValue {
		it.done = true
	}
	return res
}
