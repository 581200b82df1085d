package hdrhistogram

// IterationValue is the value yielded at each step of any iterator
// variant. Fields not meaningful for a given variant are left at their
// zero value (e.g. CountAddedInThisStep is always equal to
// CountAtThisValue for the recorded/all iterators).
type IterationValue struct {
	ValueIteratedTo       int64
	ValueIteratedFrom     int64
	CountAtThisValue      int64
	CountAddedInThisStep  int64
	TotalCountToThisValue int64
	TotalValueToThisValue int64
	Percentile            float64
	PercentileIteratedTo  float64
}

// Iterator is the common, finite, forward-only cursor interface shared by
// every iteration model: recorded, all, linear, logarithmic, percentile.
type Iterator interface {
	HasNext() bool
	Next() IterationValue
}

func percentOf(count, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return 100.0 * float64(count) / float64(total)
}

// RecordedValues returns an iterator yielding exactly one step per
// non-zero counts-array slot, in ascending value order.
func (h *Histogram) RecordedValues() Iterator {
	return newRecordedIterator(h)
}

// AllValues returns an iterator yielding every counts-array slot, zero or
// not, in ascending value order.
func (h *Histogram) AllValues() Iterator {
	return newAllValuesIterator(h)
}

// LinearBucketValues returns an iterator that advances ValueIteratedTo by
// bucketWidth on each step, aggregating the counts of every bin whose
// representative value falls in the current step's range.
func (h *Histogram) LinearBucketValues(bucketWidth int64) Iterator {
	return newLinearIterator(h, bucketWidth)
}

// LogarithmicBucketValues returns an iterator like LinearBucketValues
// except the step width is multiplied by logBase after each step instead
// of staying fixed.
func (h *Histogram) LogarithmicBucketValues(firstBucketWidth int64, logBase float64) Iterator {
	return newLogarithmicIterator(h, firstBucketWidth, logBase)
}

// Percentiles returns an iterator that walks percentiles from 0 to 100,
// halving the remaining distance to 100% after each emitted step,
// subdivided into ticksPerHalfDistance sub-steps.
func (h *Histogram) Percentiles(ticksPerHalfDistance int32) Iterator {
	return newPercentileIterator(h, ticksPerHalfDistance)
}
