package hdrhistogram

import "math/bits"

// bucketIndex returns the smallest B such that
// (subBucketCount-1) << (unitMagnitude+B) >= v.
func (h *Histogram) bucketIndex(v int64) int32 {
	pow2Ceiling := bits.Len64(uint64(v) | uint64(h.subBucketMask))
	return int32(pow2Ceiling) - int32(h.unitMagnitude) - (h.subBucketHalfCountMagnitude + 1)
}

// subBucketIndex returns v's offset within bucket b, in [0, subBucketCount).
func (h *Histogram) subBucketIndex(v int64, b int32) int32 {
	return int32(v >> uint(int64(b)+h.unitMagnitude))
}

// countsIndex packs a (bucket, sub-bucket) pair into a counts-array slot.
func (h *Histogram) countsIndex(bucketIdx, subBucketIdx int32) int32 {
	bucketBaseIdx := (bucketIdx + 1) << uint(h.subBucketHalfCountMagnitude)
	offsetInBucket := subBucketIdx - h.subBucketHalfCount
	return bucketBaseIdx + offsetInBucket
}

// countsIndexFor locates the counts-array slot for v. The returned index
// may be >= h.countsLen if v exceeds highestTrackableValue; callers must
// treat that as an out-of-range fault.
func (h *Histogram) countsIndexFor(v int64) int32 {
	b := h.bucketIndex(v)
	s := h.subBucketIndex(v, b)
	return h.countsIndex(b, s)
}

// valueFromIndexBS returns the representative value of a (bucket,
// sub-bucket) pair.
func (h *Histogram) valueFromIndexBS(bucketIdx, subBucketIdx int32) int64 {
	return int64(subBucketIdx) << uint(int64(bucketIdx)+h.unitMagnitude)
}

// valueFromIndex inverts countsIndex, returning the representative value
// stored at counts-array slot i.
func (h *Histogram) valueFromIndex(i int32) int64 {
	bucketIdx := (i >> uint(h.subBucketHalfCountMagnitude)) - 1
	subBucketIdx := (i & (h.subBucketHalfCount - 1)) + h.subBucketHalfCount
	if bucketIdx < 0 {
		subBucketIdx -= h.subBucketHalfCount
		bucketIdx = 0
	}
	return h.valueFromIndexBS(bucketIdx, subBucketIdx)
}

// sizeOfEquivalentValueRange returns the width of v's equivalence class.
func (h *Histogram) sizeOfEquivalentValueRange(v int64) int64 {
	bucketIdx := h.bucketIndex(v)
	subBucketIdx := h.subBucketIndex(v, bucketIdx)
	adjustedBucket := bucketIdx
	if subBucketIdx >= h.subBucketCount {
		adjustedBucket++
	}
	return int64(1) << uint(h.unitMagnitude+int64(adjustedBucket))
}

// SizeOfEquivalentValueRange returns the width of v's equivalence class:
// the set of values that map to the same counts-array slot as v.
func (h *Histogram) SizeOfEquivalentValueRange(v int64) int64 {
	return h.sizeOfEquivalentValueRange(v)
}

// lowestEquivalentValue returns the smallest value equivalent to v.
func (h *Histogram) lowestEquivalentValue(v int64) int64 {
	bucketIdx := h.bucketIndex(v)
	subBucketIdx := h.subBucketIndex(v, bucketIdx)
	return h.valueFromIndexBS(bucketIdx, subBucketIdx)
}

// LowestEquivalentValue returns the smallest value equivalent to v.
func (h *Histogram) LowestEquivalentValue(v int64) int64 { return h.lowestEquivalentValue(v) }

// nextNonEquivalentValue returns the smallest value that is not
// equivalent to v.
func (h *Histogram) nextNonEquivalentValue(v int64) int64 {
	return h.lowestEquivalentValue(v) + h.sizeOfEquivalentValueRange(v)
}

// NextNonEquivalentValue returns the smallest value that is not
// equivalent to v.
func (h *Histogram) NextNonEquivalentValue(v int64) int64 { return h.nextNonEquivalentValue(v) }

// highestEquivalentValue returns the largest value equivalent to v.
func (h *Histogram) highestEquivalentValue(v int64) int64 {
	return h.nextNonEquivalentValue(v) - 1
}

// HighestEquivalentValue returns the largest value equivalent to v.
func (h *Histogram) HighestEquivalentValue(v int64) int64 { return h.highestEquivalentValue(v) }

// medianEquivalentValue returns a value representative of v's equivalence
// class, near its midpoint.
func (h *Histogram) medianEquivalentValue(v int64) int64 {
	return h.lowestEquivalentValue(v) + (h.sizeOfEquivalentValueRange(v) >> 1)
}

// MedianEquivalentValue returns a value representative of v's equivalence
// class, near its midpoint.
func (h *Histogram) MedianEquivalentValue(v int64) int64 { return h.medianEquivalentValue(v) }

// ValuesAreEquivalent reports whether v1 and v2 map to the same
// counts-array slot.
func (h *Histogram) ValuesAreEquivalent(v1, v2 int64) bool {
	return h.lowestEquivalentValue(v1) == h.lowestEquivalentValue(v2)
}
