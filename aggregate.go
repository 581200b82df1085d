package hdrhistogram

// sameShape reports whether h and other partition values into the
// counts array identically, making a slot-for-slot Add/Subtract possible
// without going through value re-recording.
func (h *Histogram) sameShape(other *Histogram) bool {
	return h.bucketCount == other.bucketCount &&
		h.subBucketCount == other.subBucketCount &&
		h.unitMagnitude == other.unitMagnitude
}

// Add merges other's recorded values into h. If the two histograms share
// an identical bucket layout, bins are merged directly; otherwise each
// non-zero bin of other is re-recorded into h via its representative
// value, which preserves semantic equivalence but may lose precision
// where h is coarser than other.
func (h *Histogram) Add(other *Histogram) error {
	if other.highestTrackableValue > h.highestTrackableValue {
		return incompatibleShapef("source highestTrackableValue %d exceeds destination's %d", other.highestTrackableValue, h.highestTrackableValue)
	}

	if h.sameShape(other) {
		for i := int32(0); i < other.countsLen; i++ {
			c := other.counts.get(int(i))
			if c == 0 {
				continue
			}
			if err := h.counts.add(int(i), c); err != nil {
				return err
			}
		}
		h.counts.addTotal(other.counts.total())
		return nil
	}

	for i := int32(0); i < other.countsLen; i++ {
		c := other.counts.get(int(i))
		if c == 0 {
			continue
		}
		v := other.valueFromIndex(i)
		if err := h.RecordValues(v, int64(c)); err != nil {
			return err
		}
	}
	return nil
}

// Subtract removes other's recorded values from h. Subtrahend values
// must lie within h's tracked range, and no resulting bin or the total
// count may drop below zero.
func (h *Histogram) Subtract(other *Histogram) error {
	if other.highestTrackableValue > h.highestTrackableValue {
		return incompatibleShapef("source highestTrackableValue %d exceeds destination's %d", other.highestTrackableValue, h.highestTrackableValue)
	}

	var totalDelta uint64

	if h.sameShape(other) {
		for i := int32(0); i < other.countsLen; i++ {
			d := other.counts.get(int(i))
			if d == 0 {
				continue
			}
			cur := h.counts.get(int(i))
			if d > cur {
				return subtractNegativef("bin %d: subtracting %d from %d would go negative", i, d, cur)
			}
			h.counts.set(int(i), cur-d)
			totalDelta += d
		}
	} else {
		for i := int32(0); i < other.countsLen; i++ {
			d := other.counts.get(int(i))
			if d == 0 {
				continue
			}
			v := other.valueFromIndex(i)
			idx := h.countsIndexFor(v)
			if idx < 0 || idx >= h.countsLen {
				return outOfRangef("subtrahend value %d is out of the minuend's tracked range", v)
			}
			cur := h.counts.get(int(idx))
			if d > cur {
				return subtractNegativef("bin for value %d: subtracting %d from %d would go negative", v, d, cur)
			}
			h.counts.set(int(idx), cur-d)
			totalDelta += d
		}
	}

	total := h.counts.total()
	if totalDelta > total {
		return subtractNegativef("subtracting total count %d from %d would go negative", totalDelta, total)
	}
	h.counts.setTotal(total - totalDelta)
	return nil
}

// AddWhileCorrectingForCoordinatedOmission iterates other's recorded
// values and records each into h via RecordCorrectedValue-equivalent
// synthetic expansion at expectedInterval.
func (h *Histogram) AddWhileCorrectingForCoordinatedOmission(other *Histogram, expectedInterval int64) error {
	it := other.RecordedValues()
	for it.HasNext() {
		step := it.Next()
		if err := h.recordCorrectedValues(step.ValueIteratedTo, step.CountAtThisValue, expectedInterval); err != nil {
			return err
		}
	}
	return nil
}

// newLikeSelf constructs a fresh, empty Histogram with h's configuration
// and counts-store variant.
func (h *Histogram) newLikeSelf() (*Histogram, error) {
	var opts []Option
	switch h.counts.(type) {
	case *atomicCounts64:
		opts = append(opts, WithAtomicCounts())
	case *counts16:
		opts = append(opts, WithWordSize(Word16))
	case *counts32:
		opts = append(opts, WithWordSize(Word32))
	}
	return New(h.lowestTrackableValue, h.highestTrackableValue, int(h.significantFigures), opts...)
}

// Copy returns a deep, independent copy of h.
func (h *Histogram) Copy() (*Histogram, error) {
	target, err := h.newLikeSelf()
	if err != nil {
		return nil, err
	}
	if err := h.CopyInto(target); err != nil {
		return nil, err
	}
	return target, nil
}

// CopyInto resets target and copies h's counts, total count and time
// metadata into it.
func (h *Histogram) CopyInto(target *Histogram) error {
	target.Reset()
	if err := target.Add(h); err != nil {
		return err
	}
	target.startTimeMs = h.startTimeMs
	target.endTimeMs = h.endTimeMs
	return nil
}

// CopyCorrectedForCoordinatedOmission returns a deep copy of h with every
// recorded value additionally expanded for coordinated omission at
// expectedInterval, as RecordCorrectedValue would have done at record
// time.
func (h *Histogram) CopyCorrectedForCoordinatedOmission(expectedInterval int64) (*Histogram, error) {
	target, err := h.newLikeSelf()
	if err != nil {
		return nil, err
	}
	if err := target.AddWhileCorrectingForCoordinatedOmission(h, expectedInterval); err != nil {
		return nil, err
	}
	target.startTimeMs = h.startTimeMs
	target.endTimeMs = h.endTimeMs
	return target, nil
}
