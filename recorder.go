package hdrhistogram

// Record records a single occurrence of v.
func (h *Histogram) Record(v int64) error {
	return h.RecordValues(v, 1)
}

// RecordValues records n occurrences of v.
func (h *Histogram) RecordValues(v, n int64) error {
	idx := h.countsIndexFor(v)
	if idx < 0 || idx >= h.countsLen {
		return outOfRangef("value %d exceeds highestTrackableValue %d", v, h.highestTrackableValue)
	}
	if err := h.counts.add(int(idx), uint64(n)); err != nil {
		return err
	}
	h.counts.addTotal(uint64(n))
	return nil
}

// RecordCorrectedValue records v, then compensates for coordinated
// omission: if expectedInterval > 0 and v exceeds it, synthetic samples
// are additionally recorded at v-k*expectedInterval for k=1,2,... as long
// as v-k*expectedInterval >= expectedInterval. This intentionally does not
// synthesize a sample below expectedInterval itself.
func (h *Histogram) RecordCorrectedValue(v, expectedInterval int64) error {
	return h.recordCorrectedValues(v, 1, expectedInterval)
}

func (h *Histogram) recordCorrectedValues(v, n, expectedInterval int64) error {
	if err := h.RecordValues(v, n); err != nil {
		return err
	}
	if expectedInterval <= 0 || v <= expectedInterval {
		return nil
	}
	missing := v - expectedInterval
	for missing >= expectedInterval {
		if err := h.RecordValues(missing, n); err != nil {
			return err
		}
		missing -= expectedInterval
	}
	return nil
}

// Reset sets all counts and the total count to zero, and clears the
// start/end time metadata.
func (h *Histogram) Reset() {
	h.counts.clear()
	h.startTimeMs = 0
	h.endTimeMs = 0
}
