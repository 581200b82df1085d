package hdrhistogram

import "math/bits"

// WordSize selects the width of each per-bin counter for a counts store.
// Narrow widths trade footprint for capacity: an increment/add that would
// exceed the width's maximum is reported as a CountOverflow. Word64 is the
// default and is effectively non-overflowing in practice.
type WordSize int

const (
	Word16 WordSize = 2
	Word32 WordSize = 4
	Word64 WordSize = 8
)

type buildConfig struct {
	wordSize WordSize
	atomic   bool
}

// Option configures the counts-store variant a Histogram is built with.
type Option func(*buildConfig)

// WithWordSize selects a narrow (16/32-bit) or wide (64-bit, default)
// fixed-width counts store. It is mutually exclusive with WithAtomicCounts.
func WithWordSize(w WordSize) Option {
	return func(c *buildConfig) { c.wordSize = w }
}

// WithAtomicCounts selects the lock-free atomic-64 counts store, making
// Record/RecordValues safe to call concurrently from any number of
// writers (see §5, "Atomic-counts").
func WithAtomicCounts() Option {
	return func(c *buildConfig) { c.atomic = true }
}

// Histogram records positive integer values and answers statistical
// queries about their distribution with a relative error bounded by
// 1/10^significantFigures at every magnitude. The zero value is not
// usable; construct with New.
type Histogram struct {
	lowestTrackableValue  int64
	highestTrackableValue int64
	significantFigures    int64

	unitMagnitude               int64
	subBucketCount              int32
	subBucketHalfCount          int32
	subBucketHalfCountMagnitude int32
	subBucketMask               int64
	bucketCount                 int32
	countsLen                   int32
	wordSizeBytes               int

	counts countsStore

	startTimeMs int64
	endTimeMs   int64

	identity int64
}

// New constructs a Histogram capable of tracking values in
// [lowest, highest] with significantFigures decimal digits of precision
// preserved at every magnitude. significantFigures must be in [0, 5].
func New(lowest, highest int64, significantFigures int, opts ...Option) (*Histogram, error) {
	if lowest < 1 {
		return nil, invalidConfigurationf("lowestTrackableValue must be >= 1, got %d", lowest)
	}
	if highest < 2*lowest {
		return nil, invalidConfigurationf("highestTrackableValue (%d) must be >= 2*lowestTrackableValue (%d)", highest, 2*lowest)
	}
	if significantFigures < 0 || significantFigures > 5 {
		return nil, invalidConfigurationf("significantFigures must be in [0,5], got %d", significantFigures)
	}

	cfg := buildConfig{wordSize: Word64}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Histogram{
		lowestTrackableValue:  lowest,
		highestTrackableValue: highest,
		significantFigures:    int64(significantFigures),
		identity:              nextIdentity(),
	}
	h.computeDerivedParams()

	switch {
	case cfg.atomic:
		h.counts = newAtomicCounts64(int(h.countsLen))
		h.wordSizeBytes = 8
	case cfg.wordSize == Word16:
		h.counts = newCounts16(int(h.countsLen))
		h.wordSizeBytes = 2
	case cfg.wordSize == Word32:
		h.counts = newCounts32(int(h.countsLen))
		h.wordSizeBytes = 4
	default:
		h.counts = newCounts64(int(h.countsLen))
		h.wordSizeBytes = 8
	}

	return h, nil
}

// NewWithLowest1 is a convenience constructor equivalent to
// New(1, highest, significantFigures, opts...).
func NewWithLowest1(highest int64, significantFigures int, opts ...Option) (*Histogram, error) {
	return New(1, highest, significantFigures, opts...)
}

// ceilLog2 returns the smallest n such that 1<<n >= v, for v >= 1.
func ceilLog2(v int64) int32 {
	if v <= 1 {
		return 0
	}
	return int32(bits.Len64(uint64(v - 1)))
}

func (h *Histogram) computeDerivedParams() {
	h.unitMagnitude = int64(bits.Len64(uint64(h.lowestTrackableValue)) - 1)

	largestValueWithSingleUnitResolution := 2 * pow10(h.significantFigures)
	subBucketCountMagnitude := ceilLog2(largestValueWithSingleUnitResolution)

	subBucketHalfCountMagnitude := subBucketCountMagnitude
	if subBucketHalfCountMagnitude < 1 {
		subBucketHalfCountMagnitude = 1
	}
	subBucketHalfCountMagnitude--
	h.subBucketHalfCountMagnitude = subBucketHalfCountMagnitude

	h.subBucketCount = int32(1) << uint(subBucketHalfCountMagnitude+1)
	h.subBucketHalfCount = h.subBucketCount / 2
	h.subBucketMask = int64(h.subBucketCount-1) << uint(h.unitMagnitude)

	// Smallest bucketCount such that the top of the last bucket covers
	// highestTrackableValue. The comparison is made in units of
	// 1<<unitMagnitude (highestTrackableValue rounded up) so that the
	// shifted value cannot overflow.
	highestInUnits := h.highestTrackableValue >> uint(h.unitMagnitude)
	if highestInUnits<<uint(h.unitMagnitude) < h.highestTrackableValue {
		highestInUnits++
	}
	trackableValue := int64(h.subBucketCount - 1)
	bucketsNeeded := int32(1)
	for trackableValue < highestInUnits {
		trackableValue <<= 1
		bucketsNeeded++
	}
	h.bucketCount = bucketsNeeded
	h.countsLen = (h.bucketCount + 1) * h.subBucketHalfCount
}

func pow10(exp int64) int64 {
	n := int64(1)
	for ; exp > 0; exp-- {
		n *= 10
	}
	return n
}

// LowestTrackableValue returns the configured lower bound.
func (h *Histogram) LowestTrackableValue() int64 { return h.lowestTrackableValue }

// HighestTrackableValue returns the configured upper bound.
func (h *Histogram) HighestTrackableValue() int64 { return h.highestTrackableValue }

// SignificantFigures returns the configured decimal digits of precision.
func (h *Histogram) SignificantFigures() int64 { return h.significantFigures }

// Identity returns the process-wide construction-order identity used only
// to order locks deterministically when composing two histograms.
func (h *Histogram) Identity() int64 { return h.identity }

// StartTimeMs returns the optional start-time metadata.
func (h *Histogram) StartTimeMs() int64 { return h.startTimeMs }

// SetStartTimeMs sets the optional start-time metadata.
func (h *Histogram) SetStartTimeMs(v int64) { h.startTimeMs = v }

// EndTimeMs returns the optional end-time metadata.
func (h *Histogram) EndTimeMs() int64 { return h.endTimeMs }

// SetEndTimeMs sets the optional end-time metadata.
func (h *Histogram) SetEndTimeMs(v int64) { h.endTimeMs = v }
