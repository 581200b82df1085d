package hdrhistogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordSequence(t *testing.T, h *Histogram, values ...int64) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, h.Record(v))
	}
}

func TestRecordedValuesIteratorSkipsEmptyBins(t *testing.T) {
	h, err := New(1, 1000000, 3)
	require.NoError(t, err)
	recordSequence(t, h, 100, 100, 200)

	it := h.RecordedValues()
	var steps int
	var totalCount int64
	for it.HasNext() {
		step := it.Next()
		steps++
		totalCount += step.CountAtThisValue
		require.Greater(t, step.CountAtThisValue, int64(0))
	}
	assert.Equal(t, 2, steps)
	assert.EqualValues(t, 3, totalCount)
}

func TestAllValuesIteratorCoversEveryBin(t *testing.T) {
	h, err := New(1, 1000, 1)
	require.NoError(t, err)
	recordSequence(t, h, 10)

	it := h.AllValues()
	var steps int32
	var totalCount int64
	for it.HasNext() {
		step := it.Next()
		steps++
		totalCount += step.CountAtThisValue
	}
	assert.Equal(t, h.countsLen, steps)
	assert.EqualValues(t, 1, totalCount)
}

func TestLinearBucketValuesFixedWidth(t *testing.T) {
	h, err := New(1, 1000000, 3)
	require.NoError(t, err)
	recordSequence(t, h, 5, 15, 25, 35)

	it := h.LinearBucketValues(10)
	var prev int64 = -1
	var totalCount int64
	for it.HasNext() {
		step := it.Next()
		require.Greater(t, step.ValueIteratedTo, prev)
		prev = step.ValueIteratedTo
		totalCount += step.CountAddedInThisStep
	}
	assert.EqualValues(t, 4, totalCount)
}

func TestLogarithmicBucketValuesGrowsWidth(t *testing.T) {
	h, err := New(1, 1000000, 3)
	require.NoError(t, err)
	recordSequence(t, h, 1, 10, 100, 1000, 10000)

	it := h.LogarithmicBucketValues(1, 2)
	var prevLevel int64 = -1
	var totalCount int64
	steps := 0
	for it.HasNext() {
		step := it.Next()
		require.Greater(t, step.ValueIteratedTo, prevLevel)
		prevLevel = step.ValueIteratedTo
		totalCount += step.CountAddedInThisStep
		steps++
		require.Less(t, steps, 10000, "iterator must terminate")
	}
	assert.EqualValues(t, 5, totalCount)
}

func TestPercentilesIteratorReachesHundred(t *testing.T) {
	h, err := New(1, 1000000, 3)
	require.NoError(t, err)
	for i := int64(1); i <= 1000; i++ {
		require.NoError(t, h.Record(i))
	}

	it := h.Percentiles(5)
	var last IterationValue
	steps := 0
	for it.HasNext() {
		last = it.Next()
		steps++
		require.Less(t, steps, 100000, "iterator must terminate")
	}
	assert.InDelta(t, 100, last.PercentileIteratedTo, 0.001)
	assert.True(t, h.ValuesAreEquivalent(1000, last.ValueIteratedTo))
}

func TestIteratorsOnEmptyHistogramHaveNoNext(t *testing.T) {
	h, err := New(1, 1000, 2)
	require.NoError(t, err)

	assert.False(t, h.RecordedValues().HasNext())
	assert.False(t, h.LinearBucketValues(10).HasNext())
	assert.False(t, h.LogarithmicBucketValues(1, 2).HasNext())
	assert.False(t, h.Percentiles(5).HasNext())

	// AllValues always has countsLen steps regardless of recorded data.
	assert.True(t, h.AllValues().HasNext())
}
