package hdrhistogram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOutOfRange(t *testing.T) {
	h, err := New(1, 1000, 2)
	require.NoError(t, err)

	err = h.Record(1001)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.EqualValues(t, 0, h.TotalCount())
}

func TestRecordValuesAccumulatesCount(t *testing.T) {
	h, err := New(1, 1000, 2)
	require.NoError(t, err)

	require.NoError(t, h.RecordValues(100, 5))
	assert.EqualValues(t, 5, h.TotalCount())

	count, err := h.CountAt(100)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
}

func TestRecordCorrectedValueSynthesizesSamples(t *testing.T) {
	h, err := New(1, 1000000, 3)
	require.NoError(t, err)

	require.NoError(t, h.RecordCorrectedValue(1000, 100))

	// synthetic samples at 1000-100, 1000-200, ..., down to >= 100,
	// plus the recorded value itself: 1000,900,...,100 -> 10 values.
	assert.EqualValues(t, 10, h.TotalCount())
}

func TestRecordCorrectedValueBelowIntervalRecordsOnlyItself(t *testing.T) {
	h, err := New(1, 1000000, 3)
	require.NoError(t, err)

	require.NoError(t, h.RecordCorrectedValue(50, 100))
	assert.EqualValues(t, 1, h.TotalCount())
}

func TestResetClearsCountsAndTimes(t *testing.T) {
	h, err := New(1, 1000, 2)
	require.NoError(t, err)

	require.NoError(t, h.Record(10))
	h.SetStartTimeMs(5)
	h.SetEndTimeMs(15)

	h.Reset()

	assert.EqualValues(t, 0, h.TotalCount())
	assert.EqualValues(t, 0, h.StartTimeMs())
	assert.EqualValues(t, 0, h.EndTimeMs())
}
