package hdrdouble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesRatio(t *testing.T) {
	_, err := New(1, 3)
	require.Error(t, err)
}

func TestRecordValueAndMean(t *testing.T) {
	h, err := New(1000, 3)
	require.NoError(t, err)

	require.NoError(t, h.RecordValue(10))
	require.NoError(t, h.RecordValue(20))

	assert.EqualValues(t, 2, h.TotalCount())
	assert.InDelta(t, 15.0, h.Mean(), 1)
}

func TestRecordValueZero(t *testing.T) {
	h, err := New(1000, 3)
	require.NoError(t, err)

	require.NoError(t, h.RecordValue(0))
	assert.EqualValues(t, 1, h.TotalCount())
}

func TestRecordValueRescalesForLargeValues(t *testing.T) {
	h, err := New(1000, 2)
	require.NoError(t, err)

	require.NoError(t, h.RecordValue(1))
	require.NoError(t, h.RecordValue(1e9))

	assert.EqualValues(t, 2, h.TotalCount())
	assert.InDelta(t, 1e9, h.ValueAtPercentile(100), 1e9*0.02)
}

func TestResetClearsCounts(t *testing.T) {
	h, err := New(1000, 3)
	require.NoError(t, err)
	require.NoError(t, h.RecordValue(5))
	h.Reset()
	assert.EqualValues(t, 0, h.TotalCount())
}
