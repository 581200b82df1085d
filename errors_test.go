package hdrhistogram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWrappersPreserveSentinel(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"invalidConfiguration", invalidConfigurationf("bad: %d", 1), ErrInvalidConfiguration},
		{"outOfRange", outOfRangef("bad: %d", 1), ErrOutOfRange},
		{"incompatibleShape", incompatibleShapef("bad: %d", 1), ErrIncompatibleShape},
		{"countOverflow", countOverflowf("bad: %d", 1), ErrCountOverflow},
		{"decodeError", decodeErrorf("bad: %d", 1), ErrDecodeError},
		{"subtractNegative", subtractNegativef("bad: %d", 1), ErrSubtractNegative},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, tc.want))
			assert.Contains(t, tc.err.Error(), "bad: 1")
		})
	}
}
