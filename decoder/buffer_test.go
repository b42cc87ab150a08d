package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferStartMarkerSkipsFollowingCodeword(t *testing.T) {
	b := NewBuffer()
	b.Append(startMarker)
	b.Append(3<<distanceShift | 42) // skipped: the codeword right after start
	b.Append(1<<distanceShift | 7)
	require.Equal(t, []int{7}, b.Codewords())
}

func TestBufferStopMarkerDropsLastCodeword(t *testing.T) {
	b := NewBuffer()
	b.Append(startMarker)
	b.Append(0) // skipped
	b.Append(1<<distanceShift | 5)
	b.Append(stopMarker)
	require.Equal(t, []int{5}, b.Codewords())
}

func TestBufferRewindDiscardsPartialRow(t *testing.T) {
	b := NewBuffer()
	b.Append(1<<distanceShift | 1)
	b.Append(startMarker)
	b.Append(0)
	b.Append(1<<distanceShift | 2)
	b.Append(Rewind)
	require.Equal(t, []int{1}, b.Codewords())
}

func TestBufferErasureRecordsPositionAndStoresZero(t *testing.T) {
	b := NewBuffer()
	b.Append(1<<distanceShift | 9)
	b.Append(-1) // erasure sentinel
	b.Append(1<<distanceShift | 11)
	require.Equal(t, []int{9, 0, 11}, b.Codewords())
	require.Equal(t, []int{1}, b.Erasures())
}
