package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemodulateRecognizesRowGuards(t *testing.T) {
	require.Equal(t, 0x030000, Demodulate(startPatternForTest(), 0))
	require.Equal(t, 0x030001, Demodulate(stopPatternForTest(), 1))
}

func TestDemodulateRoundTripsCleanPattern(t *testing.T) {
	for cluster := 0; cluster < 3; cluster++ {
		for _, cw := range []int{0, 1, 100, 500, 928} {
			pattern := patternForTest(cluster, cw)
			packed := Demodulate(pattern, cluster)
			require.Equal(t, cw, packed&0xffff, "cluster %d codeword %d", cluster, cw)
			require.Equal(t, 0, packed>>distanceShift, "cluster %d codeword %d", cluster, cw)
		}
	}
}

func TestDemodulateClusterMismatchIsErasure(t *testing.T) {
	// A pattern's true nearest cluster is found by construction; asking
	// for a different cluster must report the erasure sentinel.
	for cluster := 0; cluster < 3; cluster++ {
		pattern := patternForTest(cluster, 0)
		wrong := (cluster + 1) % 3
		require.Equal(t, -1, Demodulate(pattern, wrong))
	}
}
