package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertTextUpperOnly(t *testing.T) {
	// 'AB' = 0*30+1, 'CD' = 2*30+3, 'EF' = 4*30+5.
	got := ConvertText([]int{1, 63, 125})
	require.Equal(t, "ABCDEF", got)
}

func TestConvertTextUpperToLowerLatch(t *testing.T) {
	// Sub-symbol 27 under UPPER is a latch to LOWER (mode=shift=LOWER);
	// the second 27, now evaluated under LOWER, is itself LOWER's own
	// upper-shift code (shift=UPPER only, mode stays LOWER) rather than
	// a repeated latch, since each sub-symbol dispatches on whatever
	// mode/shift the prior sub-symbol just set. The following codeword's
	// first sub-symbol is therefore decoded under the pending UPPER
	// shift before reverting to LOWER for its second.
	got := ConvertText([]int{27*30 + 27, 1})
	require.Equal(t, "Ab", got)
}

func TestConvertTextPunctShift(t *testing.T) {
	// UPPER 'A', then a punct-shift (sub-symbol 29) that applies to
	// exactly the next sub-symbol: '!' is index 10 in the punct
	// alphabet, after which shift reverts to UPPER for 'B'.
	got := ConvertText([]int{0*30 + 29, 10*30 + 1})
	require.Equal(t, "A!B", got)
}
