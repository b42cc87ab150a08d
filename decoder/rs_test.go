package decoder

import (
	"testing"

	"github.com/gobarcode/pdf417scan/internal/gf929"
	"github.com/stretchr/testify/require"
)

func TestCorrectErrorsNoEccIsNoOp(t *testing.T) {
	codewords := []int{3, 10, 20}
	corrected, uncorrectable := CorrectErrors(codewords, nil, nil)
	require.Equal(t, 0, corrected)
	require.False(t, uncorrectable)
}

// buildSymbol lays out a codeword stream the way a real PDF417 symbol
// does: message[0] equals the declared data length k, followed by k-1
// more data codewords, followed by parityLen trailing ECC codewords
// computed by treating them as erasures and letting the decoder fill
// them in.
func buildSymbol(t *testing.T, message []int, parityLen int) []int {
	t.Helper()
	k := len(message)
	n := k + parityLen
	data := make([]int, n)
	copy(data[:k], message)

	erasPos := make([]int, parityLen)
	for i := 0; i < parityLen; i++ {
		erasPos[i] = gf929.Location(n, k+i)
	}
	enc := gf929.NewDecoder()
	_, err := enc.Decode(data, erasPos, parityLen, n, parityLen)
	require.NoError(t, err)
	return data
}

func TestCorrectErrorsFixesSingleErasure(t *testing.T) {
	message := []int{5, 2, 3, 4, 5}
	parityLen := 4
	codewords := buildSymbol(t, message, parityLen)
	want := append([]int(nil), codewords...)

	idx := 2
	codewords[idx] = 0

	corrected, uncorrectable := CorrectErrors(codewords, []int{idx}, nil)
	require.False(t, uncorrectable)
	require.Equal(t, 1, corrected)
	require.Equal(t, want, codewords)
}

func TestCorrectErrorsFixesSingleErrorWithoutDeclaredErasure(t *testing.T) {
	message := []int{6, 10, 20, 30, 40, 50}
	parityLen := 4
	codewords := buildSymbol(t, message, parityLen)
	want := append([]int(nil), codewords...)

	codewords[3] = (codewords[3] + 77) % gf929.Prime

	corrected, uncorrectable := CorrectErrors(codewords, nil, nil)
	require.False(t, uncorrectable)
	require.Equal(t, 1, corrected)
	require.Equal(t, want, codewords)
}
