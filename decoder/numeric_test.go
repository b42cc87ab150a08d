package decoder

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// numericCodewords builds the base-900 codeword sequence PDF417 uses to
// encode digits, prefixed with the length marker "1" the converter
// strips back out.
func numericCodewords(digits string) []int {
	n := new(big.Int)
	n.SetString("1"+digits, 10)

	base := big.NewInt(900)
	zero := big.NewInt(0)
	var cw []int
	rem := new(big.Int)
	for n.Cmp(zero) > 0 {
		n.DivMod(n, base, rem)
		cw = append([]int{int(rem.Int64())}, cw...)
	}
	return cw
}

func TestConvertNumeric(t *testing.T) {
	cw := numericCodewords("12345678901234")
	got := ConvertNumeric(cw)
	require.Equal(t, "12345678901234", got)
}

func TestConvertNumericSingleDigit(t *testing.T) {
	cw := numericCodewords("7")
	got := ConvertNumeric(cw)
	require.Equal(t, "7", got)
}

func TestConvertNumericInvalidBatch(t *testing.T) {
	// A batch whose accumulator has a nonzero, non-one leading digit
	// (no length marker "1" ever appears before it) is flagged
	// <invalid>.
	got := ConvertNumeric([]int{2})
	require.Equal(t, "<invalid>", got)
}

func TestConvertNumericInvalidBatchThenValidBatch(t *testing.T) {
	// A malformed first batch must not abort later batches: only that
	// batch is marked <invalid>, and decoding continues.
	invalidBatch := make([]int, 15)
	invalidBatch[0] = 2
	cw := append(invalidBatch, numericCodewords("42")...)

	got := ConvertNumeric(cw)
	require.Equal(t, "<invalid>42", got)
}
