package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// uniformBitmap is a Bitmap whose every pixel is the same color — far
// too few transitions for a row to ever be accepted.
type uniformBitmap struct {
	w, h  int
	pixel Pixel
}

func (u uniformBitmap) Width() int            { return u.w }
func (u uniformBitmap) Height() int           { return u.h }
func (u uniformBitmap) At(x, y int) Pixel { return u.pixel }

func TestExtractRowsOnBlankImageAppendsNothing(t *testing.T) {
	buf := NewBuffer()
	ExtractRows(uniformBitmap{w: 64, h: 20, pixel: WHITE}, buf, Options{})
	require.Empty(t, buf.Codewords())
}

func TestProcessRowTooFewTransitionsFails(t *testing.T) {
	cols := 40
	acc := newAccumulator(cols)
	acc.num = 2
	// All-black row: cumbits all equal num, so thresh = num/2, and every
	// column is "black" (cumbits[x] >= thresh) -> no transitions at all.
	for i := range acc.cumbits {
		acc.cumbits[i] = float64(acc.num)
	}
	buf := NewBuffer()
	ok := processRow(cols, 0, acc, buf, Options{})
	require.False(t, ok)
	require.Empty(t, buf.Codewords())
}
