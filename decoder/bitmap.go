// Package decoder implements the PDF417 decoding pipeline: row
// extraction, demodulation, codeword buffering, Reed-Solomon correction,
// and the mode-latch stream parser with its three compaction converters.
package decoder

import "github.com/gobarcode/pdf417scan/bitutil"

// Pixel is a single black/white bitmap sample.
type Pixel bool

// BLACK and WHITE are the two pixel values a Bitmap can hold.
const (
	WHITE Pixel = false
	BLACK Pixel = true
)

// Bitmap is a read-only 2D grid of binary pixels, read with At(x, y). The
// decoding pipeline only ever reads from a Bitmap; it never owns or
// mutates one.
type Bitmap interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// At returns the pixel at column x, row y.
	At(x, y int) Pixel
}

// DenseBitmap is a Bitmap backed by a packed bit matrix, suitable for
// wrapping a binarized image.
type DenseBitmap struct {
	matrix *bitutil.BitMatrix
}

// NewDenseBitmap wraps an existing packed bit matrix as a Bitmap, where a
// set bit means BLACK.
func NewDenseBitmap(matrix *bitutil.BitMatrix) *DenseBitmap {
	return &DenseBitmap{matrix: matrix}
}

// Width returns the number of columns.
func (d *DenseBitmap) Width() int { return d.matrix.Width() }

// Height returns the number of rows.
func (d *DenseBitmap) Height() int { return d.matrix.Height() }

// At returns the pixel at column x, row y.
func (d *DenseBitmap) At(x, y int) Pixel {
	if d.matrix.Get(x, y) {
		return BLACK
	}
	return WHITE
}

// ParseBoolBitmap builds a Bitmap from a [y][x] boolean grid, true
// meaning BLACK. It is mainly useful for tests that want to spell out a
// symbol's pixels directly.
func ParseBoolBitmap(pixels [][]bool) *DenseBitmap {
	return NewDenseBitmap(bitutil.ParseBoolMatrix(pixels))
}
