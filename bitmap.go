// Package pdf417scan decodes PDF417 two-dimensional barcodes from a
// rasterized bitmap into the payload bytes, text, or numbers they
// encode.
package pdf417scan

import (
	"github.com/gobarcode/pdf417scan/bitutil"
	"github.com/gobarcode/pdf417scan/decoder"
)

// Pixel is a single black/white bitmap sample.
type Pixel = decoder.Pixel

// BLACK and WHITE are the two pixel values a Bitmap can hold.
const (
	WHITE = decoder.WHITE
	BLACK = decoder.BLACK
)

// Bitmap is a read-only 2D grid of binary pixels, read with At(x, y). The
// core decoding pipeline only ever reads from a Bitmap; it never owns or
// mutates one.
type Bitmap = decoder.Bitmap

// DenseBitmap is a Bitmap backed by a packed bit matrix, suitable for
// wrapping a binarized image.
type DenseBitmap = decoder.DenseBitmap

// NewDenseBitmap wraps an existing packed bit matrix as a Bitmap, where a
// set bit means BLACK.
func NewDenseBitmap(matrix *bitutil.BitMatrix) *DenseBitmap {
	return decoder.NewDenseBitmap(matrix)
}

// ParseBoolBitmap builds a Bitmap from a [y][x] boolean grid, true
// meaning BLACK. It is mainly useful for tests that want to spell out a
// symbol's pixels directly.
func ParseBoolBitmap(pixels [][]bool) *DenseBitmap {
	return decoder.ParseBoolBitmap(pixels)
}
