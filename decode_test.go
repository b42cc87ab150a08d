package pdf417scan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// blankBitmap is uniform white, far too few transitions for any row to
// ever be accepted by the extractor.
type blankBitmap struct{ w, h int }

func (b blankBitmap) Width() int         { return b.w }
func (b blankBitmap) Height() int        { return b.h }
func (b blankBitmap) At(x, y int) Pixel { return WHITE }

func TestDecodeOnBlankBitmapYieldsEmptyResultNoError(t *testing.T) {
	result, err := Decode(blankBitmap{w: 64, h: 20}, &Config{}, nil)
	require.NoError(t, err)
	require.Empty(t, result.Segments)
	require.Zero(t, result.Report.TotalCodewords)
}

func TestDecodeNilConfigDefaultsToRawUnframed(t *testing.T) {
	var buf bytes.Buffer
	result, err := Decode(blankBitmap{w: 64, h: 20}, nil, NewRawSink(&buf))
	require.NoError(t, err)
	require.Empty(t, result.Segments)
	require.Empty(t, buf.String())
}

func TestDecodeAnnotatedSinkWithNoSegmentsReturnsCleanly(t *testing.T) {
	// A bitmap that still yields no codewords, so Decode never actually
	// calls sink.Emit; this confirms the plumbing returns cleanly
	// when no segments are produced, since producing a real symbol bitmap
	// is out of scope for a unit test at this layer (covered in decoder/
	// by feeding codewords directly into ParseStream and Buffer).
	result, err := Decode(blankBitmap{w: 64, h: 20}, &Config{EmitFramed: true}, NewAnnotatedSink(&bytes.Buffer{}))
	require.NoError(t, err)
	require.Empty(t, result.Segments)
}
