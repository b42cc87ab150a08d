package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStreamTextOnly(t *testing.T) {
	// codewords[0] = 4 (length codeword + 3 data codewords), default
	// mode is Text.
	codewords := []int{4, 1, 63, 125}
	segs := ParseStream(codewords, nil)
	require.Len(t, segs, 1)
	require.Equal(t, ModeText, segs[0].Mode)
	require.Equal(t, "ABCDEF", segs[0].Text)
}

func TestParseStreamByteMode924(t *testing.T) {
	codewords := []int{7, Byte6K, 491, 81, 137, 725, 256}
	segs := ParseStream(codewords, nil)
	require.Len(t, segs, 1)
	require.Equal(t, ModeByte, segs[0].Mode)
	require.Equal(t, sixBytesOf([]int{491, 81, 137, 725, 256}), segs[0].Data)
}

func TestParseStreamNumericMode(t *testing.T) {
	cw := numericCodewords("12345678901234")
	codewords := append([]int{2 + len(cw), Numeric}, cw...)
	segs := ParseStream(codewords, nil)
	require.Len(t, segs, 1)
	require.Equal(t, ModeNumeric, segs[0].Mode)
	require.Equal(t, "12345678901234", segs[0].Text)
}

func TestParseStreamUnknownControlIsDiagnosedNotFatal(t *testing.T) {
	codewords := []int{3, 999, 1}
	var unknown []int
	segs := ParseStream(codewords, unknownRecorder(func(cw int) { unknown = append(unknown, cw) }))
	require.Equal(t, []int{999}, unknown)
	require.Len(t, segs, 1)
	require.Equal(t, "AB", segs[0].Text)
}

func TestParseStreamEmptyLengthYieldsNoSegments(t *testing.T) {
	require.Empty(t, ParseStream([]int{0}, nil))
	require.Empty(t, ParseStream(nil, nil))
}

type unknownRecorder func(int)

func (f unknownRecorder) Unknown(cw int) { f(cw) }
