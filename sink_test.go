package pdf417scan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawSinkWritesUndelimited(t *testing.T) {
	var buf bytes.Buffer
	sink := NewRawSink(&buf)
	require.NoError(t, sink.Emit(Segment{Mode: ModeText, Text: "AB"}))
	require.NoError(t, sink.Emit(Segment{Mode: ModeByte, Data: []byte{0x01, 0x02}}))
	require.Equal(t, "AB\x01\x02", buf.String())
}

func TestAnnotatedSinkFramesByMode(t *testing.T) {
	var buf bytes.Buffer
	sink := NewAnnotatedSink(&buf)
	require.NoError(t, sink.Emit(Segment{Mode: ModeText, Text: "hi"}))
	require.NoError(t, sink.Emit(Segment{Mode: ModeByte, Data: []byte{0xab, 0xcd}}))
	require.NoError(t, sink.Emit(Segment{Mode: ModeNumeric, Text: "42"}))
	require.Equal(t, "TC \"hi\"\nBC \"ABCD\"\nNC \"42\"\n", buf.String())
}

func TestNewSinkSelectsFramingFromConfig(t *testing.T) {
	var buf bytes.Buffer
	_, ok := NewSink(&buf, &Config{EmitFramed: true}).(*annotatedSink)
	require.True(t, ok)
	_, ok = NewSink(&buf, &Config{}).(*rawSink)
	require.True(t, ok)
}
