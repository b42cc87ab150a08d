package decoder

// Mode tags the compaction mode a segment of codewords decodes under.
type Mode int

// The control codeword values PDF417 reserves (spec §4.5); values below
// Text are ordinary payload codewords.
const (
	Text       = 900
	Byte       = 901
	Numeric    = 902
	ByteShift  = 913
	ReaderInit = 921
	MacroTerm  = 922
	MacroOpt   = 923
	Byte6K     = 924
	ECIUser    = 925
	ECIGeneral = 926
	ECICharset = 927
	MacroBegin = 928
)

// Segment is one contiguous run of codewords decoded under a single
// compaction mode, plus the converter's output.
type Segment struct {
	Mode ConverterMode
	Text string
	Data []byte
}

// ConverterMode is the three-way tag Segment carries, distinct from the
// raw control-codeword Mode above (which also spans macro/ECI no-ops
// that never reach a converter).
type ConverterMode int

const (
	ModeText ConverterMode = iota
	ModeByte
	ModeNumeric
)

// Diagnostics receives non-fatal parser events (spec §7's "row-level
// skip" / "unknown control codeword" categories) without aborting the
// decode.
type Diagnostics interface {
	Unknown(codeword int)
}

// discardDiagnostics implements Diagnostics by dropping every event.
type discardDiagnostics struct{}

func (discardDiagnostics) Unknown(int) {}

// ParseStream walks codewords[1:codewords[0]] (the declared data
// length), dispatching each payload segment to its compaction converter
// as soon as a mode change or shift boundary flushes it, and returns
// every decoded Segment in order. It mirrors decode_codewords() in
// original_source/pdf417decode.c.
func ParseStream(codewords []int, diag Diagnostics) []Segment {
	if diag == nil {
		diag = discardDiagnostics{}
	}
	if len(codewords) == 0 {
		return nil
	}
	length := codewords[0]
	if length == 0 || length > len(codewords) {
		return nil
	}

	var segments []Segment
	var pending []int
	mode := Text
	shift := mode

	flush := func(m int) {
		if len(pending) == 0 {
			return
		}
		segments = append(segments, convert(pending, m))
		pending = nil
	}

	for i := 1; i < length; i++ {
		cw := codewords[i]
		if cw >= 900 {
			flush(mode)

			switch cw {
			case Text, Byte, Numeric, Byte6K:
				mode, shift = cw, cw
			case ByteShift:
				shift = cw
			case ReaderInit, MacroTerm, MacroOpt, ECIUser, ECIGeneral, ECICharset, MacroBegin:
				// Acknowledged, no-op for this decoder (spec's Macro PDF
				// reassembly and ECI are out of scope beyond recognition).
			default:
				diag.Unknown(cw)
			}
			continue
		}

		pending = append(pending, cw)

		if shift != mode {
			flush(shift)
			shift = mode
		}
	}

	flush(mode)
	return segments
}

// convert dispatches one compaction segment to its converter, mirroring
// decode_segment()'s switch in original_source/pdf417decode.c.
func convert(cw []int, mode int) Segment {
	switch mode {
	case Byte, ByteShift, Byte6K:
		return Segment{Mode: ModeByte, Data: ConvertByte(cw, mode)}
	case Numeric:
		return Segment{Mode: ModeNumeric, Text: ConvertNumeric(cw)}
	default: // Text
		return Segment{Mode: ModeText, Text: ConvertText(cw)}
	}
}
