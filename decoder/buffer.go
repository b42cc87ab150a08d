package decoder

// Packed-word conventions produced by Demodulate and consumed by
// Buffer.Append, preserved from original_source/pdf417decode.c's
// add_codeword: the start and stop row guards decode, via the
// demodulator, to these exact 24-bit values; codewords only ever need
// 16 bits, but the test is kept at 24 bits for bit-compatibility with
// the packed (distance<<24|codeword) representation the demodulator
// produces (spec §9 Open Questions).
const (
	startMarker = 0x030000
	stopMarker  = 0x030001

	// Rewind is the sentinel Append treats as "discard everything
	// appended since the last start-of-row marker."
	Rewind = -3

	erasureMask = 0xffff
)

// MaxCodewords is the largest codeword stream PDF417 permits: 34 rows
// by up to 90 columns.
const MaxCodewords = 34 * 90

// Buffer accumulates demodulated codewords for one image, honoring the
// start/stop/rewind/erasure special sequences bestham's packed output
// can carry. It replaces the legacy file-scope statics (numouts,
// numerasures, and add_codeword's static locals) with an explicit,
// per-decode value (spec §5's "decoder session" redesign).
type Buffer struct {
	codewords  []int
	erasures   []int
	startOfRow int
	skip       int
}

// NewBuffer returns an empty codeword buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		codewords: make([]int, 0, MaxCodewords),
	}
}

// Append records one demodulated word, which is either a packed
// (distance<<24|codeword) value from Demodulate, the erasure sentinel
// (low 16 bits all set), or the Rewind sentinel.
func (b *Buffer) Append(word int) {
	if b.skip > 0 {
		b.skip--
		return
	}

	if (word & 0xffffff) == startMarker {
		b.skip = 1
		b.startOfRow = len(b.codewords)
		return
	}

	if (word & 0xffffff) == stopMarker {
		if len(b.codewords) > 0 {
			b.codewords = b.codewords[:len(b.codewords)-1]
		}
		return
	}

	if word == Rewind {
		b.codewords = b.codewords[:b.startOfRow]
		return
	}

	if word&erasureMask == erasureMask {
		b.erasures = append(b.erasures, len(b.codewords))
		b.codewords = append(b.codewords, 0)
		return
	}

	b.codewords = append(b.codewords, word&0xffff)
}

// Codewords returns the accumulated codeword stream. codewords[0] is
// the symbol's declared data length.
func (b *Buffer) Codewords() []int { return b.codewords }

// Erasures returns the indices, into Codewords, of positions that were
// recorded as erasures during demodulation.
func (b *Buffer) Erasures() []int { return b.erasures }
