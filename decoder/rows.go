package decoder

import "fmt"

// accumulator is the scan-line accumulator: per-column black-pixel
// counts across a run of visually identical pixel-rows, plus the run
// length. It corresponds to the legacy cumbits[]/num pair.
type accumulator struct {
	cumbits []float64
	num     int
}

func newAccumulator(cols int) *accumulator {
	return &accumulator{cumbits: make([]float64, cols)}
}

func (a *accumulator) reset() {
	a.num = 0
	for i := range a.cumbits {
		a.cumbits[i] = 0
	}
}

func (a *accumulator) add(bm Bitmap, y int) {
	for x := 0; x < len(a.cumbits); x++ {
		if bm.At(x, y) == BLACK {
			a.cumbits[x]++
		}
	}
	a.num++
}

// readyState is the row extractor's two-state machine (spec §4.1).
type readyState int

const (
	stateNew readyState = iota
	stateAccumulating
)

// ExtractRows walks bm top-to-bottom, grouping visually identical
// consecutive pixel-rows into row bands and demodulating each band into
// a run of codewords appended to buf. It mirrors the accumulation loop
// in original_source/pdf417decode.c's main().
func ExtractRows(bm Bitmap, buf *Buffer, opts Options) {
	cols, rows := bm.Width(), bm.Height()
	if cols == 0 || rows < 2 {
		return
	}

	fuzzThresh := cols / 40
	rowThresh := cols / 20

	acc := newAccumulator(cols)
	state := stateNew
	rowNum := 0

	for y := 1; y < rows; y++ {
		d := 0
		for x := 0; x < cols; x++ {
			if bm.At(x, y) != bm.At(x, y-1) {
				d++
			}
		}

		switch {
		case d < fuzzThresh:
			if state == stateNew {
				acc.reset()
				state = stateAccumulating
			}
			acc.add(bm, y)
		case d > rowThresh:
			if state == stateAccumulating {
				if processRow(cols, rowNum, acc, buf, opts) {
					rowNum++
				}
				state = stateNew
			}
		}
	}

	if state == stateAccumulating {
		processRow(cols, rowNum, acc, buf, opts)
	}
}

// processRow extracts the 17-bit symbol-character words from one
// accumulated row band and demodulates each into buf. It mirrors
// processrow() in original_source/pdf417decode.c.
func processRow(cols, rowNum int, acc *accumulator, buf *Buffer, opts Options) bool {
	thresh := 0.5 * float64(acc.num)

	firstBlack := 0
	for firstBlack < cols && acc.cumbits[firstBlack] < thresh {
		firstBlack++
	}
	if firstBlack+1 >= cols {
		return false
	}

	isBlack := func(x int) bool { return acc.cumbits[x] >= thresh }

	cumchange := []int{0}
	for x := firstBlack + 1; x < cols; x++ {
		if isBlack(x) != isBlack(x-1) {
			offset := x - firstBlack
			if len(cumchange) > 1 && (offset-cumchange[len(cumchange)-1])*15 < cumchange[1] {
				cumchange = cumchange[:len(cumchange)-1]
			} else {
				cumchange = append(cumchange, offset)
			}
		}
	}

	if len(cumchange) < 8 {
		return false
	}

	if opts.diagEnabled(2) {
		fmt.Fprintf(opts.Diag, "row %d: %d transitions %v\n", rowNum, len(cumchange), cumchange)
	}

	for j := 0; j+8 < len(cumchange); j += 8 {
		scale := cumchange[j+8] - cumchange[j]
		if scale == 0 {
			break
		}
		word := 0
		for k := 0; k < 8; k += 2 {
			s := int(17.0*float64(cumchange[j+k]-cumchange[j])/float64(scale) + 0.5)
			e := int(17.0*float64(cumchange[j+k+1]-cumchange[j])/float64(scale) + 0.5)
			if s < 1 {
				s = 1
			}
			if e > 16 {
				e = 16
			}
			for l := s; l < e; l++ {
				word |= 1 << (15 - l)
			}
		}
		packed := Demodulate(word, rowNum)
		if opts.DumpCodebook && opts.Diag != nil {
			fmt.Fprintf(opts.Diag, "row %d symbol %#05x -> cluster %d dist %d cw %d\n",
				rowNum, word, rowNum%3, packed>>distanceShift, packed&erasureMask)
		}
		buf.Append(packed)
	}

	return true
}
