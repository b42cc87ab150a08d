package decoder

import (
	"fmt"
	"io"

	"github.com/gobarcode/pdf417scan/internal/gf929"
)

// CorrectErrors runs the GF(929) errors-and-erasures Reed-Solomon pass
// over codewords in place, given the positions erasures recorded during
// demodulation. It returns the number of symbols corrected (0 means the
// stream was already valid) and whether correction failed; on failure
// codewords is left unmodified, per gf929.Decoder's contract. diag may
// be nil.
func CorrectErrors(codewords []int, erasures []int, diag io.Writer) (corrected int, uncorrectable bool) {
	if len(codewords) == 0 {
		return 0, false
	}
	eccLen := len(codewords) - codewords[0]
	if eccLen <= 0 {
		return 0, false
	}

	erasPos := make([]int, len(erasures))
	for i, idx := range erasures {
		erasPos[i] = gf929.Location(len(codewords), idx)
	}

	dec := gf929.NewDecoder()
	n, err := dec.Decode(codewords, erasPos, len(erasPos), len(codewords), eccLen)
	if err != nil {
		if diag != nil {
			fmt.Fprintln(diag, "Errors detected, but data could not be corrected")
		}
		return -1, true
	}
	if n > 0 && diag != nil {
		fmt.Fprintf(diag, "%d codewords corrected\n\n", n)
	}
	return n, false
}
