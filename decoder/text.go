package decoder

import "strings"

// Text sub-modes (spec §3 "Text sub-state"): a latch sets both mode and
// shift; a shift sets only shift, and is consumed for exactly one
// sub-symbol before shift reverts to mode.
const (
	textUpper = iota
	textLower
	textMixed
	textPunct
)

// The four text alphabets, matching
// original_source/pdf417decode.c's txt_upper/txt_lower/txt_mixed/
// txt_punct tables, indexed by sub-symbol value 0-29. Sub-symbol 26
// renders as a space in UPPER, LOWER and MIXED. The latch/shift codes
// (27-29, plus 25 in MIXED and 29 in PUNCT) are handled by the
// transition table rather than rendered, so the characters stored at
// those indices are never reached.
var (
	textAlphabetUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ    "
	textAlphabetLower = "abcdefghijklmnopqrstuvwxyz    "
	textAlphabetMixed = "0123456789&\r\t,:#-.$/+%*=^     "
	textAlphabetPunct = ";<>@[\\]_`~!\r\t,:\n-.$/\"|*()?{}' "
)

// ConvertText decodes a Text-compaction segment into its string form,
// mirroring convert_text() in original_source/pdf417decode.c.
func ConvertText(cw []int) string {
	var out strings.Builder
	mode, shift := textUpper, textUpper

	for _, c := range cw {
		sub := [2]int{c / 30, c % 30}

		for _, s := range sub {
			enc := mode
			if mode != shift {
				enc = shift
				shift = mode
			}

			var ch byte
			switch enc {
			case textUpper:
				switch s {
				case 27:
					mode, shift = textLower, textLower
					continue
				case 28:
					mode, shift = textMixed, textMixed
					continue
				case 29:
					shift = textPunct
					continue
				}
				ch = textAlphabetUpper[s]

			case textLower:
				switch s {
				case 27:
					shift = textUpper
					continue
				case 28:
					mode, shift = textMixed, textMixed
					continue
				case 29:
					shift = textPunct
					continue
				}
				ch = textAlphabetLower[s]

			case textMixed:
				switch s {
				case 25:
					mode, shift = textPunct, textPunct
					continue
				case 27:
					mode, shift = textLower, textLower
					continue
				case 28:
					mode, shift = textUpper, textUpper
					continue
				case 29:
					shift = textPunct
					continue
				}
				ch = textAlphabetMixed[s]

			case textPunct:
				if s == 29 {
					mode, shift = textUpper, textUpper
					continue
				}
				ch = textAlphabetPunct[s]
			}

			out.WriteByte(ch)
		}
	}

	return out.String()
}
