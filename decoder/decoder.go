package decoder

import "fmt"

// Report summarizes the Reed-Solomon correction pass for one symbol.
type Report struct {
	TotalCodewords int
	DataCodewords  int
	ECCCodewords   int
	Corrected      int
	Uncorrectable  bool
}

// unknownDiag adapts Options.Diag into a Diagnostics that writes
// "Unknown mode %d" lines, matching decode_codewords()'s
// fprintf(stderr, "Unknown mode %d\n", cw).
type unknownDiag struct {
	opts Options
}

func (d unknownDiag) Unknown(cw int) {
	if d.opts.Diag != nil {
		fmt.Fprintf(d.opts.Diag, "Unknown mode %d\n", cw)
	}
}

// Decode runs the full pipeline over bm: row extraction, demodulation,
// optional Reed-Solomon correction, and stream parsing, returning the
// decoded segments and an ECC report. It mirrors main()'s body in
// original_source/pdf417decode.c, with the file-scope statics replaced
// by this function's locals (spec §5).
func Decode(bm Bitmap, opts Options) ([]Segment, Report) {
	buf := NewBuffer()
	ExtractRows(bm, buf, opts)

	codewords := buf.Codewords()
	var report Report

	if len(codewords) > 0 {
		report.TotalCodewords = len(codewords)
		report.DataCodewords = codewords[0]
		report.ECCCodewords = len(codewords) - codewords[0]
	}

	if opts.ApplyECC && report.ECCCodewords > 0 {
		corrected, uncorrectable := CorrectErrors(codewords, buf.Erasures(), opts.Diag)
		report.Corrected = corrected
		report.Uncorrectable = uncorrectable
	}

	segments := ParseStream(codewords, unknownDiag{opts})
	return segments, report
}
