package pdf417scan

// DecodeReport summarizes the Reed-Solomon correction pass for one
// symbol, mirroring the summary line the legacy CLI prints around its
// RS call ("Total codewords = %d (%d data, %d ECC)", "%d codewords
// corrected", "Errors detected, but data could not be corrected").
type DecodeReport struct {
	// TotalCodewords is the number of codewords extracted from the
	// symbol, including the length codeword.
	TotalCodewords int

	// DataCodewords is TotalCodewords minus the ECC codeword count.
	DataCodewords int

	// ECCCodewords is the number of trailing error-correction
	// codewords the symbol declared.
	ECCCodewords int

	// Corrected is the number of codewords the RS pass corrected, -1 if
	// correction failed, and 0 if ECC was not applied.
	Corrected int

	// Uncorrectable is true when the RS pass ran and failed.
	Uncorrectable bool
}

// Result is the outcome of decoding one PDF417 symbol.
type Result struct {
	// Segments holds every decoded segment in stream order, regardless
	// of which Sink (if any) consumed them live.
	Segments []Segment

	// Report carries the codeword counts and the Reed-Solomon correction
	// summary; Corrected and Uncorrectable stay zero when ECC was not
	// applied.
	Report DecodeReport
}
