package pdf417scan

import "io"

// Config enumerates the decoder's configuration options (spec §6).
type Config struct {
	// DebugLevel controls row-level diagnostics written to Diag: at 2 or
	// above each accepted row's transition list is dumped; 0 and 1 add no
	// row diagnostics. Per-symbol codeword values are governed by
	// DumpCodebook, and the unknown-control-codeword and Reed-Solomon
	// messages are written to Diag at every level.
	DebugLevel int

	// DumpCodebook emits per-symbol cluster/distance/codeword triples
	// during demodulation (the legacy "-c" flag).
	DumpCodebook bool

	// EmitFramed selects annotated output framing (TC/BC/NC-tagged)
	// instead of raw bytes.
	EmitFramed bool

	// ApplyECC runs the Reed-Solomon decoder before parsing; otherwise
	// the codeword stream is parsed as extracted.
	ApplyECC bool

	// Diag receives diagnostic output, part of it gated by DebugLevel and
	// DumpCodebook as described above. A nil Diag discards diagnostics.
	Diag io.Writer
}
