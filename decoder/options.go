package decoder

import "io"

// Options carries the decode-time configuration the pipeline needs,
// independent of the root package's Config so this package has no
// import-cycle dependency on it.
type Options struct {
	DebugLevel   int
	DumpCodebook bool
	ApplyECC     bool
	Diag         io.Writer
}

func (o Options) diagEnabled(level int) bool {
	return o.Diag != nil && o.DebugLevel >= level
}
