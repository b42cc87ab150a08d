package pdf417scan

import "github.com/gobarcode/pdf417scan/decoder"

// Decode runs the full pipeline over bm — row extraction, demodulation,
// optional Reed-Solomon correction, and stream parsing — and, if sink is
// non-nil, emits each decoded Segment to it in stream order once the
// whole stream has been parsed. It always returns the full Result
// regardless of sink.
func Decode(bm Bitmap, cfg *Config, sink Sink) (Result, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	segs, report := decoder.Decode(bm, decoder.Options{
		DebugLevel:   cfg.DebugLevel,
		DumpCodebook: cfg.DumpCodebook,
		ApplyECC:     cfg.ApplyECC,
		Diag:         cfg.Diag,
	})

	result := Result{
		Report: DecodeReport{
			TotalCodewords: report.TotalCodewords,
			DataCodewords:  report.DataCodewords,
			ECCCodewords:   report.ECCCodewords,
			Corrected:      report.Corrected,
			Uncorrectable:  report.Uncorrectable,
		},
	}
	if report.Uncorrectable {
		result.Report.Corrected = -1
	}

	for _, s := range segs {
		seg := Segment{Mode: convertMode(s.Mode), Text: s.Text, Data: s.Data}
		result.Segments = append(result.Segments, seg)
		if sink != nil {
			if err := sink.Emit(seg); err != nil {
				return result, err
			}
		}
	}

	return result, nil
}

// convertMode maps the decoder package's converter-mode tag onto the
// root package's Mode, the two being kept distinct so decoder has no
// dependency on the root package's output-framing types.
func convertMode(m decoder.ConverterMode) Mode {
	switch m {
	case decoder.ModeByte:
		return ModeByte
	case decoder.ModeNumeric:
		return ModeNumeric
	default:
		return ModeText
	}
}
