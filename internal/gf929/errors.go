package gf929

import "errors"

var (
	// ErrIllegalSymbol is returned when a received codeword is not below
	// the field's prime modulus.
	ErrIllegalSymbol = errors.New("gf929: codeword out of range")

	// ErrUncorrectable is returned when the error-locator polynomial's
	// degree does not match the number of roots found by the Chien
	// search: more errors occurred than the code can correct.
	ErrUncorrectable = errors.New("gf929: uncorrectable error pattern")

	// ErrForneyZeroDenominator is returned when Forney's formula hits a
	// zero denominator, which the legacy decoder also treats as
	// uncorrectable.
	ErrForneyZeroDenominator = errors.New("gf929: zero denominator in error evaluation")
)
