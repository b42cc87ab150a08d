// Package gf929 implements the prime Galois field GF(929) used by PDF417's
// Reed-Solomon error correction, together with the errors-and-erasures
// decoder defined over it.
package gf929

// Prime is the field's modulus. PDF417 codewords are valid symbols in
// [0, 928]; Prime is one past the largest codeword value.
const Prime = 929

// generator is the field's chosen primitive root, used to build the
// log/antilog tables.
const generator = 3

// A0 represents the discrete logarithm of zero (the field has no log of
// zero; A0 stands in for "index of infinity" the way the legacy decoder
// uses it).
const A0 = Prime - 1

// expTable and logTable are built once, analogous to modulus_gf.go's
// NewModulusGF, except the legacy decoder indexes a fixed-size [Prime]
// array directly rather than wrapping it in a constructor-built struct:
// there is exactly one field in play, so package-level tables (immutable
// after init, per the concurrency model) are the natural fit.
var (
	expTable [Prime]int // expTable[i] = generator^i mod Prime
	logTable [Prime]int // logTable[v] = discrete log of v, base generator
)

func init() {
	power := 1
	for i := 0; i < Prime-1; i++ {
		expTable[i] = power
		if i != Prime-1 {
			logTable[power] = i
		}
		power = (power * generator) % Prime
	}
	logTable[0] = A0
	expTable[Prime-1] = 1
}

// Exp returns generator^i mod Prime for i in [0, Prime-1]. Negative or
// out-of-range exponents are first reduced modulo Prime-1.
func Exp(i int) int {
	return expTable[modBase(i)]
}

// Log returns the discrete logarithm of v (base generator). Log(0) returns
// A0, matching the legacy table's "index of infinity" convention.
func Log(v int) int {
	return logTable[v]
}

// modBase reduces an exponent into [0, Prime-2], matching the legacy
// decoder's modbase(x) = x % (GPRIME - 1), including its treatment of
// negative inputs via Go's modulo-then-adjust.
func modBase(x int) int {
	m := x % (Prime - 1)
	if m < 0 {
		m += Prime - 1
	}
	return m
}

// add returns (a + b) mod Prime.
func add(a, b int) int {
	return (a + b) % Prime
}
