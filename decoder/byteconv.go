package decoder

// ConvertByte decodes a Byte-compaction segment (mode 901, 913, or 924)
// into its raw bytes, mirroring convert_byte() in
// original_source/pdf417decode.c: groups of 5 codewords are re-radixed
// from base 900 to base 256, producing 6 bytes each. Under 901 the
// group loop runs only while more than 5 codewords remain, so the last
// 1-5 codewords are emitted as one raw byte each; under 913 and 924 it
// runs while at least 5 remain, so a 924 segment whose codeword count
// is a multiple of 5 yields a byte count that is a multiple of 6
// (spec §9 Open Questions: the `len > 5` vs
// `len >= 5` loop-condition difference is preserved verbatim).
func ConvertByte(cw []int, mode int) []byte {
	var out []byte
	i := 0
	n := len(cw)

	for (mode == Byte && n > 5) || (mode != Byte && n >= 5) {
		var codeval uint64
		for k := 0; k < 5; k++ {
			codeval = codeval*900 + uint64(cw[i])
			i++
		}
		n -= 5

		var b [6]byte
		for j := 0; j < 6; j++ {
			b[5-j] = byte(codeval % 256)
			codeval >>= 8
		}
		out = append(out, b[:]...)
	}

	for ; n > 0; n-- {
		out = append(out, byte(cw[i]))
		i++
	}

	return out
}
