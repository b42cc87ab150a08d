package decoder

// bcdDigits is the width of the Numeric converter's fixed big-integer
// accumulator: enough decimal digits for a 15-codeword batch (base 900)
// plus the leading length marker. A fixed-size, stack-allocatable array
// is used rather than a dynamic big-integer library (spec §9's "fixed-
// width big integer" design note).
const bcdDigits = 45

// ConvertNumeric decodes a Numeric-compaction segment into its decimal
// digit string, mirroring convert_num() in
// original_source/pdf417decode.c: codewords are consumed in batches of
// up to 15, each folded into a 45-digit BCD accumulator by a multiply-
// by-900-then-add step, and the leading `1` length marker is stripped
// before the digits are emitted.
func ConvertNumeric(cw []int) string {
	var out []byte

	for len(cw) > 0 {
		batch := cw
		if len(batch) > 15 {
			batch = batch[:15]
		}
		cw = cw[len(batch):]

		var acc [bcdDigits]int
		for i, n := range batch {
			cwBCD := [3]int{n % 10, (n / 10) % 10, n / 100}

			if i > 0 {
				carry := 0
				for j := 0; j < bcdDigits; j++ {
					res := acc[j]*9 + carry
					acc[j] = res % 10
					carry = res / 10
				}
				for j := bcdDigits - 1; j >= 2; j-- {
					acc[j] = acc[j-2]
				}
				acc[0], acc[1] = 0, 0
			}

			carry := 0
			for j := 0; j < 3; j++ {
				res := acc[j] + cwBCD[j] + carry
				acc[j] = res % 10
				carry = res / 10
			}
			for j := 3; j < bcdDigits && carry > 0; j++ {
				res := acc[j] + carry
				acc[j] = res % 10
				carry = res / 10
			}
		}

		started := false
		invalid := false
		for j := 0; j < bcdDigits; j++ {
			d := acc[bcdDigits-1-j]
			switch {
			case started:
				out = append(out, byte('0'+d))
			case d == 1:
				started = true
			case d != 0:
				invalid = true
			}
			if invalid {
				break
			}
		}
		if invalid {
			out = append(out, []byte("<invalid>")...)
		}
	}

	return string(out)
}
