package decoder

import "github.com/gobarcode/pdf417scan/internal/codebook"

// distanceShift matches internal/codebook's packed (distance, codeword)
// layout so Buffer's 0x030000/0x030001 tests see the same bit pattern
// bestham produced in the legacy decoder.
const distanceShift = 24

// Demodulate maps one 15-bit symbol-character pattern, extracted from
// row rowIndex, to a packed word for Buffer.Append. It is the row-guard-
// aware form of bestham(): a literal match against the row guard
// patterns is recognized before consulting the payload codebook, and a
// cluster mismatch returns the erasure sentinel rather than a codeword.
func Demodulate(word, rowIndex int) int {
	if word == codebook.StartPattern() {
		return 0x030000
	}
	if word == codebook.StopPattern() {
		return 0x030001
	}

	cluster := rowIndex % 3
	best := cluster
	bestDist := codebook.ClusterDistance(word, cluster)
	for c := 0; c < codebook.NumClusters; c++ {
		if d := codebook.ClusterDistance(word, c); d < bestDist {
			bestDist = d
			best = c
		}
	}
	if best != cluster {
		return -1
	}

	cw, dist := codebook.BestMatch(word, cluster)
	return dist<<distanceShift | cw
}
