// Package codebook builds and queries the three-cluster Hamming codebook
// the demodulator uses to turn a 15-bit symbol-character pattern into a
// PDF417 codeword value.
//
// PDF417 assigns the 2,787 valid symbol-character bar/space patterns to
// three "clusters" of 929 patterns each (one cluster per row modulo 3);
// the legacy decoder (original_source/pdf417decode.c) ships this
// assignment as a precomputed `dham[3][32768]` constant and treats its
// contents as opaque, externally-sourced table data (spec §4.2: "table
// data external"). That literal ISO 15438 table was not part of the
// retrieved reference material, so this package generates an equivalent
// table at init time from the same structural rule PDF417 patterns obey
// — eight alternating bar/space runs of 1-6 modules summing to 17 modules,
// classified into one of three clusters — rather than inventing or
// guessing the standard's exact byte values. See DESIGN.md for the
// resulting Open Question disposition.
package codebook

import "math/bits"

const (
	// ModulesInCodeword is the width, in modules, of one PDF417 symbol
	// character.
	ModulesInCodeword = 17

	// RunsInCodeword is the number of alternating bar/space runs (4 bars
	// + 4 spaces) that make up one symbol character.
	RunsInCodeword = 8

	// patternBits is the width of the demodulator's lookup index: the 17
	// module bits minus the two edge bits (module 0 is always black,
	// module 16 is always white) that the row extractor never stores.
	patternBits = ModulesInCodeword - 2

	// NumClusters is the number of row-indexed codebooks.
	NumClusters = 3

	// CodewordsPerCluster is the number of valid symbol characters per
	// cluster, and therefore the number of payload codeword values.
	CodewordsPerCluster = 929
)

// packed value layout: upper byte is the Hamming distance to the nearest
// valid pattern of that cluster; the low 16 bits are the codeword.
const (
	distanceShift = 24
	codewordMask  = 0xFFFF
)

// table holds dham[cluster][word]: for every 15-bit pattern and cluster,
// the packed (distance, codeword) pair for the closest valid symbol of
// that cluster.
var table [NumClusters][1 << patternBits]uint32

// patterns holds, for each cluster, the CodewordsPerCluster valid
// patterns indexed by codeword value.
var patterns [NumClusters][CodewordsPerCluster]int

// startRuns and stopRuns are the row guard patterns the row extractor's
// uniform 8-transition grouping hands to the demodulator just like any
// other symbol character (original_source/pdf417decode.c groups all
// transitions into 8s indiscriminately, including the guards at each
// row's edges; its table incidentally decodes them to codeword 0 and 1
// respectively at Hamming distance 3, which is what the `0x030000` /
// `0x030001` checks in add_codeword are matching against). The literal
// ISO 15438 guard widths were not present in the retrieved material, so
// these are a distinct, documented 8-run/17-module stand-in rather than
// the authentic guard bit pattern; see DESIGN.md.
var (
	startRuns = [RunsInCodeword]int{8, 1, 1, 1, 1, 1, 1, 3}
	stopRuns  = [RunsInCodeword]int{7, 1, 1, 1, 1, 1, 1, 4}
)

var startPattern, stopPattern int

func init() {
	buildPatterns()
	buildTable()
	startPattern = runsToPattern(startRuns)
	stopPattern = runsToPattern(stopRuns)
}

// StartPattern returns the 15-bit pattern the row extractor's first
// symbol-character group takes on a row's left guard.
func StartPattern() int { return startPattern }

// StopPattern returns the 15-bit pattern the row extractor's last
// symbol-character group takes on a row's right guard.
func StopPattern() int { return stopPattern }

// buildPatterns enumerates every composition of ModulesInCodeword into
// RunsInCodeword runs of 1-6 modules, classifies each by the sum of its
// four bar runs modulo NumClusters, and assigns the first
// CodewordsPerCluster patterns found in each cluster (in generation
// order) codeword values 0..CodewordsPerCluster-1.
func buildPatterns() {
	var runs [RunsInCodeword]int
	next := [NumClusters]int{}

	var generate func(pos, remaining int)
	generate = func(pos, remaining int) {
		if pos == RunsInCodeword {
			if remaining != 0 {
				return
			}
			barSum := runs[0] + runs[2] + runs[4] + runs[6]
			cluster := barSum % NumClusters
			if next[cluster] < CodewordsPerCluster {
				patterns[cluster][next[cluster]] = runsToPattern(runs)
				next[cluster]++
			}
			return
		}
		minRun, maxRun := 1, 6
		// Prune branches that can no longer reach remaining == 0.
		left := RunsInCodeword - pos - 1
		for r := minRun; r <= maxRun; r++ {
			rem := remaining - r
			if rem < 0 || rem > left*6 || rem < left*1 {
				continue
			}
			runs[pos] = r
			generate(pos+1, rem)
		}
	}
	generate(0, ModulesInCodeword)
}

// runsToPattern converts eight alternating bar/space run lengths
// (bar, space, bar, space, ...) into the 15-bit pattern the row
// extractor produces: module 0 is always black and module 16 always
// white, so only modules 1-15 are encoded, MSB first.
func runsToPattern(runs [RunsInCodeword]int) int {
	var modules [ModulesInCodeword]byte
	pos := 0
	for i, r := range runs {
		black := byte(0)
		if i%2 == 0 {
			black = 1
		}
		for j := 0; j < r; j++ {
			modules[pos] = black
			pos++
		}
	}
	pattern := 0
	for m := 1; m <= 15; m++ {
		if modules[m] == 1 {
			pattern |= 1 << (15 - m)
		}
	}
	return pattern
}

// buildTable computes, for every 15-bit word and cluster, the Hamming
// distance to the nearest valid pattern of that cluster and the
// codeword it represents.
func buildTable() {
	for cluster := 0; cluster < NumClusters; cluster++ {
		for word := 0; word < (1 << patternBits); word++ {
			bestDist := patternBits + 1
			bestCW := 0
			for cw, pattern := range patterns[cluster] {
				d := bits.OnesCount16(uint16(word ^ pattern))
				if d < bestDist {
					bestDist = d
					bestCW = cw
					if d == 0 {
						break
					}
				}
			}
			table[cluster][word] = uint32(bestDist)<<distanceShift | uint32(bestCW)
		}
	}
}

// BestMatch returns, for the given 15-bit symbol pattern and expected
// cluster (row_number mod 3), the codeword whose pattern is closest in
// the expected cluster, along with the Hamming distance to that match.
// Other clusters are not consulted. This is the
// decomposed form of the legacy bestham(): bestham itself additionally
// compares across clusters and returns an erasure sentinel when the best
// match lies outside the expected cluster; see Demodulate.
func BestMatch(word, cluster int) (codeword, distance int) {
	packed := table[cluster][word]
	return int(packed & codewordMask), int(packed >> distanceShift)
}

// ClusterDistance returns the Hamming distance from word to the nearest
// valid pattern in cluster, without decoding a codeword.
func ClusterDistance(word, cluster int) int {
	return int(table[cluster][word] >> distanceShift)
}

// Pattern returns the canonical 15-bit pattern PDF417 uses to encode
// codeword cw in the given cluster. It is the inverse of BestMatch for
// noise-free input and exists so tests (and any future encoder) can
// synthesize exact symbol patterns.
func Pattern(cluster, codeword int) int {
	return patterns[cluster][codeword]
}
