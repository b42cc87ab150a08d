package decoder

import "github.com/gobarcode/pdf417scan/internal/codebook"

func startPatternForTest() int { return codebook.StartPattern() }
func stopPatternForTest() int  { return codebook.StopPattern() }
func patternForTest(cluster, cw int) int {
	return codebook.Pattern(cluster, cw)
}
