package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	pdf417scan "github.com/gobarcode/pdf417scan"
	"github.com/gobarcode/pdf417scan/bitutil"
)

// readPBM parses the netpbm P1 (plain) and P4 (raw) portable bitmap
// formats, the two formats the legacy decoder's pbm.h reader accepted,
// and returns the result as the same DenseBitmap the binarizer package
// produces from a grayscale image. No netpbm-parsing library appears
// anywhere in the retrieved pack, so this is implemented directly
// against the documented byte format.
func readPBM(r io.Reader) (*pdf417scan.DenseBitmap, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("pbm: reading magic number: %w", err)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("pbm: reading width: %w", err)
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("pbm: reading height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pbm: invalid dimensions %dx%d", width, height)
	}

	matrix := bitutil.NewBitMatrixWithSize(width, height)

	switch magic {
	case "P1":
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				tok, err := readToken(br)
				if err != nil {
					return nil, fmt.Errorf("pbm: reading pixel (%d,%d): %w", x, y, err)
				}
				if tok == "1" {
					matrix.Set(x, y)
				}
			}
		}
	case "P4":
		// P4 packs 8 pixels per byte, MSB first, each row padded to a
		// byte boundary; the raster begins immediately after the single
		// whitespace byte readToken consumes following the header's
		// last token.
		stride := (width + 7) / 8
		row := make([]byte, stride)
		for y := 0; y < height; y++ {
			if _, err := io.ReadFull(br, row); err != nil {
				return nil, fmt.Errorf("pbm: reading raster row %d: %w", y, err)
			}
			for x := 0; x < width; x++ {
				if row[x/8]&(1<<(7-uint(x%8))) != 0 {
					matrix.Set(x, y)
				}
			}
		}
	default:
		return nil, fmt.Errorf("pbm: unsupported magic number %q", magic)
	}

	return pdf417scan.NewDenseBitmap(matrix), nil
}

// readToken reads one whitespace-delimited token, skipping "#"-prefixed
// comment lines the way netpbm headers allow.
func readToken(br *bufio.Reader) (string, error) {
	var b []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if c == '#' {
			for {
				c, err := br.ReadByte()
				if err != nil {
					return "", err
				}
				if c == '\n' {
					break
				}
			}
			continue
		}
		if isSpace(c) {
			if len(b) > 0 {
				return string(b), nil
			}
			continue
		}
		b = append(b, c)
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
