/*
Package rle decomposes image rows into maximal horizontal runs of
identical color and assigns dense indices to the colors in use.

Colors are compared as 8-bit RGB triples only; any alpha channel in the
source image is discarded, so two pixels that differ only in alpha are
treated as identical.
*/
package rle

import (
	"image"
	"image/color"
)

// RGB is an 8-bit per channel color triple.
type RGB [3]uint8

// At returns the RGB triple of the pixel at (x, y) in m, discarding
// alpha. Coordinates are absolute, as with image.Image.At.
func At(m image.Image, x, y int) RGB {
	r, g, b, _ := m.At(x, y).RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// FromColor returns the RGB triple of c, discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// Run is a maximal horizontal segment of identically colored pixels
// within one row. It covers the columns [Start, Start+Length).
type Run struct {
	Start  int
	Length int
	Color  RGB
}

// Row scans row y of m and returns its ordered run sequence. The row
// index is relative to the image bounds, so row 0 is the top row. The
// returned runs are contiguous, ordered by ascending Start, no two
// adjacent runs share a color, and their lengths sum to the image
// width.
func Row(m image.Image, y int) []Run {
	b := m.Bounds()
	w := b.Dx()

	var runs []Run
	for x := 0; x < w; {
		start := x
		c := At(m, b.Min.X+x, b.Min.Y+y)
		for x++; x < w && At(m, b.Min.X+x, b.Min.Y+y) == c; x++ {
		}
		runs = append(runs, Run{Start: start, Length: x - start, Color: c})
	}

	return runs
}
