package rle

import "image"

// Palette is an ordered, deduplicated list of the colors used by an
// image. Indices are dense, start at zero, and follow first occurrence
// in row-major scan order; no entry is unused.
type Palette struct {
	colors []RGB
	index  map[RGB]int
}

// NewPalette builds the palette for m. It is a pure function of the
// pixel grid. The palette size is bounded only by the number of
// distinct colors present; reducing that number is the caller's
// problem, typically by quantizing the image first.
func NewPalette(m image.Image) *Palette {
	b := m.Bounds()
	p := &Palette{
		index: make(map[RGB]int),
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := At(m, x, y)
			if _, ok := p.index[c]; !ok {
				p.index[c] = len(p.colors)
				p.colors = append(p.colors, c)
			}
		}
	}

	return p
}

// Len returns the number of palette entries.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Index returns the index assigned to c. The color must be present in
// the image the palette was built from.
func (p *Palette) Index(c RGB) int {
	return p.index[c]
}

// At returns the palette entry with index i.
func (p *Palette) At(i int) RGB {
	return p.colors[i]
}
