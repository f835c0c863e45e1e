package img2bas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// quantizeImage reduces m to at most colors distinct colors using
// median cut, optionally diffusing the quantization error with
// Floyd-Steinberg dithering. A colors value of zero or less returns m
// unchanged.
func quantizeImage(m image.Image, colors int, dither bool) image.Image {
	if colors <= 0 {
		return m
	}

	q := quantize.MedianCutQuantizer{}
	b := m.Bounds()

	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	if dither {
		draw.FloydSteinberg.Draw(pm, b, m, b.Min)
	} else {
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	return pm
}
