package img2bas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/gift"
)

// stretch resizes m to exactly w by h using Lanczos resampling.
func stretch(m image.Image, w, h int) image.Image {
	g := gift.New(gift.Resize(w, h, gift.LanczosResampling))
	dst := image.NewRGBA(g.Bounds(m.Bounds()))
	g.Draw(dst, m)
	return dst
}

// letterbox scales m to fit inside w by h preserving the aspect ratio
// and centers it on a bg colored canvas. Each scaled dimension is at
// least one pixel.
func letterbox(m image.Image, w, h int, bg RGB) image.Image {
	b := m.Bounds()
	sw, sh := b.Dx(), b.Dy()

	scale := math.Min(float64(w)/float64(sw), float64(h)/float64(sh))
	nw := int(math.Round(float64(sw) * scale))
	if nw < 1 {
		nw = 1
	}
	nh := int(math.Round(float64(sh) * scale))
	if nh < 1 {
		nh = 1
	}

	resized := stretch(m, nw, nh)

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	uniform := image.NewUniform(color.RGBA{bg[0], bg[1], bg[2], 0xff})
	draw.Draw(canvas, canvas.Bounds(), uniform, image.Point{}, draw.Src)

	ox, oy := (w-nw)/2, (h-nh)/2
	draw.Draw(canvas, image.Rect(ox, oy, ox+nw, oy+nh), resized, resized.Bounds().Min, draw.Src)

	return canvas
}
