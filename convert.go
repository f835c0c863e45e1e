package img2bas

import (
	"image"
	"io"

	"github.com/bodgit/img2bas/data"
	"github.com/bodgit/img2bas/line"
)

// Convert prepares the image m according to the converter options and
// writes the resulting MMBasic program to w. Preparation is resizing to
// the target canvas followed by quantization; the image must have a
// non-zero area.
func (c *Converter) Convert(w io.Writer, m image.Image) error {
	b := m.Bounds()

	tw, th := c.opts.Width, c.opts.Height
	if tw <= 0 {
		tw = b.Dx()
	}
	if th <= 0 {
		th = b.Dy()
	}

	if tw != b.Dx() || th != b.Dy() {
		if c.opts.Stretch {
			m = stretch(m, tw, th)
		} else {
			m = letterbox(m, tw, th, c.opts.Background)
		}
	}

	m = quantizeImage(m, c.opts.Colors, c.opts.Dither)

	c.logger.Printf("encoding %dx%d image\n", tw, th)

	if c.opts.Paletted {
		return data.Encode(w, m, &data.Options{
			Title:   c.opts.Title,
			OffsetX: c.opts.OffsetX,
			OffsetY: c.opts.OffsetY,
			NoCall:  c.opts.NoCall,
		})
	}

	return line.Encode(w, m, &line.Options{
		Title:       c.opts.Title,
		Author:      c.opts.Author,
		OffsetX:     c.opts.OffsetX,
		OffsetY:     c.opts.OffsetY,
		CommentRate: c.opts.CommentRate,
		NoHeader:    c.opts.NoHeader,
		NoCall:      c.opts.NoCall,
	})
}
