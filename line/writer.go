package line

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/bodgit/img2bas/rle"
)

type encoder struct {
	w    *bufio.Writer
	opts Options
}

func (e *encoder) header() error {
	title := e.opts.Title
	if title == "" {
		title = "Image draw program"
	}
	if _, err := fmt.Fprintf(e.w, "REM %s\n", title); err != nil {
		return err
	}
	if e.opts.Author != "" {
		if _, err := fmt.Fprintf(e.w, "REM Author: %s\n", e.opts.Author); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(e.w, "OPTION EXPLICIT\nCLS RGB(0,0,0)\nSUB DrawImage()\n"); err != nil {
		return err
	}
	return nil
}

func (e *encoder) footer() error {
	if _, err := fmt.Fprint(e.w, "END SUB\n"); err != nil {
		return err
	}
	if !e.opts.NoCall {
		if _, err := fmt.Fprint(e.w, "DrawImage\n"); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encode(m image.Image) error {
	if !e.opts.NoHeader {
		if err := e.header(); err != nil {
			return err
		}
	}

	h := m.Bounds().Dy()
	for y := 0; y < h; y++ {
		if e.opts.CommentRate > 0 && y%e.opts.CommentRate == 0 {
			if _, err := fmt.Fprintf(e.w, "REM Row %d\n", y); err != nil {
				return err
			}
		}
		for _, r := range rle.Row(m, y) {
			x1 := r.Start + e.opts.OffsetX
			x2 := r.Start + r.Length - 1 + e.opts.OffsetX
			if _, err := fmt.Fprintf(e.w, "  LINE %d,%d,%d,%d, , RGB(%d,%d,%d)\n",
				x1, y+e.opts.OffsetY, x2, y+e.opts.OffsetY, r.Color[0], r.Color[1], r.Color[2]); err != nil {
				return err
			}
		}
	}

	if !e.opts.NoHeader {
		if err := e.footer(); err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// Encode writes the image m to w as an MMBasic program drawing one
// LINE statement per run. A nil o selects DefaultOptions.
func Encode(w io.Writer, m image.Image, o *Options) error {
	if o == nil {
		o = &DefaultOptions
	}

	e := encoder{
		w:    bufio.NewWriter(w),
		opts: *o,
	}

	return e.encode(m)
}
