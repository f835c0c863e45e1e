package data

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/bodgit/img2bas/rle"
)

type encoder struct {
	w    *bufio.Writer
	opts Options
}

func (e *encoder) record(scalars []int) error {
	s := make([]string, len(scalars))
	for i, v := range scalars {
		s[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintf(e.w, "DATA %s\n", strings.Join(s, ","))
	return err
}

// stream splits scalars into records of at most limit values each.
func (e *encoder) stream(scalars []int, limit int) error {
	for len(scalars) > 0 {
		n := limit
		if n > len(scalars) {
			n = len(scalars)
		}
		if err := e.record(scalars[:n]); err != nil {
			return err
		}
		scalars = scalars[n:]
	}
	return nil
}

func offsetExpr(v string, off int) string {
	switch {
	case off > 0:
		return fmt.Sprintf("%s + %d", v, off)
	case off < 0:
		return fmt.Sprintf("%s - %d", v, -off)
	}
	return v
}

func (e *encoder) program(m image.Image, p *rle.Palette) error {
	title := e.opts.Title
	if title == "" {
		title = "Image draw program"
	}

	b := m.Bounds()

	dim := p.Len() - 1
	if dim < 0 {
		dim = 0
	}
	y := offsetExpr("y", e.opts.OffsetY)

	lines := []string{
		fmt.Sprintf("REM %s", title),
		"OPTION EXPLICIT",
		"CLS RGB(0,0,0)",
		"SUB DrawImage()",
		"  LOCAL INTEGER w, h, i, j, n, x, y, l, c, r, g, b",
		fmt.Sprintf("  LOCAL INTEGER pal(%d)", dim),
		fmt.Sprintf("  w = %d : h = %d", b.Dx(), b.Dy()),
		"  READ n",
		fmt.Sprintf("  IF n <> %d THEN ERROR \"palette size mismatch\"", p.Len()),
		"  FOR i = 0 TO n - 1",
		"    READ r, g, b",
		"    pal(i) = RGB(r, g, b)",
		"  NEXT i",
		"  FOR y = 0 TO h - 1",
		"    READ n",
		fmt.Sprintf("    x = %d", e.opts.OffsetX),
		"    FOR j = 1 TO n",
		"      READ l, c",
		fmt.Sprintf("      LINE x, %s, x + l - 1, %s, , pal(c)", y, y),
		"      x = x + l",
		"    NEXT j",
		"  NEXT y",
		"END SUB",
	}
	if !e.opts.NoCall {
		lines = append(lines, "DrawImage")
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(e.w, l); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encode(m image.Image) error {
	p := rle.NewPalette(m)

	if err := e.program(m, p); err != nil {
		return err
	}

	// Palette section: the entry count on its own record, then the
	// flattened triples.
	if err := e.record([]int{p.Len()}); err != nil {
		return err
	}
	triples := make([]int, 0, 3*p.Len())
	for i := 0; i < p.Len(); i++ {
		c := p.At(i)
		triples = append(triples, int(c[0]), int(c[1]), int(c[2]))
	}
	if err := e.stream(triples, paletteChunk); err != nil {
		return err
	}

	// Row section: run count followed by (length, index) pairs. Each
	// row starts a fresh record; a record never mixes two rows.
	h := m.Bounds().Dy()
	for y := 0; y < h; y++ {
		runs := rle.Row(m, y)
		scalars := make([]int, 0, 1+2*len(runs))
		scalars = append(scalars, len(runs))
		for _, r := range runs {
			scalars = append(scalars, r.Length, p.Index(r.Color))
		}
		if err := e.stream(scalars, rowChunk); err != nil {
			return err
		}
	}

	if err := e.record([]int{terminator}); err != nil {
		return err
	}

	return e.w.Flush()
}

// Encode writes the image m to w as a paletted MMBasic program. A nil
// o selects DefaultOptions.
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
