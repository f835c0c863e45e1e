package data

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
)

var (
	errNoData       = errors.New("data: no DATA records")
	errTruncated    = errors.New("data: truncated stream")
	errNoTerminator = errors.New("data: missing terminator")
	errTrailingData = errors.New("data: data after terminator")
	errBadIndex     = errors.New("data: invalid palette index")
	errRowWidth     = errors.New("data: inconsistent row width")
	errPaletteSize  = errors.New("data: palette too large to decode")
)

// scalars extracts the DATA records of a program emitted by Encode as
// one continuous scalar sequence, ignoring record boundaries.
func scalars(r io.Reader) ([]int, error) {
	var out []int

	s := bufio.NewScanner(r)
	for s.Scan() {
		t := strings.TrimSpace(s.Text())
		if !strings.HasPrefix(t, "DATA ") {
			continue
		}
		for _, f := range strings.Split(strings.TrimPrefix(t, "DATA "), ",") {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("data: malformed scalar %q", f)
			}
			out = append(out, v)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

type run struct {
	length, index int
}

type decoder struct {
	scalars []int
	pos     int
}

func (d *decoder) next() (int, error) {
	if d.pos >= len(d.scalars) {
		return 0, errTruncated
	}
	v := d.scalars[d.pos]
	d.pos++
	return v, nil
}

func (d *decoder) readPalette() (color.Palette, error) {
	n, err := d.next()
	if err != nil {
		return nil, err
	}
	switch {
	case n < 0:
		return nil, fmt.Errorf("data: invalid palette size %d", n)
	case n > 256:
		// The format itself imposes no cap, but image.Paletted can
		// only address 256 entries.
		return nil, errPaletteSize
	}

	p := make(color.Palette, n)
	for i := range p {
		var triple [3]int
		for j := range triple {
			v, err := d.next()
			if err != nil {
				return nil, err
			}
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("data: invalid color component %d", v)
			}
			triple[j] = v
		}
		p[i] = color.RGBA{uint8(triple[0]), uint8(triple[1]), uint8(triple[2]), 0xff}
	}

	return p, nil
}

func (d *decoder) readRows() ([][]run, error) {
	var rows [][]run
	for {
		n, err := d.next()
		if err != nil {
			return nil, errNoTerminator
		}
		if n == terminator {
			return rows, nil
		}
		if n < 1 {
			return nil, fmt.Errorf("data: invalid run count %d", n)
		}

		row := make([]run, n)
		for i := range row {
			l, err := d.next()
			if err != nil {
				return nil, err
			}
			c, err := d.next()
			if err != nil {
				return nil, err
			}
			if l < 1 {
				return nil, fmt.Errorf("data: invalid run length %d", l)
			}
			row[i] = run{length: l, index: c}
		}
		rows = append(rows, row)
	}
}

// Decode parses the DATA stream of a program produced by Encode and
// reconstructs the pixel grid. The image width is the length sum of the
// first row and the height is the number of rows before the terminator;
// the drawing offsets baked into the program text do not affect the
// result.
func Decode(r io.Reader) (image.Image, error) {
	var (
		d   decoder
		err error
	)
	if d.scalars, err = scalars(r); err != nil {
		return nil, err
	}
	if len(d.scalars) == 0 {
		return nil, errNoData
	}

	p, err := d.readPalette()
	if err != nil {
		return nil, err
	}

	rows, err := d.readRows()
	if err != nil {
		return nil, err
	}

	if d.pos != len(d.scalars) {
		return nil, errTrailingData
	}

	var w int
	if len(rows) > 0 {
		for _, r := range rows[0] {
			w += r.length
		}
	}

	m := image.NewPaletted(image.Rect(0, 0, w, len(rows)), p)
	for y, row := range rows {
		x := 0
		for _, r := range row {
			if r.index < 0 || r.index >= len(p) {
				return nil, errBadIndex
			}
			for i := 0; i < r.length; i++ {
				m.SetColorIndex(x, y, uint8(r.index))
				x++
			}
		}
		if x != w {
			return nil, errRowWidth
		}
	}

	return m, nil
}
