package line

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"
)

var errNoLines = errors.New("line: no drawing statements")

type segment struct {
	x1, x2, y int
	c         color.RGBA
}

// Decode parses a program produced by Encode and redraws it. The
// returned image spans from (0, 0) to the bottom-right corner of the
// furthest drawing statement; pixels no statement touches keep the CLS
// background color.
func Decode(r io.Reader) (image.Image, error) {
	var segments []segment
	bg := color.RGBA{A: 0xff}

	s := bufio.NewScanner(r)
	for s.Scan() {
		t := strings.TrimSpace(s.Text())
		switch {
		case strings.HasPrefix(t, "CLS "):
			var cr, cg, cb int
			if _, err := fmt.Sscanf(t, "CLS RGB(%d,%d,%d)", &cr, &cg, &cb); err != nil {
				return nil, fmt.Errorf("line: malformed CLS statement %q", t)
			}
			bg = color.RGBA{uint8(cr), uint8(cg), uint8(cb), 0xff}
		case strings.HasPrefix(t, "LINE "):
			var x1, y1, x2, y2, cr, cg, cb int
			if _, err := fmt.Sscanf(t, "LINE %d,%d,%d,%d, , RGB(%d,%d,%d)", &x1, &y1, &x2, &y2, &cr, &cg, &cb); err != nil {
				return nil, fmt.Errorf("line: malformed LINE statement %q", t)
			}
			if y1 != y2 || x2 < x1 {
				return nil, fmt.Errorf("line: not a horizontal segment %q", t)
			}
			segments = append(segments, segment{
				x1: x1,
				x2: x2,
				y:  y1,
				c:  color.RGBA{uint8(cr), uint8(cg), uint8(cb), 0xff},
			})
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if len(segments) == 0 {
		return nil, errNoLines
	}

	var w, h int
	for _, sg := range segments {
		if sg.x2+1 > w {
			w = sg.x2 + 1
		}
		if sg.y+1 > h {
			h = sg.y + 1
		}
	}

	m := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(m, m.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	for _, sg := range segments {
		for x := sg.x1; x <= sg.x2; x++ {
			m.SetRGBA(x, sg.y, sg.c)
		}
	}

	return m, nil
}
