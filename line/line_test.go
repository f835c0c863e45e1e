package line

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"github.com/bodgit/img2bas/rle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, c color.Color) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, c)
		}
	}
	return m
}

func TestEncode(t *testing.T) {
	m := uniform(2, 1, color.RGBA{255, 0, 0, 255})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, nil))

	expected := `REM Image Draw
OPTION EXPLICIT
CLS RGB(0,0,0)
SUB DrawImage()
REM Row 0
  LINE 0,0,1,0, , RGB(255,0,0)
END SUB
DrawImage
`
	assert.Equal(t, expected, buf.String())
}

func TestEncodeNoHeader(t *testing.T) {
	m := uniform(3, 1, color.RGBA{0, 255, 0, 255})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, &Options{NoHeader: true}))

	assert.Equal(t, "  LINE 0,0,2,0, , RGB(0,255,0)\n", buf.String())
}

func TestEncodeAuthorAndOffsets(t *testing.T) {
	m := uniform(2, 2, color.RGBA{0, 0, 255, 255})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, &Options{
		Title:   "Test",
		Author:  "Somebody",
		OffsetX: 10,
		OffsetY: 5,
	}))

	s := buf.String()
	assert.Contains(t, s, "REM Test\n")
	assert.Contains(t, s, "REM Author: Somebody\n")
	assert.Contains(t, s, "  LINE 10,5,11,5, , RGB(0,0,255)\n")
	assert.Contains(t, s, "  LINE 10,6,11,6, , RGB(0,0,255)\n")
	assert.NotContains(t, s, "REM Row")
}

func TestEncodeCommentRate(t *testing.T) {
	m := uniform(1, 5, color.RGBA{255, 255, 255, 255})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, &Options{CommentRate: 2}))

	s := buf.String()
	assert.Contains(t, s, "REM Row 0\n")
	assert.Contains(t, s, "REM Row 2\n")
	assert.Contains(t, s, "REM Row 4\n")
	assert.NotContains(t, s, "REM Row 1\n")
	assert.NotContains(t, s, "REM Row 3\n")
}

func TestRoundTrip(t *testing.T) {
	const (
		w = 16
		h = 8
	)

	rnd := rand.New(rand.NewSource(3))
	palette := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 255, 255},
	}

	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, palette[rnd.Intn(len(palette))])
		}
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, &Options{CommentRate: 3}))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, w, h), decoded.Bounds())

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, rle.At(m, x, y), rle.At(decoded, x, y))
		}
	}
}

func TestDecodeBackground(t *testing.T) {
	program := `CLS RGB(1,2,3)
  LINE 1,1,2,1, , RGB(255,0,0)
`
	m, err := Decode(strings.NewReader(program))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), m.Bounds())

	assert.Equal(t, rle.RGB{1, 2, 3}, rle.At(m, 0, 0))
	assert.Equal(t, rle.RGB{255, 0, 0}, rle.At(m, 1, 1))
	assert.Equal(t, rle.RGB{255, 0, 0}, rle.At(m, 2, 1))
}

func TestDecodeErrors(t *testing.T) {
	tables := []struct {
		name, program string
	}{
		{"empty", ""},
		{"no statements", "REM nothing here\n"},
		{"malformed", "  LINE 1,2,3, , RGB(0,0,0)\n"},
		{"vertical", "  LINE 0,0,0,5, , RGB(0,0,0)\n"},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(table.program))
			assert.Error(t, err)
		})
	}
}
