/*
Package img2bas converts raster images into MMBasic programs that
redraw them as horizontal run-length encoded LINE segments.

Two program layouts are produced. The plain layout draws every run with
a literal LINE statement. The paletted layout stores the palette and
the run stream as DATA records and draws them back with a short READ
loop; for images with few colors it is usually much smaller.
*/
package img2bas

import "log"

// Options control the image preparation pipeline and the emitted
// program.
type Options struct {
	// Width and Height select the target canvas size; zero keeps the
	// corresponding source dimension.
	Width  int
	Height int

	// Stretch resizes to the target size directly instead of
	// letterboxing onto a Background colored canvas.
	Stretch    bool
	Background RGB

	// Colors bounds the palette with median cut quantization; zero
	// disables quantization. Dither applies Floyd-Steinberg error
	// diffusion while quantizing.
	Colors int
	Dither bool

	// Paletted selects the READ/DATA program layout.
	Paletted bool

	Title       string
	Author      string
	OffsetX     int
	OffsetY     int
	CommentRate int
	NoHeader    bool
	NoCall      bool
}

// Converter turns images into MMBasic programs.
type Converter struct {
	opts   Options
	logger *log.Logger
}

// New returns a Converter with the given options, logging progress to
// logger.
func New(opts Options, logger *log.Logger) *Converter {
	return &Converter{
		opts:   opts,
		logger: logger,
	}
}
