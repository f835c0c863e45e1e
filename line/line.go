/*
Package line implements the plain MMBasic image encoder and decoder.

The emitted program draws each image row as a sequence of horizontal
LINE statements, one per maximal run of identically colored pixels:

	LINE x1,y,x2,y, , RGB(r,g,b)

The two blanks between the coordinates and the color skip the unused
line-width parameter and are preserved literally.
*/
package line

// Options control the emitted program text. A nil *Options is
// equivalent to DefaultOptions.
type Options struct {
	// Title is emitted as the first REM of the program. If empty, a
	// generic title is used.
	Title string

	// Author adds a "REM Author:" line after the title when not empty.
	Author string

	// OffsetX and OffsetY shift every drawing statement on the target
	// screen.
	OffsetX int
	OffsetY int

	// CommentRate emits a "REM Row" marker every CommentRate rows.
	// Zero or negative disables the markers.
	CommentRate int

	// NoHeader suppresses the program header and footer, leaving only
	// the drawing statements.
	NoHeader bool

	// NoCall suppresses the DrawImage call after the subroutine.
	NoCall bool
}

// DefaultOptions are the options used when Encode is passed a nil
// *Options.
var DefaultOptions = Options{
	Title:       "Image Draw",
	CommentRate: 20,
}
