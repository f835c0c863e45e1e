/*
Package data implements the paletted MMBasic image encoder and decoder.

The emitted program carries the image as a stream of DATA records: the
palette size, the flattened palette triples, one run-length encoded
scalar sequence per row, and a single -1 terminator. The program's
DrawImage subroutine READs the stream back, building the palette and
drawing each run as a horizontal line segment with a running cursor.

Records are capacity bounded; palette records hold at most 24 scalars
and row records at most 32. Record boundaries are a line-wrapping
concern only and carry no meaning: a boundary may fall inside a palette
triple or a (length, index) pair, so readers must consume the records
as one continuous scalar sequence.
*/
package data

const (
	paletteChunk = 24
	rowChunk     = 32

	// terminator ends the row section. Run counts are always at least
	// one for non-empty rows so the value is unambiguous.
	terminator = -1
)

// Options control the emitted program text. A nil *Options is
// equivalent to DefaultOptions.
type Options struct {
	// Title is emitted as the first REM of the program. If empty, a
	// generic title is used.
	Title string

	// OffsetX and OffsetY shift every drawing statement on the target
	// screen. They affect only the generated subroutine, not the DATA
	// stream.
	OffsetX int
	OffsetY int

	// NoCall suppresses the DrawImage call after the subroutine.
	NoCall bool
}

// DefaultOptions are the options used when Encode is passed a nil
// *Options.
var DefaultOptions = Options{
	Title: "Image Draw",
}
