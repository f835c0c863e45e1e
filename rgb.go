package img2bas

import (
	"errors"
	"strconv"
	"strings"
)

// RGB is an 8-bit per channel color triple.
type RGB = [3]uint8

var errBadRGB = errors.New("img2bas: color must be exactly three comma-separated integers in 0..255")

// ParseRGB parses an "R,G,B" color specification. Each component must
// be an integer in 0..255.
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, errBadRGB
	}

	var c RGB
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return RGB{}, errBadRGB
		}
		c[i] = uint8(v)
	}

	return c, nil
}
