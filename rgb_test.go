package img2bas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRGB(t *testing.T) {
	tables := []struct {
		s  string
		c  RGB
		ok bool
	}{
		{"0,0,0", RGB{0, 0, 0}, true},
		{"255,128,1", RGB{255, 128, 1}, true},
		{" 1, 2 , 3 ", RGB{1, 2, 3}, true},
		{"", RGB{}, false},
		{"1,2", RGB{}, false},
		{"1,2,3,4", RGB{}, false},
		{"256,0,0", RGB{}, false},
		{"-1,0,0", RGB{}, false},
		{"a,b,c", RGB{}, false},
	}

	for _, table := range tables {
		c, err := ParseRGB(table.s)
		if table.ok {
			assert.NoError(t, err)
			assert.Equal(t, table.c, c)
		} else {
			assert.Error(t, err)
		}
	}
}
