package img2bas

import (
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, file string) {
	t.Helper()

	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, uniform(2, 1, color.RGBA{255, 0, 0, 255})))
}

func TestBatch(t *testing.T) {
	dir, err := ioutil.TempDir("", "img2bas")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	writePNG(t, filepath.Join(dir, "red.png"))
	writePNG(t, filepath.Join(dir, ".hidden.png"))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0644))

	require.NoError(t, New(Options{}, discard()).Batch(dir))

	b, err := ioutil.ReadFile(filepath.Join(dir, "red.bas"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "  LINE 0,0,1,0, , RGB(255,0,0)\n")

	_, err = os.Stat(filepath.Join(dir, ".hidden.bas"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "notes.bas"))
	assert.True(t, os.IsNotExist(err))
}
