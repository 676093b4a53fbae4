package obssim

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdouglass/obssim/pkg/smath"
	"github.com/kdouglass/obssim/pkg/sptype"
)

func TestDisplayPNGWritesPlot(t *testing.T) {
	s := NewScene()
	require.NoError(t, s.AddPointSourceByType("G0V", "G0V star", 0.1, 0, ScalarNorm(1)))
	require.NoError(t, s.AddPointSourceByType("M0V", "M0V star", 1.5, 245, ScalarNorm(0.3)))

	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, s.DisplayPNG(path, 400))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())

	// purely a visualization: the scene is untouched
	assert.Len(t, s.Sources, 2)
}

func TestStarColorByTemperature(t *testing.T) {
	hot, err := sptype.Spectrum("B0V")
	require.NoError(t, err)
	cool, err := sptype.Spectrum("M0V")
	require.NoError(t, err)

	hr, hg, hb, _ := starColor(hot).RGBA()
	cr, cg, cb, _ := starColor(cool).RGBA()

	// hot stars skew blue, cool stars skew red
	assert.Greater(t, float64(hb)/float64(hr), float64(cb)/float64(cr))
	_ = hg
	_ = cg
}

func TestWriteQuicklook(t *testing.T) {
	g := smath.NewGrid(8, 8)
	g.Set(4, 4, 10)

	path := filepath.Join(t.TempDir(), "ql.tiff")
	require.NoError(t, WriteQuicklook(g, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
