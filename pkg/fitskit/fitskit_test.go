package fitskit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdouglass/obssim/pkg/smath"
)

func TestHeaderSetUpdatesInPlace(t *testing.T) {
	h := Header{}
	h.Set("PIXELSCL", 0.031, "scale")
	h.Set("EXTNAME", "OVERSAMP", "")
	h.Set("PIXELSCL", 0.124, "new scale")

	require.Len(t, h.Cards, 2)
	assert.Equal(t, "PIXELSCL", h.Cards[0].Key)

	v, ok := h.FloatValue("PIXELSCL")
	require.True(t, ok)
	assert.Equal(t, 0.124, v)
}

func TestHeaderTypedGetters(t *testing.T) {
	h := Header{}
	h.Set("NSOURCES", 3, "")
	h.Set("IMAGE_PA", 10.5, "")

	n, ok := h.IntValue("NSOURCES")
	require.True(t, ok)
	assert.Equal(t, 3, n)

	pa, ok := h.FloatValue("IMAGE_PA")
	require.True(t, ok)
	assert.Equal(t, 10.5, pa)

	_, ok = h.IntValue("MISSING")
	assert.False(t, ok)
}

func TestHeaderHistoryOrder(t *testing.T) {
	h := Header{}
	h.AddHistory("first")
	h.AddHistory("second")
	h.AddHistory("third")
	assert.Equal(t, []string{"first", "second", "third"}, h.History)
}

func TestHDUListCopyIsDeep(t *testing.T) {
	hdu := &HDU{Data: smath.NewGrid(2, 2)}
	hdu.Header.Set("EXTNAME", "OVERSAMP", "")
	hdu.Data.Set(0, 0, 5)
	l := NewHDUList(hdu)

	l2 := l.Copy()
	l2.Primary().Data.Set(0, 0, 9)
	l2.Primary().Header.Set("EXTNAME", "DET_SAMP", "")
	l2.Primary().Header.AddHistory("copied")

	assert.Equal(t, 5.0, l.Primary().Data.Get(0, 0))
	v, _ := l.Primary().Header.Get("EXTNAME")
	assert.Equal(t, "OVERSAMP", v)
	assert.Empty(t, l.Primary().Header.History)
}

func TestHDUListPop(t *testing.T) {
	a := &HDU{Data: smath.NewGrid(2, 2)}
	b := &HDU{Data: smath.NewGrid(2, 2)}
	l := NewHDUList(a, b)

	popped := l.Pop()
	assert.Same(t, b, popped)
	assert.Equal(t, 1, l.Len())
	assert.Same(t, a, l.Primary())
}

func TestWriteToClobberSemantics(t *testing.T) {
	hdu := &HDU{Data: smath.NewGrid(4, 4)}
	hdu.Header.Set("EXTNAME", "OVERSAMP", "")
	hdu.Header.AddHistory("test image")
	l := NewHDUList(hdu)

	path := filepath.Join(t.TempDir(), "out.fits")

	require.NoError(t, l.WriteTo(path, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// existing file, no clobber: must refuse
	err = l.WriteTo(path, false)
	require.Error(t, err)

	// with clobber: overwrite succeeds
	assert.NoError(t, l.WriteTo(path, true))
}

func TestWriteToEmptyList(t *testing.T) {
	l := NewHDUList()
	err := l.WriteTo(filepath.Join(t.TempDir(), "empty.fits"), true)
	assert.Error(t, err)
}
