package smath

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// A CGrid is a square grid of complex values, used for pupil planes.
type CGrid struct {
	n      int
	values []complex128
}

func NewCGrid(n int) CGrid {
	return CGrid{n: n, values: make([]complex128, n*n)}
}

func (g *CGrid) N() int                     { return g.n }
func (g *CGrid) Set(x, y int, v complex128) { g.values[g.n*y+x] = v }
func (g *CGrid) Get(x, y int) complex128    { return g.values[g.n*y+x] }

// FFT2 computes the 2D DFT of g in place: a 1D transform along each
// row, then along each column. Unnormalized; callers that care about
// absolute scale renormalize afterwards.
func (g *CGrid) FFT2() {
	fft := fourier.NewCmplxFFT(g.n)

	row := make([]complex128, g.n)
	for y := 0; y < g.n; y++ {
		copy(row, g.values[g.n*y:g.n*(y+1)])
		fft.Coefficients(g.values[g.n*y:g.n*(y+1)], row)
	}

	col := make([]complex128, g.n)
	out := make([]complex128, g.n)
	for x := 0; x < g.n; x++ {
		for y := 0; y < g.n; y++ {
			col[y] = g.Get(x, y)
		}
		fft.Coefficients(out, col)
		for y := 0; y < g.n; y++ {
			g.Set(x, y, out[y])
		}
	}
}

// ModSq returns |g|^2 as a real grid, with the zero-frequency bin
// shifted to the grid center.
func (g *CGrid) ModSq() Grid {
	out := NewGrid(g.n, g.n)
	half := g.n / 2
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			v := g.Get(x, y)
			sx := (x + half) % g.n
			sy := (y + half) % g.n
			out.Set(sx, sy, real(v)*real(v)+imag(v)*imag(v))
		}
	}
	return out
}
