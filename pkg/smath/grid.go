package smath

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// A Grid is a 2D grid of float64 pixel values, stored row-major.
type Grid struct {
	stride int
	values []float64
}

func NewGrid(w, h int) Grid {
	return Grid{
		stride: w,
		values: make([]float64, w*h),
	}
}

func (g *Grid) Set(x, y int, v float64) { g.values[g.stride*y+x] = v }
func (g *Grid) Get(x, y int) float64    { return g.values[g.stride*y+x] }
func (g *Grid) Dx() int                 { return g.stride }
func (g *Grid) Dy() int                 { return len(g.values) / g.stride }
func (g *Grid) Values() []float64       { return g.values }

func (g *Grid) Copy() Grid {
	g2 := Grid{stride: g.stride, values: make([]float64, len(g.values))}
	copy(g2.values, g.values)
	return g2
}

// AddTo adds g2 into g elementwise. A shape mismatch means the two
// grids came from differently-configured simulator runs, which is
// unrecoverable.
func (g *Grid) AddTo(g2 Grid) error {
	if g.stride != g2.stride || len(g.values) != len(g2.values) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, g.Dx(), g.Dy(), g2.Dx(), g2.Dy())
	}
	floats.Add(g.values, g2.values)
	return nil
}

func (g *Grid) Scale(k float64) {
	floats.Scale(k, g.values)
}

func (g *Grid) Sum() float64 {
	return floats.Sum(g.values)
}

// Rebin returns a grid downsampled by block-averaging n x n blocks of
// pixels into one. The grid dimensions must be divisible by n.
func (g *Grid) Rebin(n int) (Grid, error) {
	if n < 1 {
		return Grid{}, fmt.Errorf("rebin factor %d < 1", n)
	}
	if g.Dx()%n != 0 || g.Dy()%n != 0 {
		return Grid{}, fmt.Errorf("rebin factor %d does not divide %dx%d", n, g.Dx(), g.Dy())
	}

	width := g.Dx() / n
	height := g.Dy() / n
	g2 := NewGrid(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := 0.0
			for dy := 0; dy < n; dy++ {
				for dx := 0; dx < n; dx++ {
					p += g.Get(n*x+dx, n*y+dy)
				}
			}
			g2.Set(x, y, p/float64(n*n))
		}
	}

	return g2, nil
}

func (g *Grid) MinMax() (float64, float64) {
	return floats.Min(g.values), floats.Max(g.values)
}

func (g *Grid) Stats() string {
	min, max := g.MinMax()
	return fmt.Sprintf("grid[%dx%d, vals{%g,%g}, sum %g]", g.Dx(), g.Dy(), min, max, g.Sum())
}
