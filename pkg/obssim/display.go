package obssim

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/tiff"

	"github.com/kdouglass/obssim/pkg/smath"
	"github.com/kdouglass/obssim/pkg/synphot"
)

// DisplayPNG renders a sanity-check plot of the scene: one star marker
// plus a text label per source, north up, east left. Purely a
// visualization; the scene is not modified.
func (s *Scene) DisplayPNG(filename string, sizePx int) error {
	if sizePx < 100 {
		sizePx = 600
	}

	maxSep := 1.0
	for _, src := range s.Sources {
		if r := math.Abs(src.Separation); r > maxSep {
			maxSep = r
		}
	}

	const margin = 50.0
	center := float64(sizePx) / 2
	scale := (center - margin) / maxSep

	dc := gg.NewContext(sizePx, sizePx)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// crosshair through the scene center
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	dc.DrawLine(0, center, float64(sizePx), center)
	dc.DrawLine(center, 0, center, float64(sizePx))
	dc.Stroke()

	for _, src := range s.Sources {
		x, y := smath.SkyToCart(src.Separation, src.PA)
		px := center + x*scale
		py := center - y*scale // +Y (north) is up

		dc.SetColor(starColor(src.Spectrum))
		dc.DrawRegularPolygon(5, px, py, 8, -math.Pi/2)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawString(src.Name, px+12, py-6)
	}

	return dc.SavePNG(filename)
}

// starColor approximates the visual color of a star from its effective
// temperature, using a fit to the Planckian locus clamped into sRGB.
// Sources with no catalog temperature render mid-gray.
func starColor(spec *synphot.Spectrum) color.Color {
	if spec == nil || spec.Teff <= 0 {
		return color.Gray{0x80}
	}

	t := spec.Teff / 100

	var r, g, b float64
	if t <= 66 {
		r = 1
		g = clamp01((99.47*math.Log(t) - 161.12) / 255)
	} else {
		r = clamp01(329.7 * math.Pow(t-60, -0.1332) / 255)
		g = clamp01(288.12 * math.Pow(t-60, -0.0755) / 255)
	}
	switch {
	case t >= 66:
		b = 1
	case t <= 19:
		b = 0
	default:
		b = clamp01((138.52*math.Log(t-10) - 305.04) / 255)
	}

	return colorful.Color{R: r, G: g, B: b}.Clamped()
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// WriteQuicklook saves a gamma-scaled 16-bit grayscale TIFF of a pixel
// plane, for eyeballing a composite without FITS tooling.
func WriteQuicklook(g smath.Grid, filename string) error {
	min, max := g.MinMax()
	span := max - min
	if span <= 0 {
		span = 1
	}

	img := image.NewGray16(image.Rect(0, 0, g.Dx(), g.Dy()))
	for y := 0; y < g.Dy(); y++ {
		for x := 0; x < g.Dx(); x++ {
			gray := smath.GammaExpand((g.Get(x, y) - min) / span)
			img.SetGray16(x, y, color.Gray16{Y: uint16(gray * 65535.0)})
		}
	}

	w, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer w.Close()

	if err := tiff.Encode(w, img, nil); err != nil {
		return fmt.Errorf("quicklook encode '%s': %v", filename, err)
	}
	return nil
}
