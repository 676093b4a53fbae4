package instrument

import (
	"fmt"
	"math"

	"github.com/kdouglass/obssim/pkg/fitskit"
	"github.com/kdouglass/obssim/pkg/smath"
	"github.com/kdouglass/obssim/pkg/synphot"
)

const arcsecToRad = math.Pi / 180 / 3600

// A Camera is the built-in Instrument: a circular unobscured aperture
// propagated to the focal plane by Fourier optics, one monochromatic
// PSF per sampled wavelength, weighted by the source spectrum through
// the filter bandpass.
type Camera struct {
	cfg    Config
	filter string
}

func NewCamera(cfg Config) (*Camera, error) {
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &Camera{cfg: cfg, filter: cfg.FilterNames()[0]}, nil
}

func (c *Camera) Name() string        { return c.cfg.Name }
func (c *Camera) Filter() string      { return c.filter }
func (c *Camera) PixelScale() float64 { return c.cfg.PixelScale }

func (c *Camera) SetFilter(name string) error {
	if _, ok := c.cfg.Filters[name]; !ok {
		return fmt.Errorf("instrument %s has no filter named '%s'", c.cfg.Name, name)
	}
	c.filter = name
	return nil
}

func (c *Camera) Bandpass() (synphot.Bandpass, error) {
	f, ok := c.cfg.Filters[c.filter]
	if !ok {
		return synphot.Bandpass{}, fmt.Errorf("instrument %s has no filter named '%s'", c.cfg.Name, c.filter)
	}
	return synphot.NewBoxBandpass(c.filter, f.CenterUm, f.WidthUm, f.Peak), nil
}

// CalcPSF computes an oversampled broadband PSF for a point source at
// the given field offset. The PSF is normalized so that unit input
// intensity at the pupil yields unit total counts; physical flux
// scaling is the caller's business.
func (c *Camera) CalcPSF(src *synphot.Spectrum, offsetR, offsetTheta float64, opt CalcOptions) (*fitskit.HDUList, error) {
	oversample := opt.Oversample
	if oversample < 1 {
		oversample = c.cfg.Oversample
	}
	fov := opt.FOVArcsec
	if fov <= 0 {
		fov = c.cfg.FOVArcsec
	}
	nlambda := opt.NLambda
	if nlambda < 1 {
		nlambda = c.cfg.NLambda
	}

	pixscale := c.cfg.PixelScale / float64(oversample)
	n := int(math.Round(fov / pixscale))
	if n%2 != 0 {
		n++
	}
	if n < 8 {
		n = 8
	}

	bp, err := c.Bandpass()
	if err != nil {
		return nil, err
	}

	// Spectral weights across the band
	wavelengths := bp.Sample(nlambda)
	weights := make([]float64, nlambda)
	wsum := 0.0
	for i, um := range wavelengths {
		w := bp.ThroughputAt(um)
		if src != nil {
			w *= src.FluxAt(um)
		}
		weights[i] = w
		wsum += w
	}
	if wsum <= 0 {
		return nil, fmt.Errorf("filter %s: source spectrum has no flux in band", c.filter)
	}

	// Source offset in oversampled pixels, PA from north toward east
	dx := -offsetR * math.Sin(offsetTheta*smath.DegToRad) / pixscale
	dy := offsetR * math.Cos(offsetTheta*smath.DegToRad) / pixscale

	psf := smath.NewGrid(n, n)
	for i, um := range wavelengths {
		if weights[i] <= 0 {
			continue
		}
		mono := c.monoPSF(um, n, pixscale, dx, dy)
		if s := mono.Sum(); s > 0 {
			mono.Scale(weights[i] / wsum / s)
		}
		if err := psf.AddTo(mono); err != nil {
			return nil, err
		}
	}

	hdu := &fitskit.HDU{Data: psf}
	hdr := &hdu.Header
	hdr.Set("EXTNAME", "OVERSAMP", "")
	hdr.Set("INSTRUME", c.cfg.Name, "Instrument name")
	hdr.Set("FILTER", c.filter, "Filter name")
	hdr.Set("PIXELSCL", pixscale, "[arcsec/pix] Scale of this image plane")
	hdr.Set("OVERSAMP", oversample, "Oversampling factor relative to detector")
	hdr.Set("DET_SAMP", oversample, "Oversampling factor for MFT to detector plane")
	hdr.Set("NWAVES", nlambda, "Number of wavelengths used in calculation")
	hdr.Set("FOV", fov, "[arcsec] Field of view on a side")
	hdr.AddHistory(fmt.Sprintf("Calculated PSF through %s with %d wavelengths", c.filter, nlambda))

	result := fitskit.NewHDUList(hdu)

	if opt.Rebin && oversample > 1 {
		det, err := RebinToDetector(hdu)
		if err != nil {
			return nil, fmt.Errorf("rebin to detector scale: %v", err)
		}
		result.Append(det)
	}

	return result, nil
}

// monoPSF computes a single-wavelength PSF by squaring the Fourier
// transform of the pupil. The field offset becomes a phase ramp across
// the pupil, so subpixel offsets come out exact. Offsets beyond the
// FOV edge wrap around, as the transform is cyclic.
func (c *Camera) monoPSF(um float64, n int, pixscale, dx, dy float64) smath.Grid {
	lambdaM := um * 1e-6
	// Pupil sample spacing such that the focal plane comes out at
	// pixscale: radius of the aperture in pupil samples.
	rpix := c.cfg.ApertureM * float64(n) * pixscale * arcsecToRad / (2 * lambdaM)

	pupil := smath.NewCGrid(n)
	half := float64(n) / 2
	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			du := float64(u) - half
			dv := float64(v) - half
			if du*du+dv*dv > rpix*rpix {
				continue
			}
			phase := 2 * math.Pi * (float64(u)*dx + float64(v)*dy) / float64(n)
			pupil.Set(u, v, complex(math.Cos(phase), math.Sin(phase)))
		}
	}

	pupil.FFT2()
	return pupil.ModSq()
}

// RebinToDetector block-averages an oversampled plane down to detector
// pixel scale, carrying the header along with updated sampling cards.
func RebinToDetector(hdu *fitskit.HDU) (*fitskit.HDU, error) {
	oversample, ok := hdu.Header.IntValue("DET_SAMP")
	if !ok {
		return nil, fmt.Errorf("no DET_SAMP card")
	}

	data, err := hdu.Data.Rebin(oversample)
	if err != nil {
		return nil, err
	}

	det := &fitskit.HDU{Header: hdu.Header.Copy(), Data: data}
	det.Header.Set("OVERSAMP", 1, "These data are rebinned to detector pixels")
	det.Header.Set("CALCSAMP", oversample, "This much oversampling used in calculation")
	det.Header.Set("EXTNAME", "DET_SAMP", "")
	if scl, ok := det.Header.FloatValue("PIXELSCL"); ok {
		det.Header.Set("PIXELSCL", scl*float64(oversample), "[arcsec/pix] Scale of this image plane")
	}
	return det, nil
}
