// Package instrument models the optical simulator the scene compositor
// drives: a configured camera that computes one oversampled PSF per
// call, for a given source spectrum and field offset.
package instrument

import (
	"github.com/kdouglass/obssim/pkg/fitskit"
	"github.com/kdouglass/obssim/pkg/synphot"
)

// CalcOptions are the per-call knobs for a PSF calculation. Zero
// values fall back to the instrument configuration defaults.
type CalcOptions struct {
	FOVArcsec  float64 // field of view on a side
	NLambda    int     // wavelengths sampled across the bandpass
	Oversample int     // pixels per detector pixel
	Rebin      bool    // also attach a detector-sampled extension
}

// An Instrument computes PSFs for point sources. Implementations must
// produce identically-shaped output for identical options, varying
// only with source spectrum and position.
type Instrument interface {
	Name() string
	Filter() string
	SetFilter(name string) error
	PixelScale() float64 // arcsec per detector pixel
	Bandpass() (synphot.Bandpass, error)

	// CalcPSF computes the PSF of a single point source offset from
	// the optical axis by offsetR arcsec at position angle
	// offsetTheta degrees. The returned list holds the oversampled
	// plane first, plus a detector-sampled plane when opt.Rebin is
	// set and oversampling is in play. Nothing is written to disk.
	CalcPSF(src *synphot.Spectrum, offsetR, offsetTheta float64, opt CalcOptions) (*fitskit.HDUList, error)
}
