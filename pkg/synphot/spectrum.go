// Package synphot provides the small slice of synthetic photometry the
// observation simulator needs: catalog-style stellar atmosphere spectra,
// instrument bandpasses, and effective-stimulus computation through a
// bandpass.
package synphot

import (
	"fmt"
	"math"
)

const (
	planckH    = 6.62607015e-34 // J s
	boltzmannK = 1.380649e-23   // J/K
	lightC     = 2.99792458e8   // m/s

	// Flux dilution for a sun-sized star at 10pc. All catalog spectra
	// share it; relative fluxes between spectral types are what matter.
	dilution = 5.09e-19
)

// A Spectrum is a tabulated flux density: WavelengthsUm in microns,
// ascending, FluxJy in Jansky at each wavelength.
type Spectrum struct {
	Name          string
	WavelengthsUm []float64
	FluxJy        []float64

	// Catalog parameters, when the spectrum came from Icat.
	Teff float64
	Z    float64
	LogG float64
}

// Icat builds a catalog spectrum for the given effective temperature,
// metallicity and surface gravity. The atmosphere model is a blackbody
// approximation; metallicity and gravity are carried as metadata only.
func Icat(catalog string, teff, z, logg float64) (*Spectrum, error) {
	if teff <= 0 {
		return nil, fmt.Errorf("catalog %s: non-physical Teff %g", catalog, teff)
	}

	const nPoints = 300
	s := &Spectrum{
		Name:          fmt.Sprintf("%s(%g,%g,%g)", catalog, teff, z, logg),
		WavelengthsUm: make([]float64, nPoints),
		FluxJy:        make([]float64, nPoints),
		Teff:          teff,
		Z:             z,
		LogG:          logg,
	}

	// Log-spaced wavelength grid, 0.2um to 30um
	lo, hi := math.Log(0.2), math.Log(30.0)
	for i := 0; i < nPoints; i++ {
		um := math.Exp(lo + (hi-lo)*float64(i)/float64(nPoints-1))
		s.WavelengthsUm[i] = um
		s.FluxJy[i] = blackbodyJy(um, teff)
	}

	return s, nil
}

// blackbodyJy evaluates the Planck function B_nu(T) at the given
// wavelength, diluted to an observed flux density in Jansky.
func blackbodyJy(um, teff float64) float64 {
	nu := lightC / (um * 1e-6)
	x := planckH * nu / (boltzmannK * teff)
	if x > 700 { // exp would overflow; flux is zero to double precision
		return 0
	}
	bnu := 2 * planckH * nu * nu * nu / (lightC * lightC) / (math.Exp(x) - 1)
	return bnu * dilution / 1e-26 // W/m^2/Hz -> Jy
}

// FluxAt linearly interpolates the flux density at a wavelength, in Jy.
// Zero outside the tabulated range.
func (s *Spectrum) FluxAt(um float64) float64 {
	w := s.WavelengthsUm
	if len(w) == 0 || um < w[0] || um > w[len(w)-1] {
		return 0
	}
	// binary search for the bracketing interval
	lo, hi := 0, len(w)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if w[mid] <= um {
			lo = mid
		} else {
			hi = mid
		}
	}
	if w[hi] == w[lo] {
		return s.FluxJy[lo]
	}
	t := (um - w[lo]) / (w[hi] - w[lo])
	return s.FluxJy[lo] + t*(s.FluxJy[hi]-s.FluxJy[lo])
}

func (s *Spectrum) String() string {
	if s == nil {
		return "(no spectrum)"
	}
	return s.Name
}
