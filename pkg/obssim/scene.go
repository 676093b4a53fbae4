// Package obssim scripts simulated observations of scenes more
// complicated than a single point source: a target star plus
// companions at given separations and position angles, imaged through
// a configured instrument and summed into one composite image.
package obssim

import (
	"errors"
	"fmt"

	"github.com/kdouglass/obssim/pkg/sptype"
	"github.com/kdouglass/obssim/pkg/synphot"
)

// ErrNotImplemented marks features that are deliberately unfinished
// (noise injection, non-scalar normalization). They fail fast rather
// than silently approximating.
var ErrNotImplemented = errors.New("not implemented")

// NormMode selects how a source's PSF is scaled to physical counts.
type NormMode int

const (
	// NormBySpectrum scales by the source's in-band flux in Jy,
	// computed by synthetic photometry. The zero value.
	NormBySpectrum NormMode = iota
	// NormByScalar multiplies the unit-normalized PSF by a factor.
	NormByScalar
	// NormUnsupported is the placeholder for renorm-parameter style
	// normalization, which CalcImage rejects.
	NormUnsupported
)

type Normalization struct {
	Mode   NormMode
	Factor float64
}

// ScalarNorm normalizes by multiplying the PSF by k.
func ScalarNorm(k float64) Normalization {
	return Normalization{Mode: NormByScalar, Factor: k}
}

// SpectrumNorm normalizes by the source's in-band flux.
func SpectrumNorm() Normalization {
	return Normalization{Mode: NormBySpectrum}
}

// A Source is one point source in a scene. Separation is in arcsec
// from the scene center, PA in degrees from north toward east.
// Numeric ranges are not validated; negative separations and angles
// outside [0,360) are accepted and used as-is.
type Source struct {
	Spectrum   *synphot.Spectrum
	Name       string
	Separation float64
	PA         float64
	Norm       Normalization
}

// A Scene is an ordered list of point sources. Insertion order is the
// order sources are propagated and the order provenance entries land
// in the output header. Duplicate names and positions are fine.
type Scene struct {
	Sources []Source
}

func NewScene() *Scene {
	return &Scene{Sources: []Source{}}
}

// AddPointSource appends a source with an explicit spectrum.
func (s *Scene) AddPointSource(spectrum *synphot.Spectrum, name string, separation, pa float64, norm Normalization) {
	s.Sources = append(s.Sources, Source{
		Spectrum:   spectrum,
		Name:       name,
		Separation: separation,
		PA:         pa,
		Norm:       norm,
	})
}

// AddPointSourceByType appends a source given a spectral type string
// like "G0V". An unknown type leaves the scene unmodified.
func (s *Scene) AddPointSourceByType(spectralType, name string, separation, pa float64, norm Normalization) error {
	spectrum, err := sptype.Spectrum(spectralType)
	if err != nil {
		return err
	}
	s.AddPointSource(spectrum, name, separation, pa, norm)
	return nil
}

func (s *Scene) String() string {
	str := "Scene[\n"
	for _, src := range s.Sources {
		str += fmt.Sprintf("  %s (%s) at r=%.3f'' PA=%.1f\n", src.Name, src.Spectrum, src.Separation, src.PA)
	}
	return str + "]\n"
}
