package synphot

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
)

// An Observation pairs a source spectrum with a bandpass, so the
// in-band flux can be computed.
type Observation struct {
	Spectrum *Spectrum
	Bandpass Bandpass
}

func NewObservation(s *Spectrum, bp Bandpass) Observation {
	return Observation{Spectrum: s, Bandpass: bp}
}

// EffstimJy returns the effective stimulus of the observation: the
// bandpass-throughput-weighted mean flux density of the spectrum, in
// Jansky.
func (o Observation) EffstimJy() (float64, error) {
	const nSamples = 512

	if o.Spectrum == nil {
		return 0, fmt.Errorf("observation through %s has no source spectrum", o.Bandpass.Name)
	}

	lo, hi := o.Bandpass.Support()
	if hi <= lo {
		return 0, fmt.Errorf("bandpass %s has empty support", o.Bandpass.Name)
	}

	ws := make([]float64, nSamples)
	weighted := make([]float64, nSamples)
	weight := make([]float64, nSamples)
	for i := 0; i < nSamples; i++ {
		um := lo + (hi-lo)*float64(i)/float64(nSamples-1)
		t := o.Bandpass.ThroughputAt(um)
		ws[i] = um
		weight[i] = t
		weighted[i] = t * o.Spectrum.FluxAt(um)
	}

	denom := integrate.Trapezoidal(ws, weight)
	if denom == 0 {
		return 0, fmt.Errorf("bandpass %s has zero integrated throughput", o.Bandpass.Name)
	}
	return integrate.Trapezoidal(ws, weighted) / denom, nil
}
