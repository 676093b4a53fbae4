// Package sptype maps spectral classification strings like "G0V" to
// stellar atmosphere model parameters, and builds catalog spectra from
// them.
package sptype

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kdouglass/obssim/pkg/synphot"
)

// ErrUnknownType is wrapped by Resolve for spectral types not in the
// lookup table.
var ErrUnknownType = errors.New("unknown spectral type")

// Params are the stellar atmosphere model parameters for a spectral
// type: effective temperature in K, metallicity [M/H], and log surface
// gravity.
type Params struct {
	Teff float64
	Z    float64
	LogG float64
}

// The table covers main sequence (V), giant (III) and supergiant (I)
// types across O through M. Read-only after init.
var lookupTable = map[string]Params{
	"O3V":   {50000, 0.0, 5.0},
	"O5V":   {45000, 0.0, 5.0},
	"O6V":   {40000, 0.0, 4.5},
	"O8V":   {35000, 0.0, 4.0},
	"O5I":   {40000, 0.0, 4.5},
	"O6I":   {40000, 0.0, 4.5},
	"O8I":   {34000, 0.0, 4.0},
	"B0V":   {30000, 0.0, 4.0},
	"B3V":   {19000, 0.0, 4.0},
	"B5V":   {15000, 0.0, 4.0},
	"B8V":   {12000, 0.0, 4.0},
	"B0III": {29000, 0.0, 3.5},
	"B5III": {15000, 0.0, 3.5},
	"B0I":   {26000, 0.0, 3.0},
	"B5I":   {14000, 0.0, 2.5},
	"A0V":   {9500, 0.0, 4.0},
	"A5V":   {8250, 0.0, 4.5},
	"A0I":   {9750, 0.0, 2.0},
	"A5I":   {8500, 0.0, 2.0},
	"F0V":   {7250, 0.0, 4.5},
	"F5V":   {6500, 0.0, 4.5},
	"F0I":   {7750, 0.0, 2.0},
	"F5I":   {7000, 0.0, 1.5},
	"G0V":   {6000, 0.0, 4.5},
	"G5V":   {5750, 0.0, 4.5},
	"G0III": {5750, 0.0, 3.0},
	"G5III": {5250, 0.0, 2.5},
	"G0I":   {5500, 0.0, 1.5},
	"G5I":   {4750, 0.0, 1.0},
	"K0V":   {5250, 0.0, 4.5},
	"K5V":   {4250, 0.0, 4.5},
	"K0III": {4750, 0.0, 2.0},
	"K5III": {4000, 0.0, 1.5},
	"K0I":   {4500, 0.0, 1.0},
	"K5I":   {3750, 0.0, 0.5},
	"M0V":   {3750, 0.0, 4.5},
	"M2V":   {3500, 0.0, 4.5},
	"M5V":   {3500, 0.0, 5.0},
	"M0III": {3750, 0.0, 1.5},
	"M0I":   {3750, 0.0, 0.0},
	"M2I":   {3500, 0.0, 0.0},
}

// Resolve looks up the atmosphere parameters for a spectral type.
func Resolve(st string) (Params, error) {
	p, ok := lookupTable[st]
	if !ok {
		return Params{}, fmt.Errorf("%w: lookup table does not include %q", ErrUnknownType, st)
	}
	return p, nil
}

// Ordinal derives a sort key for a spectral type string: the letter
// class contributes 0,10..60 for O,B,A,F,G,K,M, the subclass digit its
// integer value, and the luminosity class a fractional tie-break
// (I +0.1, III +0.3, V +0.5) so supergiants sort before giants before
// dwarfs at equal temperature class. Malformed strings sort at zero
// rather than panicking.
func Ordinal(st string) float64 {
	letterVals := map[byte]float64{'O': 0, 'B': 10, 'A': 20, 'F': 30, 'G': 40, 'K': 50, 'M': 60}

	if len(st) < 2 {
		return 0
	}
	value := letterVals[st[0]]
	if st[1] >= '0' && st[1] <= '9' {
		value += float64(st[1] - '0')
	}
	switch {
	case strings.Contains(st, "III"):
		value += 0.3
	case strings.Contains(st, "I"):
		value += 0.1
	case strings.Contains(st, "V"):
		value += 0.5
	}
	return value
}

// List returns every known spectral type, sorted by Ordinal. The order
// is for display and enumeration only.
func List() []string {
	out := make([]string, 0, len(lookupTable))
	for st := range lookupTable {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return Ordinal(out[i]) < Ordinal(out[j]) })
	return out
}

// Spectrum resolves a spectral type and builds the matching catalog
// atmosphere spectrum.
func Spectrum(st string) (*synphot.Spectrum, error) {
	p, err := Resolve(st)
	if err != nil {
		return nil, err
	}
	return synphot.Icat("ck04models", p.Teff, p.Z, p.LogG)
}
