package synphot

import "fmt"

// A Bandpass is a tabulated instrument+filter throughput function:
// WavelengthsUm ascending, Throughput in [0,1].
type Bandpass struct {
	Name          string
	WavelengthsUm []float64
	Throughput    []float64
}

// NewBoxBandpass builds an idealized top-hat bandpass centered on
// centerUm with full width widthUm.
func NewBoxBandpass(name string, centerUm, widthUm, peak float64) Bandpass {
	half := widthUm / 2
	eps := widthUm * 1e-4
	return Bandpass{
		Name:          name,
		WavelengthsUm: []float64{centerUm - half - eps, centerUm - half, centerUm + half, centerUm + half + eps},
		Throughput:    []float64{0, peak, peak, 0},
	}
}

// ThroughputAt linearly interpolates the throughput at a wavelength.
// Zero outside the tabulated range.
func (bp Bandpass) ThroughputAt(um float64) float64 {
	w := bp.WavelengthsUm
	if len(w) == 0 || um < w[0] || um > w[len(w)-1] {
		return 0
	}
	for i := 1; i < len(w); i++ {
		if um <= w[i] {
			if w[i] == w[i-1] {
				return bp.Throughput[i]
			}
			t := (um - w[i-1]) / (w[i] - w[i-1])
			return bp.Throughput[i-1] + t*(bp.Throughput[i]-bp.Throughput[i-1])
		}
	}
	return 0
}

// Support returns the wavelength range over which the bandpass is
// nonzero.
func (bp Bandpass) Support() (float64, float64) {
	lo, hi := 0.0, 0.0
	seen := false
	for i, t := range bp.Throughput {
		if t > 0 {
			if !seen {
				lo = bp.WavelengthsUm[i]
				seen = true
			}
			hi = bp.WavelengthsUm[i]
		}
	}
	return lo, hi
}

// Sample returns n wavelengths evenly spanning the bandpass support.
func (bp Bandpass) Sample(n int) []float64 {
	lo, hi := bp.Support()
	if n < 2 {
		return []float64{(lo + hi) / 2}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func (bp Bandpass) String() string {
	lo, hi := bp.Support()
	return fmt.Sprintf("%s[%.2f-%.2fum]", bp.Name, lo, hi)
}
