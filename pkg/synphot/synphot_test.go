package synphot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcatCarriesParameters(t *testing.T) {
	s, err := Icat("ck04models", 6000, 0.0, 4.5)
	require.NoError(t, err)

	assert.Equal(t, 6000.0, s.Teff)
	assert.Equal(t, 4.5, s.LogG)
	assert.Contains(t, s.Name, "ck04models")
	assert.Len(t, s.FluxJy, len(s.WavelengthsUm))
}

func TestIcatRejectsNonPhysicalTeff(t *testing.T) {
	_, err := Icat("ck04models", -100, 0, 4.5)
	assert.Error(t, err)
}

func TestHotterStarIsBrighter(t *testing.T) {
	hot, err := Icat("ck04models", 9500, 0, 4.0)
	require.NoError(t, err)
	cool, err := Icat("ck04models", 3750, 0, 4.5)
	require.NoError(t, err)

	// The Planck function increases with temperature at every
	// wavelength
	for _, um := range []float64{0.5, 1.15, 2.1, 10} {
		assert.Greater(t, hot.FluxAt(um), cool.FluxAt(um), "at %gum", um)
	}
}

func TestFluxAtInterpolatesAndClips(t *testing.T) {
	s := &Spectrum{
		WavelengthsUm: []float64{1, 2, 3},
		FluxJy:        []float64{10, 20, 40},
	}

	assert.InDelta(t, 15, s.FluxAt(1.5), 1e-12)
	assert.InDelta(t, 10, s.FluxAt(1), 1e-12)
	assert.Equal(t, 0.0, s.FluxAt(0.5))
	assert.Equal(t, 0.0, s.FluxAt(99))
}

func TestBoxBandpassSupport(t *testing.T) {
	bp := NewBoxBandpass("F210M", 2.1, 0.2, 0.5)

	lo, hi := bp.Support()
	assert.InDelta(t, 2.0, lo, 1e-6)
	assert.InDelta(t, 2.2, hi, 1e-6)

	assert.InDelta(t, 0.5, bp.ThroughputAt(2.1), 1e-9)
	assert.Equal(t, 0.0, bp.ThroughputAt(1.5))

	ws := bp.Sample(5)
	require.Len(t, ws, 5)
	assert.InDelta(t, lo, ws[0], 1e-9)
	assert.InDelta(t, hi, ws[4], 1e-9)
}

func TestEffstimOfFlatSpectrumIsItsLevel(t *testing.T) {
	// 7 Jy at every wavelength; the throughput-weighted mean must be
	// 7 Jy regardless of throughput shape
	flat := &Spectrum{
		Name:          "flat",
		WavelengthsUm: []float64{0.1, 50},
		FluxJy:        []float64{7, 7},
	}
	bp := NewBoxBandpass("F115W", 1.15, 0.27, 0.45)

	effstim, err := NewObservation(flat, bp).EffstimJy()
	require.NoError(t, err)
	assert.InDelta(t, 7.0, effstim, 1e-6)
}

func TestEffstimWithoutSpectrumIsAnError(t *testing.T) {
	bp := NewBoxBandpass("F210M", 2.1, 0.2, 0.5)
	_, err := NewObservation(nil, bp).EffstimJy()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no source spectrum")
}

func TestEffstimMonotonicWithTemperature(t *testing.T) {
	bp := NewBoxBandpass("F210M", 2.1, 0.2, 0.5)

	var prev float64
	for i, teff := range []float64{3500, 5250, 6000, 9500, 30000} {
		s, err := Icat("ck04models", teff, 0, 4.5)
		require.NoError(t, err)
		effstim, err := NewObservation(s, bp).EffstimJy()
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, effstim, prev, "Teff %g", teff)
		}
		prev = effstim
	}
}
