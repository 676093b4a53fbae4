package smath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkyToCartConventions(t *testing.T) {
	// PA=0 is due north: +y
	x, y := SkyToCart(2, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 2, y, 1e-12)

	// PA=90 is due east: -x
	x, y = SkyToCart(2, 90)
	assert.InDelta(t, -2, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
}

func TestCombinePolarZeroOffsetIsIdentity(t *testing.T) {
	for _, pa := range []float64{0, 45, 90, 245, 359} {
		r, theta := CombinePolar(1.5, pa, 0, 123)
		assert.InDelta(t, 1.5, r, 1e-12)
		assert.InDelta(t, pa, NormalizeDeg(theta), 1e-9, "PA %g", pa)
	}
}

func TestCombinePolarVectorSum(t *testing.T) {
	// Two equal offsets at right angles
	r, theta := CombinePolar(1, 0, 1, 90)
	assert.InDelta(t, 1.41421356, r, 1e-6)
	assert.InDelta(t, 45, NormalizeDeg(theta), 1e-9)
}

func TestNormalizeDeg(t *testing.T) {
	assert.InDelta(t, 245, NormalizeDeg(-115), 1e-12)
	assert.InDelta(t, 0, NormalizeDeg(720), 1e-12)
	assert.InDelta(t, 359.5, NormalizeDeg(-0.5), 1e-12)
}
