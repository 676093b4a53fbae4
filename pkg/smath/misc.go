package smath

import "math"

// GammaExpand maps a linear intensity in [0,1] to sRGB gamma, so
// grayscale renderings of linear pixel data look right to the eye.
func GammaExpand(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055*math.Pow(f, 1.0/2.4) - 0.055
}
