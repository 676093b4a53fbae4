package smath

import "math"

// Sky coordinate conventions: position angles are in degrees, measured
// from north (+Y) increasing toward east, and east is toward -X in a
// conventional sky image. Radii are in arcseconds.

const DegToRad = math.Pi / 180.0

// SkyToCart converts a (separation, position angle) pair to Cartesian
// offsets for plotting: x = -r sin(PA), y = r cos(PA).
func SkyToCart(r, paDeg float64) (float64, float64) {
	return -r * math.Sin(paDeg*DegToRad), r * math.Cos(paDeg*DegToRad)
}

// PolarToCart and CartToPolar use the plain math convention
// (angle from +X toward +Y). They are each other's inverse, which is
// all that matters when combining two polar offsets.
func PolarToCart(r, thetaDeg float64) (float64, float64) {
	return r * math.Cos(thetaDeg*DegToRad), r * math.Sin(thetaDeg*DegToRad)
}

func CartToPolar(x, y float64) (float64, float64) {
	return math.Hypot(x, y), math.Atan2(y, x) / DegToRad
}

// CombinePolar sums two polar offsets vectorially and returns the
// resulting (r, theta). Models a source position composed with a
// whole-field pointing offset.
func CombinePolar(r1, theta1, r2, theta2 float64) (float64, float64) {
	x1, y1 := PolarToCart(r1, theta1)
	x2, y2 := PolarToCart(r2, theta2)
	return CartToPolar(x1+x2, y1+y2)
}

// NormalizeDeg maps an angle into [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
