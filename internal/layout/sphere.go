package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// SphereToCartesian converts spherical coordinates to Cartesian ones.
// Theta is the azimuth in the x-y plane, phi the elevation above it, both in
// radians, and r the radius.
func SphereToCartesian(theta, phi, r float64) r3.Vec {
	rcos := r * math.Cos(phi)
	return r3.Vec{
		X: rcos * math.Cos(theta),
		Y: rcos * math.Sin(theta),
		Z: r * math.Sin(phi),
	}
}
