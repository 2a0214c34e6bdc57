// Package geom provides the plane geometry used by the radar layout:
// cartesian and polar points, conversions between them, interval clamping
// and angle normalization.
//
// Angles are in radians. Screen coordinates are assumed (y grows
// downwards), which only matters to callers that draw the result.
package geom

import "math"

// Point is a cartesian position.
type Point struct {
	X, Y float64
}

// Origin is the chart center.
var Origin = Point{}

// Add returns the translation of p by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Polar is a position given by angle T and radius R.
type Polar struct {
	T, R float64
}

// Rotate returns p with its angle shifted by dt.
func (p Polar) Rotate(dt float64) Polar { return Polar{T: p.T + dt, R: p.R} }

// ToPolar converts p to polar form. The angle lies in (-π, π].
func ToPolar(p Point) Polar {
	t := math.Atan2(p.Y, p.X)
	// atan2(-0, x<0) yields -π; the half-open range excludes it.
	if t == -math.Pi {
		t = math.Pi
	}
	return Polar{T: t, R: math.Hypot(p.X, p.Y)}
}

// ToCartesian converts p to cartesian form.
func ToCartesian(p Polar) Point {
	sin, cos := math.Sincos(p.T)
	return Point{X: p.R * cos, Y: p.R * sin}
}

// Clamp limits v to the closed interval spanned by a and b. The bounds may
// be given in either order.
func Clamp(v, a, b float64) float64 {
	lo, hi := min(a, b), max(a, b)
	return min(max(v, lo), hi)
}

// NormalizeAngle maps t into (-π, π].
func NormalizeAngle(t float64) float64 {
	// math.Mod keeps the sign of the dividend, so shift negative
	// remainders up by one turn to get a floored modulo.
	r := math.Mod(t+math.Pi, 2*math.Pi)
	if r <= 0 {
		r += 2 * math.Pi
	}
	if t = r - math.Pi; t <= -math.Pi {
		return math.Pi
	}
	return t
}
