package sector

import (
	"math"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar/geom"
	"github.com/matzehuels/techradar/pkg/radar/rng"
)

// arcMarginFactor scales the linear margin into an angular one.
const arcMarginFactor = 2.2

// Key identifies a segment by quadrant and ring index.
type Key struct {
	Quadrant, Ring int
}

// Segment is the region of one quadrant and one ring. Min and Max hold the
// lower and upper polar bounds; angles are un-normalized (they may exceed π).
type Segment struct {
	Quadrant int
	Ring     int
	Min      geom.Polar
	Max      geom.Polar
	Margin   float64
}

// Segment returns the segment of quadrant q and ring r.
func (m *Model) Segment(q, r int) (Segment, error) {
	if q < 0 || q >= len(m.Quadrants) {
		return Segment{}, errors.New(errors.ErrCodeInvalidEntry, "quadrant %d out of range [0, %d)", q, len(m.Quadrants))
	}
	if r < 0 || r >= len(m.Rings) {
		return Segment{}, errors.New(errors.ErrCodeInvalidEntry, "ring %d out of range [0, %d)", r, len(m.Rings))
	}
	quad, ring := m.Quadrants[q], m.Rings[r]
	return Segment{
		Quadrant: q,
		Ring:     r,
		Min:      geom.Polar{T: quad.RadialMin * math.Pi, R: ring.Inner},
		Max:      geom.Polar{T: quad.RadialMax * math.Pi, R: ring.Radius},
		Margin:   m.Margin,
	}, nil
}

// Lookup returns the segment for k.
func (m *Model) Lookup(k Key) (Segment, error) {
	return m.Segment(k.Quadrant, k.Ring)
}

// Key returns the segment's identity.
func (s Segment) Key() Key { return Key{Quadrant: s.Quadrant, Ring: s.Ring} }

// RandomPoint draws a position inside the segment. The angle is uniform
// over the arc, the radius is biased towards the middle of the band.
func (s Segment) RandomPoint(src *rng.Source) geom.Point {
	return geom.ToCartesian(geom.Polar{
		T: src.Between(s.Min.T, s.Max.T),
		R: src.NormalBetween(s.Min.R, s.Max.R),
	})
}

// Clip moves p into the segment, keeping the margin to every boundary.
func (s Segment) Clip(p *geom.Point) {
	*p = s.Bound(*p)
}

// Bound returns p moved into the segment.
func (s Segment) Bound(p geom.Point) geom.Point {
	return geom.ToCartesian(s.boundPolar(geom.ToPolar(p)))
}

// containsTolerance absorbs the rounding of a polar round trip.
const containsTolerance = 1e-9

// Contains reports whether p lies inside the segment's margins.
func (s Segment) Contains(p geom.Point) bool {
	pp := geom.ToPolar(p)
	b := s.boundPolar(pp)
	return math.Abs(b.R-pp.R) <= containsTolerance && math.Abs(b.T-pp.T) <= containsTolerance
}

func (s Segment) boundPolar(p geom.Polar) geom.Polar {
	r := geom.Clamp(p.R, s.Min.R+s.Margin, s.Max.R-s.Margin)
	// Constant linear clearance along the arc: the angular margin shrinks
	// as the radius grows.
	marginT := s.Margin * arcMarginFactor / (math.Pi * r)

	minT := s.Min.T + marginT
	maxT := s.Max.T - marginT
	minNorm := geom.NormalizeAngle(minT)
	maxNorm := geom.NormalizeAngle(maxT)

	var t float64
	if maxNorm < minNorm && minT < maxT {
		t = seamBound(p.T, minNorm, maxNorm)
	} else {
		t = geom.Clamp(p.T, minNorm, maxNorm)
	}
	return geom.Polar{T: t, R: r}
}

// seamBound clamps t into an arc that crosses the ±π seam, i.e. into
// [minNorm, π] ∪ [-π, maxNorm] with maxNorm < minNorm. t is normalized, so
// π stands for both ends of the seam.
func seamBound(t, minNorm, maxNorm float64) float64 {
	if upper := geom.Clamp(t, minNorm, math.Pi); upper == t {
		return t
	}
	if lower := geom.Clamp(t, -math.Pi, maxNorm); lower == t {
		return t
	}
	// t lies in the gap (maxNorm, minNorm) outside the arc.
	if t-maxNorm <= minNorm-t {
		return maxNorm
	}
	return minNorm
}
