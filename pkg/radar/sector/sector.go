package sector

import (
	"math"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar/geom"
)

const (
	// StartAngle is the upper bound of quadrant 0, as a multiple of π.
	StartAngle = 1.5

	// DefaultMinRadius is the inner bound of ring 0.
	DefaultMinRadius = 30.0

	// DefaultMargin is the clearance kept between an entry and its
	// segment's boundary.
	DefaultMargin = 15.0
)

// DefaultRadii are the outer radii of the four canonical rings.
var DefaultRadii = []float64{130, 220, 310, 400}

// Quadrant is an angular sector. RadialMin and RadialMax are multiples of π.
type Quadrant struct {
	Index     int
	RadialMin float64
	RadialMax float64
}

// Span returns the quadrant's angular width as a multiple of π.
func (q Quadrant) Span() float64 { return q.RadialMax - q.RadialMin }

// Ring is a radius band.
type Ring struct {
	Index  int
	Inner  float64
	Radius float64
}

// Model holds the quadrant and ring geometry of one chart.
type Model struct {
	Quadrants []Quadrant
	Rings     []Ring
	MinRadius float64
	Margin    float64
}

// Option configures a Model.
type Option func(*options)

type options struct {
	radii     []float64
	minRadius float64
	margin    float64
}

// WithRadii sets the outer ring radii.
func WithRadii(radii ...float64) Option {
	return func(o *options) { o.radii = radii }
}

// WithMinRadius sets the inner bound of ring 0.
func WithMinRadius(r float64) Option {
	return func(o *options) { o.minRadius = r }
}

// WithMargin sets the boundary clearance used by segments.
func WithMargin(m float64) Option {
	return func(o *options) { o.margin = m }
}

// New builds the model for quadrantCount quadrants. It fails with an
// INVALID_CONFIG error when fewer than two quadrants are requested or the
// ring radii are not strictly increasing.
func New(quadrantCount int, opts ...Option) (*Model, error) {
	o := options{radii: DefaultRadii, minRadius: DefaultMinRadius, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&o)
	}

	if quadrantCount < 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "number of quadrants too low: need at least 2, got %d", quadrantCount)
	}
	if len(o.radii) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "at least one ring radius is required")
	}
	if o.margin < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "margin must not be negative, got %v", o.margin)
	}
	if o.minRadius < 0 || o.minRadius >= o.radii[0] {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "minimum radius %v must lie in [0, %v)", o.minRadius, o.radii[0])
	}

	rings := make([]Ring, len(o.radii))
	inner := o.minRadius
	for i, r := range o.radii {
		if r <= inner {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "ring %d radius %v must exceed %v", i, r, inner)
		}
		rings[i] = Ring{Index: i, Inner: inner, Radius: r}
		inner = r
	}

	delta := 2 / float64(quadrantCount)
	quadrants := make([]Quadrant, quadrantCount)
	radialMax := StartAngle
	for q := range quadrants {
		quadrants[q] = Quadrant{Index: q, RadialMin: radialMax - delta, RadialMax: radialMax}
		radialMax -= delta
	}

	return &Model{
		Quadrants: quadrants,
		Rings:     rings,
		MinRadius: o.minRadius,
		Margin:    o.margin,
	}, nil
}

// Outer returns the outermost ring radius.
func (m *Model) Outer() float64 { return m.Rings[len(m.Rings)-1].Radius }

// Line is a straight segment between two points.
type Line struct {
	From, To geom.Point
}

// BoundaryLines returns the two spokes of every quadrant, drawn from the
// center to the outer ring. Spokes are emitted per quadrant so that
// separated quadrant borders stay visible.
func (m *Model) BoundaryLines() []Line {
	outer := m.Outer()
	lines := make([]Line, 0, 2*len(m.Quadrants))
	for _, q := range m.Quadrants {
		lines = append(lines,
			Line{From: geom.Origin, To: geom.ToCartesian(geom.Polar{T: q.RadialMin * math.Pi, R: outer})},
			Line{From: geom.Origin, To: geom.ToCartesian(geom.Polar{T: q.RadialMax * math.Pi, R: outer})},
		)
	}
	return lines
}

// SymbolPosition returns where a quadrant's symbol is drawn: on the
// quadrant's bisector, midway between the two outermost ring radii.
func (m *Model) SymbolPosition(q int) geom.Point {
	quad := m.Quadrants[q]
	r := m.Outer()
	if n := len(m.Rings); n > 1 {
		r = (m.Rings[n-1].Radius + m.Rings[n-2].Radius) / 2
	}
	return geom.ToCartesian(geom.Polar{T: (quad.RadialMin + quad.RadialMax) / 2 * math.Pi, R: r})
}
