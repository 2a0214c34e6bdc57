package sector

import (
	"math"
	"testing"

	"github.com/matzehuels/techradar/pkg/errors"
)

func TestNewQuadrantBounds(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []Quadrant
	}{
		{
			name:  "four quadrants",
			count: 4,
			want: []Quadrant{
				{Index: 0, RadialMin: 1, RadialMax: 1.5},
				{Index: 1, RadialMin: 0.5, RadialMax: 1},
				{Index: 2, RadialMin: 0, RadialMax: 0.5},
				{Index: 3, RadialMin: -0.5, RadialMax: 0},
			},
		},
		{
			name:  "two quadrants",
			count: 2,
			want: []Quadrant{
				{Index: 0, RadialMin: 0.5, RadialMax: 1.5},
				{Index: 1, RadialMin: -0.5, RadialMax: 0.5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.count)
			if err != nil {
				t.Fatalf("New(%d) error: %v", tt.count, err)
			}
			if len(m.Quadrants) != len(tt.want) {
				t.Fatalf("got %d quadrants, want %d", len(m.Quadrants), len(tt.want))
			}
			for i, q := range m.Quadrants {
				w := tt.want[i]
				if q.Index != w.Index || math.Abs(q.RadialMin-w.RadialMin) > 1e-12 || math.Abs(q.RadialMax-w.RadialMax) > 1e-12 {
					t.Errorf("quadrant %d = %+v, want %+v", i, q, w)
				}
			}
		})
	}
}

func TestQuadrantsPartitionCircle(t *testing.T) {
	for _, count := range []int{2, 3, 4, 5, 6, 7, 12} {
		m, err := New(count)
		if err != nil {
			t.Fatalf("New(%d) error: %v", count, err)
		}
		total := 0.0
		for i, q := range m.Quadrants {
			if math.Abs(q.Span()-2/float64(count)) > 1e-12 {
				t.Errorf("Q=%d quadrant %d span = %v, want %v", count, i, q.Span(), 2/float64(count))
			}
			if i > 0 && math.Abs(m.Quadrants[i-1].RadialMin-q.RadialMax) > 1e-12 {
				t.Errorf("Q=%d quadrants %d and %d are not contiguous", count, i-1, i)
			}
			total += q.Span()
		}
		if math.Abs(total-2) > 1e-9 {
			t.Errorf("Q=%d total span = %v, want 2", count, total)
		}
	}
}

func TestNewRings(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	want := []Ring{
		{Index: 0, Inner: 30, Radius: 130},
		{Index: 1, Inner: 130, Radius: 220},
		{Index: 2, Inner: 220, Radius: 310},
		{Index: 3, Inner: 310, Radius: 400},
	}
	for i, r := range m.Rings {
		if r != want[i] {
			t.Errorf("ring %d = %+v, want %+v", i, r, want[i])
		}
	}
	if m.Outer() != 400 {
		t.Errorf("Outer() = %v, want 400", m.Outer())
	}
	if m.Margin != DefaultMargin {
		t.Errorf("Margin = %v, want %v", m.Margin, DefaultMargin)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name  string
		count int
		opts  []Option
	}{
		{name: "one quadrant", count: 1},
		{name: "zero quadrants", count: 0},
		{name: "no rings", count: 4, opts: []Option{WithRadii()}},
		{name: "decreasing radii", count: 4, opts: []Option{WithRadii(100, 90)}},
		{name: "equal radii", count: 4, opts: []Option{WithRadii(100, 100)}},
		{name: "min radius beyond first ring", count: 4, opts: []Option{WithMinRadius(200)}},
		{name: "negative margin", count: 4, opts: []Option{WithMargin(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.count, tt.opts...)
			if err == nil {
				t.Fatalf("New() = %+v, want error", m)
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestCustomRadii(t *testing.T) {
	m, err := New(3, WithRadii(50, 100, 150), WithMinRadius(10), WithMargin(5))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if len(m.Rings) != 3 || m.Rings[0].Inner != 10 || m.Rings[2].Radius != 150 || m.Margin != 5 {
		t.Errorf("unexpected model: %+v", m)
	}
}

func TestBoundaryLines(t *testing.T) {
	m, _ := New(4)
	lines := m.BoundaryLines()
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	// Quadrant 0 spans [π, 1.5π]: spokes end at (-400, 0) and (0, -400).
	if got := lines[0].To; math.Abs(got.X+400) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("first spoke ends at %v, want (-400, 0)", got)
	}
	if got := lines[1].To; math.Abs(got.X) > 1e-9 || math.Abs(got.Y+400) > 1e-9 {
		t.Errorf("second spoke ends at %v, want (0, -400)", got)
	}
}

func TestSymbolPosition(t *testing.T) {
	m, _ := New(4)
	p := m.SymbolPosition(0)
	// Bisector at 1.25π, radius (310+400)/2.
	r := 355.0
	want := r * math.Cos(1.25*math.Pi)
	if math.Abs(p.X-want) > 1e-9 || math.Abs(p.Y-want) > 1e-9 {
		t.Errorf("SymbolPosition(0) = %v, want (%v, %v)", p, want, want)
	}
}
