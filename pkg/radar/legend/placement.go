package legend

import (
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/partition"
)

// Position is the legend region a quadrant is drawn in.
type Position string

// Legend regions.
const (
	Left   Position = "left"
	Middle Position = "middle"
	Right  Position = "right"
)

// Print legend metrics in pixels, used to grow the chart when a middle
// column is drawn below the radar.
const (
	middleTitleHeight  = 18
	ringHeaderHeight   = 5 + 14 + 10
	bottomMarginCredit = 60
	entryLineHeight    = 12
)

// Input is what a placement strategy works from: the sorted, numbered
// entry grid plus the display names of quadrants and rings.
type Input struct {
	Grid      *partition.Grid
	Quadrants []radar.Quadrant
	Rings     []radar.Ring
}

// Quadrant is the legend of one quadrant.
type Quadrant struct {
	Index    int        `json:"index"`
	Name     string     `json:"name"`
	Symbol   string     `json:"symbol,omitempty"`
	Position Position   `json:"position"`
	Split    SplitPoint `json:"split"`
	Columns  []Column   `json:"columns"`
}

// Title returns the heading of the quadrant legend, "<symbol>. <name>"
// when a symbol is set.
func (q *Quadrant) Title() string {
	if q.Symbol == "" {
		return q.Name
	}
	return q.Symbol + ". " + q.Name
}

// Legend is the placed legend of a whole chart.
type Legend struct {
	Strategy  string     `json:"strategy"`
	Quadrants []Quadrant `json:"quadrants"`

	// ExtraHeight is added below the radar to fit a middle column.
	ExtraHeight float64 `json:"extra_height"`
}

// Region returns the quadrant legends of one region in drawing order.
// The right region stacks bottom-up, so its order is reversed.
func (l *Legend) Region(pos Position) []*Quadrant {
	var out []*Quadrant
	for i := range l.Quadrants {
		if l.Quadrants[i].Position == pos {
			out = append(out, &l.Quadrants[i])
		}
	}
	if pos == Right {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Placement arranges quadrant legends around the chart.
type Placement interface {
	Name() string
	Place(in Input) *Legend
}

// Print is the balanced print layout: each quadrant legend is split into
// two columns and odd quadrant counts get a middle region below the radar.
type Print struct {
	Mode       SplitMode
	LabelLimit int
	NoMiddle   bool
}

// Name implements Placement.
func (p Print) Name() string { return "print" }

// Place implements Placement.
func (p Print) Place(in Input) *Legend {
	n := in.Grid.Quadrants()
	l := &Legend{Strategy: p.Name()}
	for q := range n {
		split := Split(in.Grid.Sizes(q), p.Mode)
		l.Quadrants = append(l.Quadrants, quadrant(in, q, Assign(q, n, p.NoMiddle), split, p.LabelLimit))
	}
	if HasMiddle(n, p.NoMiddle) {
		l.ExtraHeight = MiddleHeight(in.Grid.Sizes(n / 2))
	}
	return l
}

// Flow is the interactive layout: one flowing column per quadrant, left
// and right halves only.
type Flow struct {
	LabelLimit int
}

// Name implements Placement.
func (f Flow) Name() string { return "flow" }

// Place implements Placement.
func (f Flow) Place(in Input) *Legend {
	n := in.Grid.Quadrants()
	l := &Legend{Strategy: f.Name()}
	for q := range n {
		split := SplitPoint{Ring: in.Grid.Rings()}
		l.Quadrants = append(l.Quadrants, quadrant(in, q, Assign(q, n, true), split, f.LabelLimit))
	}
	return l
}

func quadrant(in Input, q int, pos Position, split SplitPoint, labelLimit int) Quadrant {
	ql := Quadrant{
		Index:    q,
		Position: pos,
		Split:    split,
		Columns:  Columns(in.Grid.Quadrant(q), split, labelLimit),
	}
	if q < len(in.Quadrants) {
		ql.Name = in.Quadrants[q].Name
		ql.Symbol = in.Quadrants[q].Symbol
	}
	for c := range ql.Columns {
		for s := range ql.Columns[c].Sections {
			sec := &ql.Columns[c].Sections[s]
			if !sec.Continued && sec.Ring < len(in.Rings) {
				sec.Name = in.Rings[sec.Ring].Name
			}
		}
	}
	return ql
}

// HasMiddle reports whether n quadrants need a middle legend region.
func HasMiddle(n int, noMiddle bool) bool {
	return !noMiddle && n%2 == 1
}

// Assign returns the region of quadrant q out of n. With a middle region
// the first floor(n/2) quadrants go left and the last floor(n/2) go
// right. Without one the first ceil(n/2) go left.
func Assign(q, n int, noMiddle bool) Position {
	half := n / 2
	if !HasMiddle(n, noMiddle) {
		if q < (n+1)/2 {
			return Left
		}
		return Right
	}
	switch {
	case q < half:
		return Left
	case q >= n-half:
		return Right
	default:
		return Middle
	}
}

// MiddleHeight returns the extra chart height needed by a middle region
// whose quadrant has the given ring sizes. Rings are drawn in pairs, so
// the tallest pair sets the height.
func MiddleHeight(sizes []int) float64 {
	tallest, column := 0, 0
	for r, n := range sizes {
		if r%2 == 0 {
			tallest = max(tallest, column)
			column = 0
		}
		column += n
	}
	tallest = max(tallest, column)
	return middleTitleHeight + 2*ringHeaderHeight - bottomMarginCredit + float64(tallest*entryLineHeight)
}
