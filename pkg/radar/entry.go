package radar

import (
	"unicode"

	"github.com/matzehuels/techradar/pkg/radar/sector"
)

// Shape is the blip marker drawn for an entry.
type Shape string

// Blip shapes.
const (
	ShapeCircle       Shape = "circle"
	ShapeTriangleUp   Shape = "triangle-up"
	ShapeTriangleDown Shape = "triangle-down"
)

// Entry is an item placed on the chart. The first block of fields is
// input; the second is filled in by the layout engine.
type Entry struct {
	Quadrant int
	Ring     int
	Label    string
	Active   bool
	Moved    int // > 0 moved up, < 0 moved down, 0 unchanged
	Link     string

	X     float64
	Y     float64
	ID    string
	Color string
}

// Key returns the segment the entry belongs to. The segment itself is
// derived from the chart's sector model on demand.
func (e *Entry) Key() sector.Key {
	return sector.Key{Quadrant: e.Quadrant, Ring: e.Ring}
}

// Shape returns the blip marker for e.
func (e *Entry) Shape() Shape {
	switch {
	case e.Moved > 0:
		return ShapeTriangleUp
	case e.Moved < 0:
		return ShapeTriangleDown
	default:
		return ShapeCircle
	}
}

// BlipText returns the text drawn inside the blip. Print layouts show
// the entry ID; interactive layouts show the first ASCII letter of the
// label for active entries and nothing for inactive ones.
func (e *Entry) BlipText(print bool) string {
	if print {
		return e.ID
	}
	if !e.Active {
		return ""
	}
	for _, r := range e.Label {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			return string(r)
		}
	}
	return ""
}

// Href returns the link a blip points to. Links are only emitted for
// active entries in interactive layouts.
func (e *Entry) Href(print bool) string {
	if print || !e.Active {
		return ""
	}
	return e.Link
}
