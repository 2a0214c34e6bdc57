package legend

import (
	"github.com/matzehuels/techradar/pkg/radar"
)

// Ellipsis is appended to truncated labels.
const Ellipsis = "..."

// Item is one legend line.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Link  string `json:"link,omitempty"`
}

// Text returns the line as displayed: "<id>. <label>".
func (it Item) Text() string {
	return it.ID + ". " + it.Label
}

// Section is the block of one ring inside a column. A ring split across
// two columns yields a second section with Continued set and no header.
type Section struct {
	Ring      int    `json:"ring"`
	Name      string `json:"name,omitempty"`
	Continued bool   `json:"continued,omitempty"`
	Items     []Item `json:"items"`
}

// Column is one display column of a quadrant legend.
type Column struct {
	Sections []Section `json:"sections"`
}

// Truncate shortens label to its first limit runes plus an ellipsis when
// it is longer than limit+3 runes. A limit of zero or less disables
// truncation.
func Truncate(label string, limit int) string {
	if limit <= 0 {
		return label
	}
	runes := []rune(label)
	if len(runes) <= limit+len(Ellipsis) {
		return label
	}
	return string(runes[:limit]) + Ellipsis
}

func items(bucket []*radar.Entry, labelLimit int) []Item {
	out := make([]Item, len(bucket))
	for i, e := range bucket {
		out[i] = Item{ID: e.ID, Label: Truncate(e.Label, labelLimit), Link: e.Link}
	}
	return out
}

// Columns applies split to a quadrant's ring-ordered buckets. Every ring
// gets a section, empty rings included. A column is never started empty,
// so a split before the first ring header yields a single column.
func Columns(buckets [][]*radar.Entry, split SplitPoint, labelLimit int) []Column {
	cols := []Column{{}}
	cur := func() *Column { return &cols[len(cols)-1] }
	next := func() {
		if len(cur().Sections) > 0 {
			cols = append(cols, Column{})
		}
	}

	for r, bucket := range buckets {
		if split.Ring == r && split.Entry == 0 {
			next()
		}
		all := items(bucket, labelLimit)
		if split.Ring != r || split.Entry == 0 {
			cur().Sections = append(cur().Sections, Section{Ring: r, Items: all})
			continue
		}

		at := min(split.Entry, len(all))
		cur().Sections = append(cur().Sections, Section{Ring: r, Items: all[:at]})
		next()
		if rest := all[at:]; len(rest) > 0 {
			cur().Sections = append(cur().Sections, Section{Ring: r, Continued: true, Items: rest})
		}
	}
	if len(cols) > 1 && len(cur().Sections) == 0 {
		cols = cols[:len(cols)-1]
	}
	return cols
}
