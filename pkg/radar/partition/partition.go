// Package partition buckets radar entries by segment and numbers them.
//
// Entries are first filtered ([Filter]): an entry whose quadrant or ring
// does not exist is reported and skipped, never fatal. The remaining
// entries are bucketed into a quadrants × rings [Grid], each bucket is
// sorted by label with a locale-aware collator, and IDs "1".."N" are
// assigned in quadrant, ring, label order ([Grid.AssignIDs]).
package partition

import (
	"slices"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
)

// Filter returns pointers to the entries whose quadrant and ring exist,
// in input order, and one *errors.EntryError per skipped entry. The
// caller's slice is not modified.
func Filter(entries []radar.Entry, quadrants, rings int) ([]*radar.Entry, []error) {
	kept := make([]*radar.Entry, 0, len(entries))
	var dropped []error
	for i := range entries {
		e := &entries[i]
		reason := ""
		switch {
		case e.Quadrant < 0 || e.Quadrant >= quadrants:
			reason = "incorrect quadrant index " + strconv.Itoa(e.Quadrant)
		case e.Ring < 0 || e.Ring >= rings:
			reason = "incorrect ring index " + strconv.Itoa(e.Ring)
		}
		if reason != "" {
			dropped = append(dropped, &errors.EntryError{
				Index:    i,
				Quadrant: e.Quadrant,
				Ring:     e.Ring,
				Label:    e.Label,
				Reason:   reason,
			})
			continue
		}
		kept = append(kept, e)
	}
	return kept, dropped
}

// Option configures a Grid.
type Option func(*options)

type options struct {
	tag language.Tag
}

// WithLanguage sets the collation language (default English).
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.tag = tag }
}

// Grid holds the entries of one chart bucketed by quadrant and ring.
// Buckets are sorted by label.
type Grid struct {
	buckets [][][]*radar.Entry
}

// New buckets entries into a quadrants × rings grid and sorts every bucket.
// Entries must already be filtered; out of range entries panic.
func New(entries []*radar.Entry, quadrants, rings int, opts ...Option) *Grid {
	o := options{tag: language.English}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{buckets: make([][][]*radar.Entry, quadrants)}
	for q := range g.buckets {
		g.buckets[q] = make([][]*radar.Entry, rings)
		for r := range g.buckets[q] {
			g.buckets[q][r] = []*radar.Entry{}
		}
	}
	for _, e := range entries {
		g.buckets[e.Quadrant][e.Ring] = append(g.buckets[e.Quadrant][e.Ring], e)
	}

	// collate.Collator keeps scratch buffers; one per grid, used serially.
	col := collate.New(o.tag)
	for q := range g.buckets {
		for r := range g.buckets[q] {
			slices.SortStableFunc(g.buckets[q][r], func(a, b *radar.Entry) int {
				return col.CompareString(a.Label, b.Label)
			})
		}
	}
	return g
}

// AssignIDs numbers all entries "1".."N" in quadrant, ring and bucket
// order and returns N.
func (g *Grid) AssignIDs() int {
	id := 0
	for q := range g.buckets {
		for r := range g.buckets[q] {
			for _, e := range g.buckets[q][r] {
				id++
				e.ID = strconv.Itoa(id)
			}
		}
	}
	return id
}

// Quadrants returns the number of quadrants.
func (g *Grid) Quadrants() int { return len(g.buckets) }

// Rings returns the number of rings.
func (g *Grid) Rings() int {
	if len(g.buckets) == 0 {
		return 0
	}
	return len(g.buckets[0])
}

// Bucket returns the sorted entries of quadrant q and ring r.
func (g *Grid) Bucket(q, r int) []*radar.Entry { return g.buckets[q][r] }

// Quadrant returns the ring-ordered buckets of quadrant q.
func (g *Grid) Quadrant(q int) [][]*radar.Entry { return g.buckets[q] }

// Sizes returns the number of entries per ring of quadrant q.
func (g *Grid) Sizes(q int) []int {
	sizes := make([]int, len(g.buckets[q]))
	for r, b := range g.buckets[q] {
		sizes[r] = len(b)
	}
	return sizes
}

// Ordered returns all entries in ID order.
func (g *Grid) Ordered() []*radar.Entry {
	var out []*radar.Entry
	for q := range g.buckets {
		for r := range g.buckets[q] {
			out = append(out, g.buckets[q][r]...)
		}
	}
	return out
}
