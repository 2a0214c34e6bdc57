package layout

import (
	"context"
	"testing"

	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/force"
	"github.com/matzehuels/techradar/pkg/radar/sector"
)

func TestResolveClipsAfterFirstTick(t *testing.T) {
	model, err := sector.New(4)
	if err != nil {
		t.Fatalf("sector.New() error: %v", err)
	}
	entries := []*radar.Entry{
		{Quadrant: 0, Ring: 0, X: 500, Y: 500},
		{Quadrant: 3, Ring: 3, X: 0, Y: 0},
		{Quadrant: 1, Ring: 2, X: -1000, Y: 3},
	}

	res, err := Resolve(context.Background(), model, entries, force.WithMaxTicks(1))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Ticks != 1 {
		t.Errorf("Ticks = %d, want 1", res.Ticks)
	}
	for _, e := range entries {
		seg, _ := model.Lookup(e.Key())
		if !seg.Contains(radarPoint(e)) {
			t.Errorf("entry at (%v, %v) not clipped into %+v", e.X, e.Y, seg.Key())
		}
	}
}

func TestResolveRejectsUnknownSegment(t *testing.T) {
	model, _ := sector.New(4)
	_, err := Resolve(context.Background(), model, []*radar.Entry{{Quadrant: 9}})
	if err == nil {
		t.Fatal("Resolve() with an out of range entry succeeded")
	}
}

func TestResolveEmpty(t *testing.T) {
	model, _ := sector.New(4)
	res, err := Resolve(context.Background(), model, nil)
	if err != nil || !res.Converged {
		t.Errorf("Resolve(nil) = %+v, %v", res, err)
	}
}
