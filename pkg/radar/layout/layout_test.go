package layout

import (
	"context"
	stderrors "errors"
	"io"
	"math"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/observability"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/force"
	"github.com/matzehuels/techradar/pkg/radar/geom"
	"github.com/matzehuels/techradar/pkg/radar/legend"
	"github.com/matzehuels/techradar/pkg/radar/rng"
)

var quiet = WithLogger(log.New(io.Discard))

func sampleConfig(quadrants int) *radar.Config {
	cfg := &radar.Config{
		Title:  "Tech Radar",
		Rings:  []radar.Ring{{Name: "Adopt", Color: "#5ba300"}, {Name: "Trial", Color: "#009eb0"}, {Name: "Assess", Color: "#c7ba00"}, {Name: "Hold", Color: "#e09b96"}},
		Colors: radar.Colors{Background: "#fff", Grid: "#bbb", Inactive: "#ddd"},
		Legend: radar.Legend{LabelLimit: 20, SplitMode: "ring"},
		Seed:   42,
	}
	for q := range quadrants {
		cfg.Quadrants = append(cfg.Quadrants, radar.Quadrant{Name: "Quadrant " + strconv.Itoa(q)})
	}
	for i := 0; i < 40; i++ {
		cfg.Entries = append(cfg.Entries, radar.Entry{
			Quadrant: i % quadrants,
			Ring:     (i / quadrants) % 4,
			Label:    "Technology " + strconv.Itoa(39-i),
			Active:   i%3 != 0,
			Moved:    i%3 - 1,
		})
	}
	return cfg
}

func TestBuild(t *testing.T) {
	cfg := sampleConfig(4)
	l, err := Build(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(l.Entries) != 40 || len(l.Dropped) != 0 {
		t.Fatalf("placed %d, dropped %d, want 40 and 0", len(l.Entries), len(l.Dropped))
	}
	for i, e := range l.Entries {
		if e.ID != strconv.Itoa(i+1) {
			t.Errorf("Entries[%d].ID = %q, want ID order", i, e.ID)
		}
		seg, err := l.Segment(e)
		if err != nil {
			t.Fatalf("Segment(%q) error: %v", e.Label, err)
		}
		if !seg.Contains(radarPoint(e)) {
			t.Errorf("entry %q at (%v, %v) is outside segment %+v", e.Label, e.X, e.Y, seg.Key())
		}
	}
	if !l.Simulation.Converged || l.Simulation.Ticks == 0 {
		t.Errorf("Simulation = %+v, want converged", l.Simulation)
	}
	if l.Legend.Strategy != "flow" {
		t.Errorf("Legend.Strategy = %q, want flow", l.Legend.Strategy)
	}
	if l.Width != radar.DefaultWidth || l.Height != radar.DefaultHeight {
		t.Errorf("dimensions = %vx%v, want defaults", l.Width, l.Height)
	}
	if l.Center.X != radar.DefaultWidth/2 || l.Center.Y != radar.DefaultHeight/2 {
		t.Errorf("Center = %v", l.Center)
	}
	if l.Seed != 42 {
		t.Errorf("Seed = %d, want 42", l.Seed)
	}
}

func TestBuildDecoratesInPlace(t *testing.T) {
	cfg := sampleConfig(4)
	l, err := Build(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for _, e := range l.Entries {
		found := false
		for i := range cfg.Entries {
			if &cfg.Entries[i] == e {
				found = true
			}
		}
		if !found {
			t.Fatalf("entry %q is not an element of cfg.Entries", e.Label)
		}
	}
}

func TestBuildReproducible(t *testing.T) {
	a, err := Build(context.Background(), sampleConfig(5), quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	b, err := Build(context.Background(), sampleConfig(5), quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for i := range a.Entries {
		ea, eb := a.Entries[i], b.Entries[i]
		if ea.ID != eb.ID || ea.Label != eb.Label || ea.X != eb.X || ea.Y != eb.Y {
			t.Fatalf("entry %d differs: %+v vs %+v", i, *ea, *eb)
		}
	}
	if a.Simulation != b.Simulation {
		t.Errorf("simulation results differ: %+v vs %+v", a.Simulation, b.Simulation)
	}
}

func TestBuildSeedChangesPositions(t *testing.T) {
	a, _ := Build(context.Background(), sampleConfig(4), quiet)
	b, _ := Build(context.Background(), sampleConfig(4), quiet, WithSource(rng.New(7)))
	same := 0
	for i := range a.Entries {
		if a.Entries[i].X == b.Entries[i].X && a.Entries[i].Y == b.Entries[i].Y {
			same++
		}
	}
	if same == len(a.Entries) {
		t.Error("different seeds produced identical positions")
	}
	if b.Seed != 7 {
		t.Errorf("Seed = %d, want 7", b.Seed)
	}
}

func TestBuildConcurrentPasses(t *testing.T) {
	want, err := Build(context.Background(), sampleConfig(4), quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]*Layout, 4)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Build(context.Background(), sampleConfig(4), quiet)
		}()
	}
	wg.Wait()

	for i, l := range results {
		if l == nil {
			t.Fatalf("pass %d failed", i)
		}
		for j := range l.Entries {
			if l.Entries[j].X != want.Entries[j].X || l.Entries[j].Y != want.Entries[j].Y {
				t.Fatalf("pass %d entry %d differs from the serial pass", i, j)
			}
		}
	}
}

func TestBuildConfigErrors(t *testing.T) {
	zoom := 1
	tests := []struct {
		name   string
		mutate func(*radar.Config)
		code   errors.Code
	}{
		{name: "single quadrant", mutate: func(c *radar.Config) { c.Quadrants = c.Quadrants[:1] }, code: errors.ErrCodeInvalidConfig},
		{name: "no quadrants", mutate: func(c *radar.Config) { c.Quadrants = nil }, code: errors.ErrCodeInvalidConfig},
		{name: "zoomed", mutate: func(c *radar.Config) { c.ZoomedQuadrant = &zoom }, code: errors.ErrCodeUnsupported},
		{name: "ring count", mutate: func(c *radar.Config) { c.Rings = c.Rings[:3] }, code: errors.ErrCodeInvalidConfig},
		{name: "custom radii count", mutate: func(c *radar.Config) { c.Radii = []float64{100, 200} }, code: errors.ErrCodeInvalidConfig},
		{name: "bad radii", mutate: func(c *radar.Config) { c.Radii = []float64{100, 90, 300, 400} }, code: errors.ErrCodeInvalidConfig},
		{name: "split mode", mutate: func(c *radar.Config) { c.Legend.SplitMode = "diagonal" }, code: errors.ErrCodeInvalidSplitMode},
		{name: "label limit", mutate: func(c *radar.Config) { c.Legend.LabelLimit = -1 }, code: errors.ErrCodeInvalidConfig},
		{name: "locale", mutate: func(c *radar.Config) { c.Locale = "not a locale!" }, code: errors.ErrCodeInvalidConfig},
		{name: "print without ring names", mutate: func(c *radar.Config) { c.Print = true; c.Rings[2].Name = "" }, code: errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sampleConfig(4)
			tt.mutate(cfg)
			l, err := Build(context.Background(), cfg, quiet)
			if err == nil {
				t.Fatalf("Build() = %+v, want error", l)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
			for _, e := range cfg.Entries {
				if e.ID != "" || e.X != 0 || e.Y != 0 || e.Color != "" {
					t.Fatalf("entry %q was decorated despite a config error", e.Label)
				}
			}
		})
	}
}

func TestBuildSingleQuadrantMessage(t *testing.T) {
	cfg := sampleConfig(2)
	cfg.Quadrants = cfg.Quadrants[:1]
	_, err := Build(context.Background(), cfg, quiet)
	if got := errors.UserMessage(err); got != "number of quadrants too low: need at least 2, got 1" {
		t.Errorf("message = %q", got)
	}
}

func TestBuildDropsOutOfRangeEntries(t *testing.T) {
	cfg := sampleConfig(4)
	cfg.Entries = append(cfg.Entries,
		radar.Entry{Quadrant: 99, Ring: 0, Label: "Ghost"},
		radar.Entry{Quadrant: 1, Ring: 7, Label: "Phantom"},
	)

	l, err := Build(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(l.Dropped) != 2 || len(l.Entries) != 40 {
		t.Fatalf("placed %d, dropped %d, want 40 and 2", len(l.Entries), len(l.Dropped))
	}
	for _, e := range l.Entries {
		if e.Label == "Ghost" || e.Label == "Phantom" {
			t.Errorf("dropped entry %q was placed", e.Label)
		}
	}
	for q := range 4 {
		for _, bucket := range l.Grid.Quadrant(q) {
			for _, e := range bucket {
				if e.Label == "Ghost" {
					t.Error("dropped entry found in a grid bucket")
				}
			}
		}
	}
	if ghost := cfg.Entries[40]; ghost.ID != "" || ghost.X != 0 {
		t.Errorf("dropped entry was decorated: %+v", ghost)
	}
	for _, d := range l.Dropped {
		if !errors.Is(d, errors.ErrCodeInvalidEntry) {
			t.Errorf("dropped diagnostic %v has code %s", d, errors.GetCode(d))
		}
	}
}

func TestBuildColors(t *testing.T) {
	cfg := sampleConfig(4)
	l, err := Build(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for _, e := range l.Entries {
		want := "#ddd"
		if e.Active {
			want = cfg.Rings[e.Ring].Color
		}
		if e.Color != want {
			t.Errorf("entry %q colour = %s, want %s", e.Label, e.Color, want)
		}
	}

	cfg = sampleConfig(4)
	cfg.Print = true
	l, err = Build(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for _, e := range l.Entries {
		if e.Color != cfg.Rings[e.Ring].Color {
			t.Errorf("print entry %q colour = %s, want ring colour", e.Label, e.Color)
		}
	}
}

func TestBuildPrintMiddleLegend(t *testing.T) {
	cfg := sampleConfig(3)
	cfg.Print = true
	l, err := Build(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if l.Legend.Strategy != "print" {
		t.Fatalf("Legend.Strategy = %q, want print", l.Legend.Strategy)
	}
	want := legend.MiddleHeight(l.Grid.Sizes(1))
	if l.Height != l.RadarHeight+want || l.Height <= l.RadarHeight {
		t.Errorf("Height = %v, RadarHeight = %v, want extra %v", l.Height, l.RadarHeight, want)
	}
	if l.Center.Y != l.RadarHeight/2 {
		t.Errorf("Center.Y = %v, want %v", l.Center.Y, l.RadarHeight/2)
	}

	cfg = sampleConfig(3)
	cfg.Print = true
	cfg.Legend.NoMiddle = true
	l, _ = Build(context.Background(), cfg, quiet)
	if l.Height != l.RadarHeight {
		t.Errorf("no-middle Height = %v, want %v", l.Height, l.RadarHeight)
	}
}

func TestBuildWithoutSimulation(t *testing.T) {
	l, err := Build(context.Background(), sampleConfig(4), quiet, WithoutSimulation())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if l.Simulation.Ticks != 0 {
		t.Errorf("Ticks = %d, want 0", l.Simulation.Ticks)
	}
	for _, e := range l.Entries {
		seg, _ := l.Segment(e)
		if !seg.Contains(radarPoint(e)) {
			t.Errorf("entry %q outside its segment", e.Label)
		}
	}
}

func TestBuildWithSimulationOptions(t *testing.T) {
	l, err := Build(context.Background(), sampleConfig(4), quiet, WithSimulation(force.WithMaxTicks(5)))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if l.Simulation.Ticks != 5 || l.Simulation.Converged {
		t.Errorf("Simulation = %+v, want 5 capped ticks", l.Simulation)
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, sampleConfig(4), quiet)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestBuildWithPlacement(t *testing.T) {
	cfg := sampleConfig(4)
	l, err := Build(context.Background(), cfg, quiet, WithPlacement(legend.Print{Mode: legend.SplitEntry}))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if l.Legend.Strategy != "print" {
		t.Errorf("Legend.Strategy = %q, want print", l.Legend.Strategy)
	}
}

func TestBuildSortsWithLocale(t *testing.T) {
	cfg := sampleConfig(2)
	cfg.Entries = []radar.Entry{
		{Quadrant: 0, Ring: 0, Label: "zebra"},
		{Quadrant: 0, Ring: 0, Label: "öl"},
	}
	cfg.Locale = "sv"
	l, err := Build(context.Background(), cfg, quiet, WithoutSimulation())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if l.Entries[0].Label != "zebra" {
		t.Errorf("swedish order = %q first, want zebra", l.Entries[0].Label)
	}
}

type countingHooks struct {
	observability.NoopLayoutHooks
	mu        sync.Mutex
	dropped   []string
	completed int
	ticks     int
}

func (h *countingHooks) OnEntryDropped(_ context.Context, reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropped = append(h.dropped, reason)
}

func (h *countingHooks) OnSimulationComplete(_ context.Context, ticks int, _ bool, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ticks = ticks
}

func (h *countingHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed++
}

func TestBuildHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetLayoutHooks(hooks)
	defer observability.Reset()

	cfg := sampleConfig(4)
	cfg.Entries = append(cfg.Entries, radar.Entry{Quadrant: 99, Label: "Ghost"})
	l, err := Build(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(hooks.dropped) != 1 || hooks.dropped[0] != "incorrect quadrant index 99" {
		t.Errorf("dropped hooks = %v", hooks.dropped)
	}
	if hooks.ticks != l.Simulation.Ticks {
		t.Errorf("simulation hook ticks = %d, want %d", hooks.ticks, l.Simulation.Ticks)
	}

	bad := sampleConfig(4)
	bad.Quadrants = bad.Quadrants[:1]
	_, _ = Build(context.Background(), bad, quiet)
	if hooks.completed != 2 {
		t.Errorf("completed hooks = %d, want 2", hooks.completed)
	}
}

func TestResolveSeparatesCrowdedSegment(t *testing.T) {
	cfg := sampleConfig(4)
	cfg.Entries = nil
	for i := range 12 {
		cfg.Entries = append(cfg.Entries, radar.Entry{Quadrant: 2, Ring: 3, Label: "crowd " + strconv.Itoa(i)})
	}
	l, err := Build(context.Background(), cfg, quiet)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var dists []float64
	for i, a := range l.Entries {
		for _, b := range l.Entries[i+1:] {
			dists = append(dists, math.Hypot(a.X-b.X, a.Y-b.Y))
		}
	}
	if slices.Min(dists) < 12 {
		t.Errorf("closest pair is %v apart, want the collision force to separate them", slices.Min(dists))
	}
}

func radarPoint(e *radar.Entry) geom.Point {
	return geom.Point{X: e.X, Y: e.Y}
}
