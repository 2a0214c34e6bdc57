package layout

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/observability"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/force"
	"github.com/matzehuels/techradar/pkg/radar/geom"
	"github.com/matzehuels/techradar/pkg/radar/legend"
	"github.com/matzehuels/techradar/pkg/radar/partition"
	"github.com/matzehuels/techradar/pkg/radar/rng"
	"github.com/matzehuels/techradar/pkg/radar/sector"
)

// Layout is the result of one layout pass.
type Layout struct {
	Config *radar.Config
	Model  *sector.Model
	Grid   *partition.Grid
	Legend *legend.Legend

	// Entries holds the placed entries in ID order. They point into
	// Config.Entries.
	Entries []*radar.Entry

	// Dropped holds one *errors.EntryError per skipped entry.
	Dropped []error

	Width       float64
	Height      float64 // RadarHeight plus room for a middle legend
	RadarHeight float64
	Center      geom.Point // radar origin in chart coordinates

	Simulation force.Result
	Seed       uint64
}

// Segment returns the segment e is placed in.
func (l *Layout) Segment(e *radar.Entry) (sector.Segment, error) {
	return l.Model.Lookup(e.Key())
}

// Validate reports the first fatal problem with cfg. It never looks at
// entries; those are filtered per entry by Build.
func Validate(cfg *radar.Config) error {
	if n := len(cfg.Quadrants); n < 2 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"number of quadrants too low: need at least 2, got %d", n)
	}
	if cfg.ZoomedQuadrant != nil {
		return errors.New(errors.ErrCodeUnsupported, "zooming not supported")
	}
	radii := cfg.Radii
	if len(radii) == 0 {
		radii = sector.DefaultRadii
	}
	if len(cfg.Rings) != len(radii) {
		return errors.New(errors.ErrCodeInvalidConfig,
			"ring count mismatch: %d rings configured for %d radii", len(cfg.Rings), len(radii))
	}
	if cfg.Print {
		for i, r := range cfg.Rings {
			if r.Name == "" {
				return errors.New(errors.ErrCodeInvalidConfig, "print layout needs a name for ring %d", i)
			}
		}
	}
	if cfg.Legend.LabelLimit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "label limit must not be negative, got %d", cfg.Legend.LabelLimit)
	}
	if _, err := legend.ParseSplitMode(cfg.Legend.SplitMode); err != nil {
		return err
	}
	if _, err := parseLocale(cfg.Locale); err != nil {
		return err
	}
	return nil
}

func parseLocale(s string) (language.Tag, error) {
	if s == "" {
		s = radar.DefaultLocale
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid locale %q", s)
	}
	return tag, nil
}

// Build runs a layout pass over cfg, decorating cfg.Entries in place.
// Configuration errors are returned before any entry is modified.
func Build(ctx context.Context, cfg *radar.Config, opts ...Option) (l *Layout, err error) {
	o := options{simulate: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	if o.src == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rng.DefaultSeed
		}
		o.src = rng.New(seed)
	}

	start := time.Now()
	hooks := observability.Layout()
	defer func() {
		placed := 0
		if l != nil {
			placed = len(l.Entries)
		}
		hooks.OnLayoutComplete(ctx, placed, time.Since(start), err)
	}()

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	tag, _ := parseLocale(cfg.Locale)
	if o.locale != nil {
		tag = *o.locale
	}
	mode, _ := legend.ParseSplitMode(cfg.Legend.SplitMode)

	sopts := []sector.Option{}
	if len(cfg.Radii) > 0 {
		sopts = append(sopts, sector.WithRadii(cfg.Radii...))
	}
	model, err := sector.New(len(cfg.Quadrants), sopts...)
	if err != nil {
		return nil, err
	}
	hooks.OnLayoutStart(ctx, len(model.Quadrants), len(model.Rings), len(cfg.Entries))

	kept, dropped := partition.Filter(cfg.Entries, len(model.Quadrants), len(model.Rings))
	for _, d := range dropped {
		ee := d.(*errors.EntryError)
		o.logger.Warn("ignoring entry", "index", ee.Index, "quadrant", ee.Quadrant, "ring", ee.Ring, "label", ee.Label)
		hooks.OnEntryDropped(ctx, ee.Reason)
	}

	for _, e := range kept {
		seg, err := model.Lookup(e.Key())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "segment for %q", e.Label)
		}
		p := seg.RandomPoint(o.src)
		e.X, e.Y = p.X, p.Y
		e.Color = cfg.EntryColor(e)
	}

	grid := partition.New(kept, len(model.Quadrants), len(model.Rings), partition.WithLanguage(tag))
	grid.AssignIDs()

	l = &Layout{
		Config:  cfg,
		Model:   model,
		Grid:    grid,
		Entries: grid.Ordered(),
		Dropped: dropped,
		Seed:    o.src.Seed(),
	}

	if o.simulate {
		simStart := time.Now()
		sim := append([]force.Option{force.WithSource(o.src)}, o.simOpts...)
		res, err := Resolve(ctx, model, kept, sim...)
		l.Simulation = res
		if err != nil {
			return nil, fmt.Errorf("resolve overlaps: %w", err)
		}
		hooks.OnSimulationComplete(ctx, res.Ticks, res.Converged, time.Since(simStart))
		o.logger.Debug("resolved overlaps", "ticks", res.Ticks, "converged", res.Converged)
	} else {
		if err := clipAll(model, kept); err != nil {
			return nil, err
		}
	}

	placement := o.placement
	if placement == nil {
		placement = defaultPlacement(cfg, mode)
	}
	l.Legend = placement.Place(legend.Input{Grid: grid, Quadrants: cfg.Quadrants, Rings: cfg.Rings})

	l.Width = orDefault(cfg.Width, radar.DefaultWidth)
	l.RadarHeight = orDefault(cfg.Height, radar.DefaultHeight)
	l.Height = l.RadarHeight + l.Legend.ExtraHeight
	l.Center = geom.Point{X: l.Width / 2, Y: l.RadarHeight / 2}

	o.logger.Debug("computed layout",
		"entries", len(l.Entries),
		"dropped", len(dropped),
		"legend", l.Legend.Strategy,
		"duration", time.Since(start))
	return l, nil
}

func defaultPlacement(cfg *radar.Config, mode legend.SplitMode) legend.Placement {
	if cfg.Print {
		return legend.Print{Mode: mode, LabelLimit: cfg.Legend.LabelLimit, NoMiddle: cfg.Legend.NoMiddle}
	}
	return legend.Flow{LabelLimit: cfg.Legend.LabelLimit}
}

func clipAll(model *sector.Model, entries []*radar.Entry) error {
	for _, e := range entries {
		seg, err := model.Lookup(e.Key())
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "segment for %q", e.Label)
		}
		p := geom.Point{X: e.X, Y: e.Y}
		seg.Clip(&p)
		e.X, e.Y = p.X, p.Y
	}
	return nil
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
