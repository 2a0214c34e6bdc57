package sink

import (
	"encoding/json"
	stderrors "errors"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar/layout"
	"github.com/matzehuels/techradar/pkg/radar/legend"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	fingerprint string
	compact     bool
}

// WithFingerprint records the configuration fingerprint so consumers can
// tell whether a stored layout is stale.
func WithFingerprint(fp string) JSONOption { return func(r *jsonRenderer) { r.fingerprint = fp } }

// WithCompact disables indentation.
func WithCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	Title       string          `json:"title,omitempty"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	RadarHeight float64         `json:"radar_height"`
	Center      jsonPoint       `json:"center"`
	Seed        uint64          `json:"seed"`
	Fingerprint string          `json:"fingerprint,omitempty"`
	Print       bool            `json:"print,omitempty"`
	Colors      jsonColors      `json:"colors"`
	Quadrants   []jsonQuadrant  `json:"quadrants"`
	Rings       []jsonRing      `json:"rings"`
	Entries     []jsonEntry     `json:"entries"`
	Legend      *legend.Legend  `json:"legend"`
	Simulation  jsonSimulation  `json:"simulation"`
	Dropped     []jsonDiagnosis `json:"dropped,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonColors struct {
	Background string `json:"background"`
	Grid       string `json:"grid"`
	Inactive   string `json:"inactive"`
}

type jsonQuadrant struct {
	Index     int       `json:"index"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol,omitempty"`
	RadialMin float64   `json:"radial_min"`
	RadialMax float64   `json:"radial_max"`
	SymbolAt  jsonPoint `json:"symbol_at"`
}

type jsonRing struct {
	Index  int     `json:"index"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Inner  float64 `json:"inner"`
	Radius float64 `json:"radius"`
}

type jsonEntry struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Quadrant int     `json:"quadrant"`
	Ring     int     `json:"ring"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Color    string  `json:"color"`
	Shape    string  `json:"shape"`
	Text     string  `json:"text,omitempty"`
	Link     string  `json:"link,omitempty"`
	Active   bool    `json:"active"`
	Moved    int     `json:"moved,omitempty"`
}

type jsonSimulation struct {
	Ticks     int     `json:"ticks"`
	Alpha     float64 `json:"alpha"`
	Converged bool    `json:"converged"`
}

type jsonDiagnosis struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Quadrant int    `json:"quadrant"`
	Ring     int    `json:"ring"`
	Reason   string `json:"reason"`
}

// RenderJSON exports the layout as a pretty-printed JSON document.
// Entry coordinates are relative to the radar center. RenderJSON does not
// modify l and is safe to call concurrently.
func RenderJSON(l *layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	cfg := l.Config
	out := jsonOutput{
		Title:       cfg.Title,
		Width:       l.Width,
		Height:      l.Height,
		RadarHeight: l.RadarHeight,
		Center:      jsonPoint{X: l.Center.X, Y: l.Center.Y},
		Seed:        l.Seed,
		Fingerprint: r.fingerprint,
		Print:       cfg.Print,
		Colors: jsonColors{
			Background: cfg.Colors.Background,
			Grid:       cfg.Colors.Grid,
			Inactive:   cfg.Inactive(),
		},
		Legend: l.Legend,
		Simulation: jsonSimulation{
			Ticks:     l.Simulation.Ticks,
			Alpha:     l.Simulation.Alpha,
			Converged: l.Simulation.Converged,
		},
	}

	for _, q := range l.Model.Quadrants {
		jq := jsonQuadrant{Index: q.Index, RadialMin: q.RadialMin, RadialMax: q.RadialMax}
		if q.Index < len(cfg.Quadrants) {
			jq.Name, jq.Symbol = cfg.Quadrants[q.Index].Name, cfg.Quadrants[q.Index].Symbol
		}
		p := l.Model.SymbolPosition(q.Index)
		jq.SymbolAt = jsonPoint{X: p.X, Y: p.Y}
		out.Quadrants = append(out.Quadrants, jq)
	}
	for _, ring := range l.Model.Rings {
		jr := jsonRing{Index: ring.Index, Inner: ring.Inner, Radius: ring.Radius}
		if ring.Index < len(cfg.Rings) {
			jr.Name, jr.Color = cfg.Rings[ring.Index].Name, cfg.Rings[ring.Index].Color
		}
		out.Rings = append(out.Rings, jr)
	}

	out.Entries = make([]jsonEntry, 0, len(l.Entries))
	for _, e := range l.Entries {
		out.Entries = append(out.Entries, jsonEntry{
			ID:       e.ID,
			Label:    e.Label,
			Quadrant: e.Quadrant,
			Ring:     e.Ring,
			X:        e.X,
			Y:        e.Y,
			Color:    e.Color,
			Shape:    string(e.Shape()),
			Text:     e.BlipText(cfg.Print),
			Link:     e.Href(cfg.Print),
			Active:   e.Active,
			Moved:    e.Moved,
		})
	}
	for _, d := range l.Dropped {
		var ee *errors.EntryError
		if !stderrors.As(d, &ee) {
			out.Dropped = append(out.Dropped, jsonDiagnosis{Index: -1, Reason: d.Error()})
			continue
		}
		out.Dropped = append(out.Dropped, jsonDiagnosis{
			Index:    ee.Index,
			Label:    ee.Label,
			Quadrant: ee.Quadrant,
			Ring:     ee.Ring,
			Reason:   ee.Reason,
		})
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}
