package radar

// Default chart dimensions and colours.
const (
	DefaultWidth      = 1450.0
	DefaultHeight     = 1000.0
	DefaultLabelLimit = 20
	DefaultLocale     = "en"

	DefaultBackground = "#fff"
	DefaultGrid       = "#bbb"
	DefaultInactive   = "#ddd"
)

// Quadrant describes one angular sector for display.
type Quadrant struct {
	Name   string
	Symbol string
}

// Ring describes one radius band for display.
type Ring struct {
	Name  string
	Color string
}

// Colors is the chart palette.
type Colors struct {
	Background string
	Grid       string
	Inactive   string
}

// Legend configures the legend columns.
type Legend struct {
	// LabelLimit truncates labels longer than LabelLimit+3 runes.
	// Zero disables truncation.
	LabelLimit int

	// SplitMode selects how a quadrant's legend is split into two
	// columns: "fixed", "ring" or "entry".
	SplitMode string

	// NoMiddle keeps all quadrant legends in the left and right columns
	// even when the quadrant count is odd.
	NoMiddle bool
}

// Config is the complete input of one layout pass.
type Config struct {
	Title     string
	Width     float64
	Height    float64
	Quadrants []Quadrant
	Rings     []Ring
	Colors    Colors
	Entries   []Entry
	Legend    Legend

	// Radii overrides the outer ring radii. When empty the canonical
	// radii are used and Rings must have the same length.
	Radii []float64

	// Print selects the print layout: all entries coloured, numbered blips
	// and a balanced legend.
	Print bool

	// ZoomedQuadrant requests a single-quadrant view. Not supported.
	ZoomedQuadrant *int

	// Seed initializes the placement random source.
	Seed uint64

	// Locale is the BCP 47 tag used to collate labels.
	Locale string
}

// Inactive returns the colour used for inactive entries.
func (c *Config) Inactive() string {
	if c.Colors.Inactive == "" {
		return DefaultInactive
	}
	return c.Colors.Inactive
}

// EntryColor returns the colour of e: its ring colour when e is active or
// the chart is in print mode, the inactive colour otherwise.
func (c *Config) EntryColor(e *Entry) string {
	if (e.Active || c.Print) && e.Ring >= 0 && e.Ring < len(c.Rings) {
		return c.Rings[e.Ring].Color
	}
	return c.Inactive()
}
