package layout

import (
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/matzehuels/techradar/pkg/radar/force"
	"github.com/matzehuels/techradar/pkg/radar/legend"
	"github.com/matzehuels/techradar/pkg/radar/rng"
)

// Option configures a layout pass.
type Option func(*options)

type options struct {
	src       *rng.Source
	logger    *log.Logger
	placement legend.Placement
	simulate  bool
	simOpts   []force.Option
	locale    *language.Tag
}

// WithSource sets the random source. It overrides the configured seed.
func WithSource(src *rng.Source) Option { return func(o *options) { o.src = src } }

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }

// WithPlacement overrides the legend strategy chosen from the config.
func WithPlacement(p legend.Placement) Option { return func(o *options) { o.placement = p } }

// WithSimulation appends solver options to the radar defaults.
func WithSimulation(opts ...force.Option) Option {
	return func(o *options) { o.simOpts = append(o.simOpts, opts...) }
}

// WithoutSimulation skips overlap resolution. Entries keep their random
// start positions, clipped into their segments.
func WithoutSimulation() Option { return func(o *options) { o.simulate = false } }

// WithLocale overrides the configured collation language.
func WithLocale(tag language.Tag) Option { return func(o *options) { o.locale = &tag } }
