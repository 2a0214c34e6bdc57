package force

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/matzehuels/techradar/pkg/radar/rng"
)

// Solver defaults. The cooling schedule reaches DefaultAlphaMin after
// about 300 ticks.
const (
	DefaultAlphaMin      = 0.001
	DefaultVelocityDecay = 0.4
)

// DefaultAlphaDecay is the per-tick cooling rate.
var DefaultAlphaDecay = 1 - math.Pow(DefaultAlphaMin, 1.0/300)

// Node is a simulated particle.
type Node struct {
	X, Y   float64
	VX, VY float64
}

// Force adjusts node velocities once per tick.
type Force interface {
	Apply(nodes []Node, alpha float64, src *rng.Source)
}

// TickFunc is called after every tick with the tick number (from 1) and
// the current nodes. Returning an error ends the run with that error.
type TickFunc func(tick int, nodes []Node) error

// Result summarizes a finished run.
type Result struct {
	Ticks     int
	Alpha     float64
	Converged bool // alpha fell below the minimum
	Stopped   bool // Stop was called
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithVelocityDecay sets the fraction of velocity lost per tick.
func WithVelocityDecay(d float64) Option {
	return func(s *Simulation) { s.velocityDecay = d }
}

// WithForce registers a force. Forces apply in registration order.
func WithForce(f Force) Option {
	return func(s *Simulation) { s.forces = append(s.forces, f) }
}

// WithAlphaMin sets the temperature below which the run converges.
func WithAlphaMin(a float64) Option {
	return func(s *Simulation) { s.alphaMin = a }
}

// WithAlphaDecay sets the per-tick cooling rate.
func WithAlphaDecay(d float64) Option {
	return func(s *Simulation) { s.alphaDecay = d }
}

// WithMaxTicks caps the run length. Zero runs until convergence.
func WithMaxTicks(n int) Option {
	return func(s *Simulation) { s.maxTicks = n }
}

// WithSource sets the random source used to separate coincident nodes.
func WithSource(src *rng.Source) Option {
	return func(s *Simulation) { s.src = src }
}

// Simulation holds the solver state. It is not safe for concurrent use,
// except for Stop.
type Simulation struct {
	nodes         []Node
	forces        []Force
	alpha         float64
	alphaMin      float64
	alphaDecay    float64
	velocityDecay float64
	maxTicks      int
	src           *rng.Source
	stop          atomic.Bool
}

// New creates a simulation over nodes. The slice is used in place.
func New(nodes []Node, opts ...Option) *Simulation {
	s := &Simulation{
		nodes:         nodes,
		alpha:         1,
		alphaMin:      DefaultAlphaMin,
		alphaDecay:    DefaultAlphaDecay,
		velocityDecay: DefaultVelocityDecay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rng.New(rng.DefaultSeed)
	}
	return s
}

// Nodes returns the simulated nodes.
func (s *Simulation) Nodes() []Node { return s.nodes }

// Alpha returns the current temperature.
func (s *Simulation) Alpha() float64 { return s.alpha }

// Stop ends a running simulation before its next tick. It may be called
// from any goroutine.
func (s *Simulation) Stop() { s.stop.Store(true) }

// Tick advances the simulation by one step without calling back.
func (s *Simulation) Tick() {
	s.alpha += -s.alpha * s.alphaDecay
	for _, f := range s.forces {
		f.Apply(s.nodes, s.alpha, s.src)
	}
	keep := 1 - s.velocityDecay
	for i := range s.nodes {
		n := &s.nodes[i]
		n.VX *= keep
		n.VY *= keep
		n.X += n.VX
		n.Y += n.VY
	}
}

// Run ticks until the simulation converges or is stopped. onTick may be
// nil. A cancelled context returns the partial result with ctx.Err().
func (s *Simulation) Run(ctx context.Context, onTick TickFunc) (Result, error) {
	var res Result
	for {
		if err := ctx.Err(); err != nil {
			res.Alpha = s.alpha
			return res, err
		}
		if s.stop.Load() {
			res.Stopped = true
			break
		}
		if s.maxTicks > 0 && res.Ticks >= s.maxTicks {
			break
		}

		s.Tick()
		res.Ticks++
		if onTick != nil {
			if err := onTick(res.Ticks, s.nodes); err != nil {
				res.Alpha = s.alpha
				return res, err
			}
		}
		if s.alpha < s.alphaMin {
			res.Converged = true
			break
		}
	}
	res.Alpha = s.alpha
	return res, nil
}
