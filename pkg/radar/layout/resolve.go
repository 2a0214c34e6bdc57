package layout

import (
	"context"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/force"
	"github.com/matzehuels/techradar/pkg/radar/geom"
	"github.com/matzehuels/techradar/pkg/radar/sector"
)

// Radar solver tuning.
const (
	CollideRadius   = 12
	CollideStrength = 0.85
	VelocityDecay   = 0.19
)

// Resolve pushes overlapping entries apart. After every solver tick each
// entry is clipped into its segment and the clipped position is written
// to both the node and the entry, so no tick ever leaves an entry outside
// its segment. opts are applied after the radar defaults.
func Resolve(ctx context.Context, model *sector.Model, entries []*radar.Entry, opts ...force.Option) (force.Result, error) {
	segs := make([]sector.Segment, len(entries))
	nodes := make([]force.Node, len(entries))
	for i, e := range entries {
		seg, err := model.Lookup(e.Key())
		if err != nil {
			return force.Result{}, errors.Wrap(errors.ErrCodeInternal, err, "segment for %q", e.Label)
		}
		segs[i] = seg
		nodes[i] = force.Node{X: e.X, Y: e.Y}
	}

	all := append([]force.Option{
		force.WithVelocityDecay(VelocityDecay),
		force.WithForce(force.Collide{Radius: CollideRadius, Strength: CollideStrength}),
	}, opts...)
	sim := force.New(nodes, all...)

	return sim.Run(ctx, func(_ int, ns []force.Node) error {
		for i := range ns {
			p := geom.Point{X: ns[i].X, Y: ns[i].Y}
			segs[i].Clip(&p)
			ns[i].X, ns[i].Y = p.X, p.Y
			entries[i].X, entries[i].Y = p.X, p.Y
		}
		return nil
	})
}
