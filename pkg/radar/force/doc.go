// Package force is an iterative, velocity-Verlet style particle solver.
//
// A [Simulation] advances a set of [Node] values one tick at a time. Each
// tick cools the simulation temperature alpha toward zero, lets every
// registered [Force] adjust node velocities, then integrates velocities
// into positions with friction. The run ends once alpha drops below the
// minimum, after a tick cap, on [Simulation.Stop], on context
// cancellation, or when the tick callback returns an error.
//
// The callback sees the nodes after integration and may rewrite their
// positions; the next tick starts from whatever the callback left. This
// is how callers keep nodes inside a region.
//
// The only built-in force is [Collide], a soft circle separation with a
// uniform grid broad phase. All randomness comes from an explicit
// [rng.Source], so runs are reproducible.
package force
