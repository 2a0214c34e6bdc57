// Package sector models the radar's partition into angular quadrants and
// concentric rings, and the segments formed by their intersection.
//
// # Quadrants
//
// Q quadrants split the full circle into arcs of 2π/Q. Bounds are kept as
// multiples of π: quadrant 0 ends at 1.5 (straight up in screen
// coordinates) and each following quadrant continues in the direction of
// decreasing angle, so quadrant 0 owns the arc immediately left of
// vertical.
//
// # Rings
//
// Rings are radius bands with strictly increasing outer radii. Ring 0
// starts at a small minimum radius that keeps entries off the center.
//
// # Segments
//
// A [Segment] is the cell of one quadrant and one ring. It places points
// with [Segment.RandomPoint] and forces points back inside with
// [Segment.Clip], keeping a margin to every boundary. Segments are cheap
// values derived from a [Model]; nothing holds on to them.
package sector
