// Package legend balances quadrant legends into display columns.
//
// Each quadrant's legend is a ring-ordered list of entry buckets. [Split]
// decides where the list breaks into a second column, [Columns] applies
// that decision, and a [Placement] strategy arranges all quadrant legends
// around the chart.
//
// # Split modes
//
//   - [SplitFixed]: break after ceil(R/2) whole rings regardless of size.
//   - [SplitRing]: break between whole rings at the point that best
//     balances the two column heights.
//   - [SplitEntry]: break inside a ring so the first column holds about
//     half the total height.
//
// Heights are measured in entry units: a ring header costs [RingOffset]
// units and an empty ring still costs one unit for its placeholder. The
// balancer is a greedy single pass, not an optimal partition.
//
// # Placements
//
// [Print] produces the balanced two-column print legend with an optional
// middle column for odd quadrant counts. [Flow] produces one flowing
// column per quadrant for interactive charts.
package legend
