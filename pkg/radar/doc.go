// Package radar defines the input model of a technology radar chart: its
// quadrants, rings, colours, legend settings and entries.
//
// The layout engine lives in the subpackages and runs in stages:
//
//  1. Sector model ([sector]): quadrant and ring bounds, segments.
//  2. Partitioning ([partition]): drop invalid entries, bucket by segment,
//     sort by label and number entries.
//  3. Overlap resolution ([force] through [layout]): nudge entries apart
//     while clipping each one back into its segment on every step.
//  4. Legend ([legend]): balance each quadrant's legend into columns.
//  5. Sink ([sink]): export the decorated layout (JSON, DOT, SVG, PNG).
//
// [sector]: github.com/matzehuels/techradar/pkg/radar/sector
// [partition]: github.com/matzehuels/techradar/pkg/radar/partition
// [force]: github.com/matzehuels/techradar/pkg/radar/force
// [layout]: github.com/matzehuels/techradar/pkg/radar/layout
// [legend]: github.com/matzehuels/techradar/pkg/radar/legend
// [sink]: github.com/matzehuels/techradar/pkg/radar/sink
package radar
