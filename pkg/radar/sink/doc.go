// Package sink writes computed radar layouts to output formats.
//
// [RenderJSON] is the interchange format: dimensions, seed, quadrant and
// ring geometry, every placed entry with its presentation data, the
// placed legend and the diagnostics of dropped entries.
//
// [ToDOT] converts a layout into a Graphviz document with every node
// pinned at its computed position, and [RenderSVG] and [RenderPNG] run it
// through the neato engine for a quick visual check. [ToPDF] converts an
// SVG with rsvg-convert when it is installed.
package sink
