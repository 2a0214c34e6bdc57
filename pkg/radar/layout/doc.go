// Package layout computes a complete radar chart layout.
//
// [Build] runs one layout pass over a [radar.Config]:
//
//  1. Validate the configuration. Any fatal problem aborts before entries
//     are touched.
//  2. Build the sector model and drop entries whose quadrant or ring does
//     not exist, recording one diagnostic each.
//  3. Place every remaining entry at a random point of its segment and
//     colour it.
//  4. Bucket, sort and number the entries.
//  5. Resolve overlaps with a collision simulation, clipping every entry
//     back into its segment after each tick ([Resolve]).
//  6. Place the legend and compute the chart dimensions.
//
// Entries are decorated in place: the returned [Layout] points into
// cfg.Entries. A pass owns its [rng.Source]; concurrent passes must each
// use their own.
package layout
