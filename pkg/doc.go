// Package pkg provides the libraries behind techradar.
//
// # Overview
//
// A technology radar is a circular chart split into quadrants (angular
// sectors) and rings (radius bands). Every entry sits in one quadrant and
// one ring. The pkg directory is organized into four areas:
//
//  1. [radar] - Domain types and the layout engine
//  2. [config] - Loading TOML, YAML and JSON configurations
//  3. [cache] - Reuse of rendered previews
//  4. [observability] - Hooks for metrics and tracing
//
// # Architecture
//
// The typical data flow through techradar:
//
//	radar.toml
//	     ↓
//	[config] package (decode, schema check, defaults)
//	     ↓
//	[radar/layout] package
//	     ├─ [radar/partition] drop bad entries, sort, number
//	     ├─ [radar/sector] random point inside each segment
//	     ├─ [radar/force] push overlapping blips apart, clip each tick
//	     └─ [radar/legend] balance legend columns, place them
//	     ↓
//	[radar/sink] package (JSON, DOT, SVG, PNG, PDF)
//
// # Quick Start
//
//	cfg, err := config.Load("radar.toml")
//	if err != nil {
//	    return err
//	}
//	l, err := layout.Build(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	data, err := sink.RenderJSON(l)
//
// Layouts are reproducible: the same configuration and seed always yield
// the same positions, IDs and legend.
package pkg
