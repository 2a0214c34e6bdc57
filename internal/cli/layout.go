package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/cache"
	"github.com/matzehuels/techradar/pkg/radar/sink"
)

// layoutCommand creates the layout command for computing radar layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags   radarFlags
		output  string
		formats string
		compact bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout <config>...",
		Short: "Compute radar layouts from configuration files",
		Long: `Compute radar layouts from configuration files.

Each configuration (TOML, YAML or JSON) is laid out independently: entries
are numbered, placed inside their segment, pushed apart until no blips
overlap, and the legend columns are balanced. The result is written to
<config>.layout.json next to the input.

Use --format to also write a preview rendered with Graphviz (dot, svg,
png) or a PDF converted from the SVG (requires rsvg-convert). Several
configurations are laid out concurrently. Rendered previews are cached
per configuration fingerprint.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) > 1 {
				return fmt.Errorf("--output needs exactly one config, got %d", len(args))
			}
			list, err := parseFormats(formats)
			if err != nil {
				return err
			}
			if err := c.openCache(noCache); err != nil {
				return err
			}
			return c.runLayout(cmd, args, &flags, output, list, compact)
		},
	}

	flags.bind(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <config>.layout.json)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "extra output formats: "+strings.Join(sink.Formats[1:], ", "))
	cmd.Flags().BoolVar(&compact, "compact", false, "write compact JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the preview cache")

	return cmd
}

// runLayout lays out every config and writes the requested formats.
func (c *CLI) runLayout(cmd *cobra.Command, inputs []string, flags *radarFlags, output string, formats []string, compact bool) error {
	ctx := cmd.Context()

	spinner := newSpinnerWithContext(ctx, c.stderr, fmt.Sprintf("Laying out %d radar(s)...", len(inputs)))
	spinner.Start()

	var (
		finished atomic.Int32
		mu       sync.Mutex
		written  = make(map[string][]string, len(inputs))
	)

	passes, err := runPasses(ctx, cmd, inputs, flags, func(ctx context.Context, p *pass) error {
		paths, err := c.writeOutputs(ctx, p, flags, output, formats, compact)
		if err != nil {
			return err
		}
		mu.Lock()
		written[p.Input] = paths
		mu.Unlock()
		spinner.SetMessage(fmt.Sprintf("Laid out %d/%d radar(s)...", finished.Add(1), len(inputs)))
		return nil
	})
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, p := range passes {
		printSuccess("Laid out %s", StyleHighlight.Render(p.Input))
		for _, path := range written[p.Input] {
			printFile(path)
		}
		printStats(len(p.Layout.Entries), len(p.Layout.Dropped), p.Layout.Simulation.Ticks, p.Layout.Simulation.Converged)
		for _, d := range p.Layout.Dropped {
			printWarning("%s", d)
		}
	}
	if len(passes) == 1 {
		printNewline()
		printNextStep("Inspect", appName+" inspect "+passes[0].Input)
	}
	return nil
}

// artifactTTL bounds how long rendered previews are reused.
const artifactTTL = 7 * 24 * time.Hour

// renderer produces the outputs of one pass, reusing cached previews.
type renderer struct {
	pass    *pass
	cache   cache.Cache
	flags   *radarFlags
	compact bool

	dot string
	svg []byte
}

// writeOutputs renders p in every format and returns the written paths.
func (c *CLI) writeOutputs(ctx context.Context, p *pass, flags *radarFlags, output string, formats []string, compact bool) ([]string, error) {
	jsonPath := output
	if jsonPath == "" {
		jsonPath = outputBase(p.Input) + ".layout.json"
	}
	base := strings.TrimSuffix(strings.TrimSuffix(jsonPath, ".json"), ".layout")

	r := &renderer{pass: p, cache: c.cache, flags: flags, compact: compact}
	var paths []string
	for _, format := range formats {
		path := base + "." + format
		if format == sink.FormatJSON {
			path = jsonPath
		}
		data, err := r.artifact(ctx, format)
		if err != nil {
			return paths, fmt.Errorf("render %s: %w", format, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// artifact returns the bytes of one format. Everything but the layout
// JSON is looked up in the cache first.
func (r *renderer) artifact(ctx context.Context, format string) ([]byte, error) {
	if format == sink.FormatJSON {
		opts := []sink.JSONOption{sink.WithFingerprint(r.pass.Fingerprint)}
		if r.compact {
			opts = append(opts, sink.WithCompact())
		}
		return sink.RenderJSON(r.pass.Layout, opts...)
	}

	logger := loggerFromContext(ctx)
	key := cache.ArtifactKey(r.pass.Fingerprint, cache.ArtifactKeyOpts{
		Format:   format,
		MaxTicks: r.flags.maxTicks,
		Simulate: !r.flags.noSimulate,
	})
	if data, ok, err := r.cache.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "format", format, "err", err)
	} else if ok {
		logger.Debug("cache hit", "config", r.pass.Input, "format", format)
		return data, nil
	}

	data, err := r.render(ctx, format)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, data, artifactTTL); err != nil {
		logger.Warn("cache write failed", "format", format, "err", err)
	}
	return data, nil
}

func (r *renderer) render(ctx context.Context, format string) ([]byte, error) {
	if r.dot == "" {
		r.dot = sink.ToDOT(r.pass.Layout)
	}
	switch format {
	case sink.FormatDOT:
		return []byte(r.dot), nil
	case sink.FormatPNG:
		return sink.RenderPNG(ctx, r.dot)
	case sink.FormatSVG, sink.FormatPDF:
		if r.svg == nil {
			svg, err := sink.RenderSVG(ctx, r.dot)
			if err != nil {
				return nil, err
			}
			r.svg = svg
		}
		if format == sink.FormatPDF {
			return sink.ToPDF(ctx, r.svg)
		}
		return r.svg, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// outputBase strips the config extension from input.
func outputBase(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}
