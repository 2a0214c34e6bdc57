package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/techradar/pkg/config"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/force"
	"github.com/matzehuels/techradar/pkg/radar/layout"
	"github.com/matzehuels/techradar/pkg/radar/legend"
	"github.com/matzehuels/techradar/pkg/radar/rng"
)

// radarFlags override configuration values from the command line. Only
// flags the user actually set are applied.
type radarFlags struct {
	seed       uint64
	splitMode  string
	print      bool
	noMiddle   bool
	labelLimit int
	locale     string

	maxTicks   int
	noSimulate bool
}

func (f *radarFlags) bind(cmd *cobra.Command, simulation bool) {
	fs := cmd.Flags()
	fs.Uint64Var(&f.seed, "seed", rng.DefaultSeed, "seed of the placement random source")
	fs.StringVar(&f.splitMode, "split-mode", string(legend.SplitFixed),
		"legend column split: "+strings.Join(splitModeNames(), ", "))
	fs.BoolVar(&f.print, "print", false, "use the print layout")
	fs.BoolVar(&f.noMiddle, "no-middle", false, "keep all legends in the left and right columns")
	fs.IntVar(&f.labelLimit, "label-limit", radar.DefaultLabelLimit, "truncate legend labels after this many runes (0 disables)")
	fs.StringVar(&f.locale, "locale", radar.DefaultLocale, "BCP 47 locale used to sort labels")
	if simulation {
		fs.IntVar(&f.maxTicks, "max-ticks", 0, "stop overlap resolution after this many ticks (0 runs to convergence)")
		fs.BoolVar(&f.noSimulate, "no-simulate", false, "skip overlap resolution")
	}

	_ = cmd.RegisterFlagCompletionFunc("split-mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return splitModeNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

func splitModeNames() []string {
	names := make([]string, len(legend.SplitModes))
	for i, m := range legend.SplitModes {
		names[i] = string(m)
	}
	return names
}

// apply writes the changed flags into cfg.
func (f *radarFlags) apply(cmd *cobra.Command, cfg *radar.Config) {
	fs := cmd.Flags()
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("split-mode") {
		cfg.Legend.SplitMode = f.splitMode
	}
	if fs.Changed("print") {
		cfg.Print = f.print
	}
	if fs.Changed("no-middle") {
		cfg.Legend.NoMiddle = f.noMiddle
	}
	if fs.Changed("label-limit") {
		cfg.Legend.LabelLimit = f.labelLimit
	}
	if fs.Changed("locale") {
		cfg.Locale = f.locale
	}
}

func (f *radarFlags) layoutOptions() []layout.Option {
	var opts []layout.Option
	switch {
	case f.noSimulate:
		opts = append(opts, layout.WithoutSimulation())
	case f.maxTicks > 0:
		opts = append(opts, layout.WithSimulation(force.WithMaxTicks(f.maxTicks)))
	}
	return opts
}

// pass is one configuration file laid out.
type pass struct {
	Input       string
	Config      *radar.Config
	Fingerprint string
	Layout      *layout.Layout
}

// loadConfig reads path and applies the command-line overrides.
func loadConfig(cmd *cobra.Command, path string, f *radarFlags) (*radar.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	f.apply(cmd, cfg)
	return cfg, nil
}

// runPass loads and lays out one configuration. Every pass owns its
// random source so concurrent passes stay reproducible.
func runPass(ctx context.Context, cmd *cobra.Command, path string, f *radarFlags, extra ...layout.Option) (*pass, error) {
	cfg, err := loadConfig(cmd, path, f)
	if err != nil {
		return nil, err
	}
	p := &pass{Input: path, Config: cfg, Fingerprint: config.Fingerprint(cfg)}

	logger := loggerFromContext(ctx).With("config", filepath.Base(path))
	opts := []layout.Option{
		layout.WithSource(rng.New(cfg.Seed)),
		layout.WithLogger(logger),
	}
	opts = append(opts, f.layoutOptions()...)
	opts = append(opts, extra...)

	prog := newProgress(logger)
	l, err := layout.Build(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Layout = l
	prog.done("laid out", "entries", len(l.Entries), "ticks", l.Simulation.Ticks, "converged", l.Simulation.Converged)
	return p, nil
}

// runPasses lays out every path concurrently. Results keep the order of
// paths; the first error cancels the remaining passes.
func runPasses(ctx context.Context, cmd *cobra.Command, paths []string, f *radarFlags, each func(context.Context, *pass) error) ([]*pass, error) {
	passes := make([]*pass, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			p, err := runPass(ctx, cmd, path, f)
			if err != nil {
				return err
			}
			if each != nil {
				if err := each(ctx, p); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			passes[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return passes, nil
}
