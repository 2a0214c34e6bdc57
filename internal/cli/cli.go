package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/matzehuels/techradar/pkg/buildinfo"
	"github.com/matzehuels/techradar/pkg/cache"
	"github.com/matzehuels/techradar/pkg/observability"
	"github.com/matzehuels/techradar/pkg/observability/prom"
	"github.com/matzehuels/techradar/pkg/radar/sink"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "techradar"

// Log levels; LogInfo is the default and --verbose selects LogDebug.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Log file rotation limits.
const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stderr io.Writer

	verbose     bool
	logFormat   string
	logFile     string
	metricsFile string

	logSink  *lumberjack.Logger
	registry *prometheus.Registry
	cache    cache.Cache
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level, logFormatText),
		stderr: w,
		cache:  cache.NewNullCache(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Techradar lays out technology radar charts",
		Long: `Techradar places the entries of a technology radar inside their
quadrant and ring, resolves overlapping blips and balances the legend
columns. Layouts are written as JSON and can be previewed as DOT, SVG,
PNG or PDF.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.setup(cmd) },
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.logFormat, "log-format", logFormatText, "log format: text, json")
	pf.StringVar(&c.logFile, "log-file", "", "also write logs to a rotating file")
	pf.StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.legendCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup applies the persistent flags: logger level, format and file,
// and the metrics collector.
func (c *CLI) setup(cmd *cobra.Command) error {
	format, err := parseLogFormat(c.logFormat)
	if err != nil {
		return err
	}

	var w io.Writer = c.stderr
	if c.logFile != "" {
		c.logSink = &lumberjack.Logger{
			Filename:   c.logFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
		w = io.MultiWriter(c.stderr, c.logSink)
	}

	level := LogInfo
	if c.verbose {
		level = LogDebug
	}
	c.Logger = newLogger(w, level, format)

	if c.metricsFile != "" {
		c.registry = prometheus.NewRegistry()
		collector := prom.New(c.registry, prom.DefaultNamespace)
		observability.SetLayoutHooks(collector)
		observability.SetRenderHooks(collector)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// Close flushes the metrics file and closes the log file. It is safe to
// call when neither was configured.
func (c *CLI) Close() error {
	var errs []error
	if c.registry != nil {
		if err := prom.WriteTextfile(c.metricsFile, c.registry); err != nil {
			errs = append(errs, err)
		} else {
			c.Logger.Debug("metrics written", "path", c.metricsFile)
		}
		observability.Reset()
		c.registry = nil
	}
	if err := c.cache.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close cache: %w", err))
	}
	if c.logSink != nil {
		if err := c.logSink.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log file: %w", err))
		}
		c.logSink = nil
	}
	return stderrors.Join(errs...)
}

// =============================================================================
// Cache
// =============================================================================

// openCache switches to the on-disk preview cache unless disabled. A
// cache directory that cannot be created disables caching.
func (c *CLI) openCache(disabled bool) error {
	if disabled {
		return nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("preview cache disabled", "err", err)
		return nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("preview cache disabled", "dir", dir, "err", err)
		return nil
	}
	c.cache = fc
	return nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/techradar/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format list. JSON is always
// produced and leads the result.
func parseFormats(s string) ([]string, error) {
	out := []string{sink.FormatJSON}
	if s == "" {
		return out, nil
	}
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || f == sink.FormatJSON {
			continue
		}
		if !slices.Contains(sink.Formats, f) {
			return nil, fmt.Errorf("unknown format %q: want one of %s", f, strings.Join(sink.Formats, ", "))
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out, nil
}

