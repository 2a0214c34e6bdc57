// Package config loads radar configurations from TOML, YAML and JSON.
//
// All three formats decode into the same document shape, which is checked
// against an embedded JSON schema before it is converted into a
// [radar.Config] with defaults applied:
//
//	cfg, err := config.Load("radar.toml")
//	if err != nil {
//	    return err // INVALID_CONFIG, INVALID_FORMAT or FILE_NOT_FOUND
//	}
//
// Keys use snake_case in every format.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/rng"
)

//go:embed schema.json
var schemaJSON []byte

// Schema returns the JSON schema configuration documents are checked
// against.
func Schema() []byte { return bytes.Clone(schemaJSON) }

// Format is a configuration file syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported config extension %q: want .toml, .yaml, .yml or .json", filepath.Ext(path))
}

// File is the on-disk document.
type File struct {
	Title          string    `json:"title,omitempty"`
	Date           string    `json:"date,omitempty"`
	Width          float64   `json:"width,omitempty"`
	Height         float64   `json:"height,omitempty"`
	PrintLayout    bool      `json:"print_layout,omitempty"`
	ZoomedQuadrant *int      `json:"zoomed_quadrant,omitempty"`
	Seed           uint64    `json:"seed,omitempty"`
	Locale         string    `json:"locale,omitempty"`
	Radii          []float64 `json:"radii,omitempty"`
	Colors         Colors    `json:"colors"`
	Quadrants      []Named   `json:"quadrants"`
	Rings          []Ring    `json:"rings"`
	Legend         Legend    `json:"legend"`
	Entries        []Entry   `json:"entries"`
}

// Colors is the palette section.
type Colors struct {
	Background string `json:"background,omitempty"`
	Grid       string `json:"grid,omitempty"`
	Inactive   string `json:"inactive,omitempty"`
}

// Named is a quadrant.
type Named struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// Ring is a ring.
type Ring struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Legend is the legend section. A nil LabelLimit selects the default;
// an explicit zero disables truncation.
type Legend struct {
	LabelLimit *int   `json:"label_limit,omitempty"`
	SplitMode  string `json:"split_mode,omitempty"`
	NoMiddle   bool   `json:"no_middle,omitempty"`
}

// Entry is one radar entry.
type Entry struct {
	Quadrant int    `json:"quadrant"`
	Ring     int    `json:"ring"`
	Label    string `json:"label"`
	Active   bool   `json:"active,omitempty"`
	Moved    int    `json:"moved,omitempty"`
	Link     string `json:"link,omitempty"`
}

// Load reads, validates and converts the configuration at path.
func Load(path string) (*radar.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Config(), nil
}

// Parse decodes and validates a document in the given format.
func Parse(data []byte, format Format) (*File, error) {
	var doc any
	var err error
	switch format {
	case FormatTOML:
		var m map[string]any
		err = toml.Unmarshal(data, &m)
		doc = m
	case FormatYAML:
		var m map[string]any
		err = yaml.Unmarshal(data, &m)
		doc = m
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", format)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// Every format is validated and converted through its JSON form.
	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "normalize %s", format)
	}
	if err := validate(canonical); err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(canonical, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "convert %s", format)
	}
	return &f, nil
}

func validate(doc []byte) error {
	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "schema validation")
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New(errors.ErrCodeInvalidConfig, "schema violations:\n  %s", strings.Join(msgs, "\n  "))
}

// Config converts the document into a layout configuration with defaults
// applied.
func (f *File) Config() *radar.Config {
	cfg := &radar.Config{
		Title:          f.Title,
		Width:          f.Width,
		Height:         f.Height,
		Print:          f.PrintLayout,
		ZoomedQuadrant: f.ZoomedQuadrant,
		Seed:           f.Seed,
		Locale:         f.Locale,
		Radii:          f.Radii,
		Colors: radar.Colors{
			Background: f.Colors.Background,
			Grid:       f.Colors.Grid,
			Inactive:   f.Colors.Inactive,
		},
		Legend: radar.Legend{
			LabelLimit: radar.DefaultLabelLimit,
			SplitMode:  f.Legend.SplitMode,
			NoMiddle:   f.Legend.NoMiddle,
		},
	}
	if f.Legend.LabelLimit != nil {
		cfg.Legend.LabelLimit = *f.Legend.LabelLimit
	}
	applyDefaults(cfg)

	for _, q := range f.Quadrants {
		cfg.Quadrants = append(cfg.Quadrants, radar.Quadrant{Name: q.Name, Symbol: q.Symbol})
	}
	for _, r := range f.Rings {
		cfg.Rings = append(cfg.Rings, radar.Ring{Name: r.Name, Color: r.Color})
	}
	cfg.Entries = make([]radar.Entry, 0, len(f.Entries))
	for _, e := range f.Entries {
		cfg.Entries = append(cfg.Entries, radar.Entry{
			Quadrant: e.Quadrant,
			Ring:     e.Ring,
			Label:    e.Label,
			Active:   e.Active,
			Moved:    e.Moved,
			Link:     e.Link,
		})
	}
	return cfg
}

func applyDefaults(cfg *radar.Config) {
	if cfg.Width <= 0 {
		cfg.Width = radar.DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = radar.DefaultHeight
	}
	if cfg.Seed == 0 {
		cfg.Seed = rng.DefaultSeed
	}
	if cfg.Locale == "" {
		cfg.Locale = radar.DefaultLocale
	}
	if cfg.Legend.SplitMode == "" {
		cfg.Legend.SplitMode = "fixed"
	}
	if cfg.Colors.Background == "" {
		cfg.Colors.Background = radar.DefaultBackground
	}
	if cfg.Colors.Grid == "" {
		cfg.Colors.Grid = radar.DefaultGrid
	}
	if cfg.Colors.Inactive == "" {
		cfg.Colors.Inactive = radar.DefaultInactive
	}
}
