// Package config loads jplot settings from TOML or YAML files with
// MODFLOAT_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/modfloat/arena"
	"github.com/joshuapare/modfloat/elem"
	"github.com/joshuapare/modfloat/modular"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MODFLOAT_"

// Config holds the complete application configuration.
type Config struct {
	Arena  ArenaConfig  `toml:"arena" yaml:"arena"`
	Tables TablesConfig `toml:"tables" yaml:"tables"`
	Series SeriesConfig `toml:"series" yaml:"series"`
	Grid   GridConfig   `toml:"grid" yaml:"grid"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// ArenaConfig sizes the coefficient pool.
type ArenaConfig struct {
	Capacity  int `toml:"capacity" yaml:"capacity"`
	MaxBlocks int `toml:"max_blocks" yaml:"max_blocks"`
}

// TablesConfig controls the elementary-function tables.
type TablesConfig struct {
	Chebyshev  int `toml:"chebyshev" yaml:"chebyshev"`
	TwoXDegree int `toml:"two_x_degree" yaml:"two_x_degree"`
}

// SeriesConfig controls the j q-expansion.
type SeriesConfig struct {
	Terms int `toml:"terms" yaml:"terms"`
}

// GridConfig is the tabulation grid.
type GridConfig struct {
	Size   int `toml:"size" yaml:"size"`
	Height int `toml:"height" yaml:"height"`
}

// OutputConfig describes where plot files go.
type OutputConfig struct {
	Path     string `toml:"path" yaml:"path"`
	Sync     bool   `toml:"sync" yaml:"sync"`
	FullSync bool   `toml:"full_sync" yaml:"full_sync"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Arena:  ArenaConfig{Capacity: 1 << 15, MaxBlocks: arena.DefaultMaxBlocks},
		Tables: TablesConfig{Chebyshev: elem.DefaultChebyshev, TwoXDegree: elem.DefaultTwoXDegree},
		Series: SeriesConfig{Terms: modular.DefaultTerms},
		Grid:   GridConfig{Size: modular.DefaultGridSize, Height: modular.DefaultGridHeight},
		Output: OutputConfig{Path: "jplot.bin", Sync: true},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		path = os.ExpandEnv(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := cfg.decode(data, filepath.Ext(path)); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return err
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return fmt.Errorf("unknown key %q", extra[0].String())
		}
		return nil
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported extension %q", ext)
	}
}

// applyEnv overrides fields from MODFLOAT_<SECTION>_<KEY> variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"ARENA_CAPACITY":      &c.Arena.Capacity,
		"ARENA_MAX_BLOCKS":    &c.Arena.MaxBlocks,
		"TABLES_CHEBYSHEV":    &c.Tables.Chebyshev,
		"TABLES_TWO_X_DEGREE": &c.Tables.TwoXDegree,
		"SERIES_TERMS":        &c.Series.Terms,
		"GRID_SIZE":           &c.Grid.Size,
		"GRID_HEIGHT":         &c.Grid.Height,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, key, v)
		}
		*dst = n
	}

	bools := map[string]*bool{
		"OUTPUT_SYNC":      &c.Output.Sync,
		"OUTPUT_FULL_SYNC": &c.Output.FullSync,
	}
	for key, dst := range bools {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, key, v)
		}
		*dst = b
	}

	strs := map[string]*string{
		"OUTPUT_PATH": &c.Output.Path,
		"LOG_LEVEL":   &c.Log.Level,
		"LOG_FORMAT":  &c.Log.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	return nil
}

// Validate checks every field, reporting the first offender.
func (c *Config) Validate() error {
	switch {
	case c.Arena.Capacity <= 0:
		return invalid("arena.capacity", c.Arena.Capacity)
	case c.Arena.MaxBlocks < 2:
		return invalid("arena.max_blocks", c.Arena.MaxBlocks)
	case c.Tables.TwoXDegree < 1:
		return invalid("tables.two_x_degree", c.Tables.TwoXDegree)
	case c.Tables.Chebyshev < max(c.Tables.TwoXDegree, elem.DefaultCosDegree):
		return invalid("tables.chebyshev", c.Tables.Chebyshev)
	case c.Series.Terms < 2:
		return invalid("series.terms", c.Series.Terms)
	}
	if err := c.GridSpec().Validate(); err != nil {
		return fmt.Errorf("%w: grid: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return invalid("log.format", c.Log.Format)
	}
	return nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalid, field, v)
}

// GridSpec returns the grid in the form modular expects.
func (c *Config) GridSpec() modular.Grid {
	return modular.Grid{Size: c.Grid.Size, Height: c.Grid.Height}
}

// TableOptions returns the elem options for these settings.
func (c *Config) TableOptions() elem.Options {
	opts := elem.DefaultOptions()
	opts.Chebyshev = c.Tables.Chebyshev
	opts.TwoXDegree = c.Tables.TwoXDegree
	return opts
}

// ArenaOptions returns the pool options for these settings.
func (c *Config) ArenaOptions() []arena.Option {
	return []arena.Option{arena.WithMaxBlocks(c.Arena.MaxBlocks)}
}
