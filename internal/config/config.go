// Package config loads mazegen's user defaults.
//
// Values are layered, later sources winning:
//
//  1. built-in defaults
//  2. $XDG_CONFIG_HOME/mazegen/config.toml (or the --config path)
//  3. a .env file in the working directory
//  4. MAZEGEN_* environment variables
//
// Command-line flags are applied on top by the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
)

const (
	appName  = "mazegen"
	fileName = "config.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "MAZEGEN_"
)

// Config holds user defaults for generation.
type Config struct {
	Width  int                `toml:"width"`
	Height int                `toml:"height"`
	Scale  int                `toml:"scale"`
	Format string             `toml:"format"`
	Seed   uint64             `toml:"seed"`
	Colors render.PaletteSpec `toml:"colors"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Width:  pipeline.DefaultWidth,
		Height: pipeline.DefaultHeight,
		Scale:  pipeline.DefaultScale,
		Format: pipeline.DefaultFormat,
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/mazegen/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load builds a Config from defaults, the config file, .env and the
// environment. An empty path means DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.loadFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := loadDotenv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, mustExist bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !mustExist {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "config file %s", path)
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return nil
}

// loadDotenv populates the process environment from path. Variables that are
// already set are left alone.
func loadDotenv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", path)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WIDTH", &c.Width},
		{"HEIGHT", &c.Height},
		{"SCALE", &c.Scale},
	}
	for _, f := range ints {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s%s", EnvPrefix, f.key)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%sSEED", EnvPrefix)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvPrefix + "FORMAT"); ok && v != "" {
		c.Format = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Validate checks the merged values.
func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.New(errors.ErrCodeInvalidDimension,
			"configured size must be positive, got %dx%d", c.Width, c.Height)
	}
	if err := errors.ValidateScale(c.Scale); err != nil {
		return err
	}
	if err := render.ValidateFormat(c.Format); err != nil {
		return err
	}
	_, err := c.Palette()
	return err
}

// Palette resolves the configured colors.
func (c *Config) Palette() (maze.Palette, error) {
	p, err := render.ParsePalette(c.Colors)
	if err != nil {
		return maze.Palette{}, fmt.Errorf("config colors: %w", err)
	}
	return p, nil
}
