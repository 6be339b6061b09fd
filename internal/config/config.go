// Package config loads knotgrid CLI settings from an optional TOML file.
//
// Precedence, lowest first: Default, the config file, explicit flags.
//
//	workers = 8   # rows hashed concurrently
//	rows    = 16  # render window height
//	cols    = 64  # render window width
//	verbose = true
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appName  = "knotgrid"
	fileName = "config.toml"
)

// ErrInvalid is returned for config values outside their allowed range
// or for unknown keys.
var ErrInvalid = errors.New("config: invalid value")

// Config holds CLI defaults.
type Config struct {
	Workers int  `toml:"workers"`
	Rows    int  `toml:"rows"`
	Cols    int  `toml:"cols"`
	Verbose bool `toml:"verbose"`
}

// Default returns sequential hashing and an 8×8 render window.
func Default() Config {
	return Config{
		Workers: 1,
		Rows:    8,
		Cols:    8,
	}
}

// Validate reports ErrInvalid for non-positive sizes.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: rows and cols must be >= 1, got %dx%d", ErrInvalid, c.Cols, c.Rows)
	}
	return nil
}

// DefaultPath returns the config location using the XDG standard
// (~/.config/knotgrid/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load decodes path on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns Default when path does not exist.
func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}
