// Package config loads surgelint.toml settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest surgelint looks for, walking up from the lint root.
const FileName = "surgelint.toml"

// Config is the on-disk configuration. Zero values defer to Default.
type Config struct {
	// MaxDiagnostics caps the number of reported findings, 0 means unlimited.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
	// Format is "pretty" or "json".
	Format string `toml:"format"`
	// PathMode is "auto", "absolute", "relative" or "basename".
	PathMode string `toml:"path_mode"`
	// WarningsAsErrors promotes warnings to the error exit code.
	WarningsAsErrors bool `toml:"warnings_as_errors"`
	// DisabledRules lists rule names to skip.
	DisabledRules []string `toml:"disabled_rules"`
	// Cache toggles the on-disk result cache.
	Cache bool `toml:"cache"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Color:    "auto",
		Format:   "pretty",
		PathMode: "auto",
		Cache:    true,
	}
}

// Load reads a manifest file. Unknown keys are an error so typos surface.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Discover walks up from dir looking for a manifest. When none exists it
// returns Default with an empty path.
func Discover(dir string) (Config, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			cfg, loadErr := Load(candidate)
			if loadErr != nil {
				return Config{}, "", loadErr
			}
			return cfg, candidate, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return Config{}, "", statErr
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), "", nil
		}
		dir = parent
	}
}

// Validate rejects values the renderers cannot handle.
func (c Config) Validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	switch c.Format {
	case "", "pretty", "json":
	default:
		return fmt.Errorf("invalid format %q", c.Format)
	}
	switch c.PathMode {
	case "", "auto", "absolute", "relative", "basename":
	default:
		return fmt.Errorf("invalid path mode %q", c.PathMode)
	}
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("max_diagnostics must be non-negative")
	}
	return nil
}
