// Package config loads the gosurf TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/philipparndt/gosurf/pkg/surface"
)

// ErrUnknownKey is returned for keys the configuration does not define.
var ErrUnknownKey = errors.New("unknown configuration key")

// File is the configuration file layout. Keys left out keep their defaults.
type File struct {
	LogLevel string         `toml:"log_level"`
	Unit     string         `toml:"unit"`
	Scale    float64        `toml:"scale"`
	Surface  surface.Config `toml:"surface"`
}

// Default returns the built-in configuration.
func Default() File {
	return File{
		LogLevel: "info",
		Unit:     "mm",
		Scale:    1,
		Surface:  surface.DefaultConfig(),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (File, error) {
	f := Default()
	md, err := toml.Decode(text, &f)
	if err != nil {
		return File{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return File{}, err
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
}

// Validate checks every value.
func (f File) Validate() error {
	if _, err := f.Level(); err != nil {
		return err
	}
	if f.Scale < 0 {
		return fmt.Errorf("scale %v is negative", f.Scale)
	}
	return f.Surface.Validate()
}

// Level parses LogLevel.
func (f File) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", f.LogLevel, err)
	}
	return level, nil
}

// Write encodes f as TOML.
func (f File) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
