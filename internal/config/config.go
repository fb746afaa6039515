// Package config loads and saves the defaults file: starting unit and
// value, color and log preferences.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"valuestep/internal/value"
)

const (
	// AppDir is the directory under the user config dir.
	AppDir = "valuestep"
	// FileName is the defaults file inside AppDir.
	FileName = "config.yaml"
)

// Config mirrors the YAML file. Value is kept loose so both `value: 12.5`
// and `value: "12,5"` work; use StartValue to read it.
type Config struct {
	Unit    string `yaml:"unit,omitempty"`
	Value   any    `yaml:"value,omitempty"`
	NoColor bool   `yaml:"no_color,omitempty"`
	LogFile string `yaml:"log_file,omitempty"`
}

// Default returns the built-in defaults: 1 in percent.
func Default() Config {
	return Config{Unit: value.Percent.String(), Value: 1.0}
}

// DefaultPath resolves the defaults file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, AppDir, FileName), nil
}

// Load reads path. A missing file yields Default() when optional is true
// and an error otherwise.
func Load(path string, optional bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config YAML: %w", err)
	}
	if _, err := c.StartUnit(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := c.StartValue(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// StartUnit parses Unit, defaulting to percent when empty.
func (c Config) StartUnit() (value.Unit, error) {
	if c.Unit == "" {
		return value.Percent, nil
	}
	return value.ParseUnit(c.Unit)
}

// StartValue returns Value as a number. Strings go through the same
// extraction as typed text, so "12,5" reads as 12.5.
func (c Config) StartValue() (float64, error) {
	switch v := c.Value.(type) {
	case nil:
		return 1, nil
	case string:
		n, ok := value.Extract(v)
		if !ok {
			return 0, fmt.Errorf("value %q is not a number", v)
		}
		return n, nil
	default:
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, fmt.Errorf("value: %w", err)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("value %v is not a finite number", n)
		}
		return n, nil
	}
}

// Save writes c to path, creating the parent directory.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
