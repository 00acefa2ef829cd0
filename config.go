package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/nsplint/internal/numeral"
)

// Config is the external configuration of the linter. Keys missing from the
// file keep their stock values.
type Config struct {
	Widths numeral.Widths `yaml:"widths"`
}

// DefaultConfig returns the configuration with stock group widths.
func DefaultConfig() Config {
	return Config{
		Widths: numeral.DefaultWidths(),
	}
}

// LoadConfig reads a YAML configuration file. Unknown keys are rejected, a
// typo must not silently fall back to the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Widths.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
