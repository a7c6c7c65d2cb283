package app

import (
	"errors"
	"fmt"
	"slices"
)

// Output formats understood by App.Run.
const (
	FormatText     = "text"
	FormatDOT      = "dot"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatManifest = "manifest"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatDOT, FormatJSON, FormatYAML, FormatManifest}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPaths []string // .pp files or directories of them

	Format    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ManifestPaths) == 0 {
		return nil, errors.New("at least one manifest path is required")
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if !slices.Contains(Formats, cfg.Format) {
		return nil, fmt.Errorf("invalid format %q: must be one of %v", cfg.Format, Formats)
	}
	return &cfg, nil
}
