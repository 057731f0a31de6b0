package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths []string // documents: files or directories

	OutputPath   string // empty means the App's output writer
	OutputFormat string // "hcl" or "yaml"; derived from OutputPath when empty
	StopAtFeeds  bool

	LogFormat string
	LogLevel  string
}

// NewConfig checks required fields and fills in derived defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one document path is required")
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = formatFromPath(cfg.OutputPath)
	}
	cfg.OutputFormat = strings.ToLower(cfg.OutputFormat)
	switch cfg.OutputFormat {
	case "hcl", "yaml":
	default:
		return nil, fmt.Errorf("invalid output format %q: must be 'hcl' or 'yaml'", cfg.OutputFormat)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}

func formatFromPath(path string) string {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "hcl"
	}
}
