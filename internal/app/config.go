package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DeckPath     string // a single deck file, or a directory of deck files
	ManifestPath string // HCL merge manifest; mutually exclusive with DeckPath

	HeaderLines int
	KeepHeader  bool
	LogFormat   string
	LogLevel    string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DeckPath == "" && cfg.ManifestPath == "" {
		return nil, errors.New("either a deck path or a manifest path is required")
	}
	if cfg.DeckPath != "" && cfg.ManifestPath != "" {
		return nil, errors.New("deck path and manifest path are mutually exclusive")
	}
	if cfg.HeaderLines < 0 {
		return nil, errors.New("header-lines must be non-negative")
	}
	return &cfg, nil
}
