package app

import (
	"errors"

	"github.com/specialistvlad/jspcompile/internal/config"
)

// Config holds everything the entrypoint knows before settings files are read.
type Config struct {
	InputPath  string
	OutputPath string // empty means the app's output writer
	ConfigPath string // optional settings file, .hcl or .toml

	// Overrides holds the values set explicitly on the command line. They
	// take precedence over the settings file.
	Overrides config.Settings
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
