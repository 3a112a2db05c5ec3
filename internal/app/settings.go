package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/jspcompile/internal/config"
	"github.com/specialistvlad/jspcompile/internal/hcl"
)

// settingsLoader picks the config.Loader for a settings file by extension.
func settingsLoader(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".toml":
		return config.NewTOMLLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported settings file %q: want .hcl or .toml", path)
	}
}

// resolveSettings layers defaults, the optional settings file and the command
// line overrides, then validates the result.
func resolveSettings(ctx context.Context, cfg *Config) (config.Model, error) {
	m := config.Default()

	if cfg.ConfigPath != "" {
		loader, err := settingsLoader(cfg.ConfigPath)
		if err != nil {
			return config.Model{}, err
		}
		s, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return config.Model{}, err
		}
		m = m.Apply(s)
	}

	m = m.Apply(&cfg.Overrides)
	if err := m.Validate(); err != nil {
		return config.Model{}, err
	}
	return m, nil
}
