package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/jspcompile/internal/ctxlog"
)

// tomlFile is the on-disk shape of a TOML settings file.
type tomlFile struct {
	LogLevel     *string `toml:"log_level"`
	LogFormat    *string `toml:"log_format"`
	OutputFormat *string `toml:"output_format"`
	Strict       *bool   `toml:"strict"`
	Debug        *bool   `toml:"debug"`
}

// TOMLLoader reads settings from a TOML file.
type TOMLLoader struct{}

// NewTOMLLoader creates a TOML settings loader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{}
}

// Load implements Loader. Keys the file sets but the model does not know are
// rejected.
func (l *TOMLLoader) Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading TOML settings.", "path", path)

	var f tomlFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in TOML settings %s: %s", path, strings.Join(keys, ", "))
	}

	logger.Debug("TOML settings loaded.", "path", path, "keys", len(md.Keys()))
	return &Settings{
		LogLevel:     f.LogLevel,
		LogFormat:    f.LogFormat,
		OutputFormat: f.OutputFormat,
		Strict:       f.Strict,
		Debug:        f.Debug,
	}, nil
}
