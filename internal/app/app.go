package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/jspcompile/internal/config"
	"github.com/specialistvlad/jspcompile/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings config.Model
}

// NewApp is the constructor for the main application. Logs go to logW; the
// compiled graph goes to outW unless the config names an output file.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	// Settings decide the final logger, so files are read with a provisional
	// one built from the command line alone.
	bootstrap := config.Default().Apply(&cfg.Overrides)
	ctx := ctxlog.WithLogger(context.Background(), newLogger(bootstrap.LogLevel, bootstrap.LogFormat, logW, bootstrap.Debug))

	settings, err := resolveSettings(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	logger := newLogger(settings.LogLevel, settings.LogFormat, logW, settings.Debug)
	logger.Debug("Logger configured successfully.",
		"level", settings.LogLevel,
		"format", settings.LogFormat,
		"output_format", settings.OutputFormat,
		"strict", settings.Strict,
	)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		settings: settings,
	}, nil
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() config.Model {
	return a.settings
}
