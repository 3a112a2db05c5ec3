package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/jspcompile/internal/ctxlog"
)

// parseLevel maps a level name to a slog level. Unknown names fall back to
// warn, the command line default.
func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "trace":
		return ctxlog.LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "err", "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances. debug forces
// at least debug level and adds source locations.
func newLogger(levelStr, formatStr string, outW io.Writer, debug bool) *slog.Logger {
	level := parseLevel(levelStr)
	if debug && level > slog.LevelDebug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= ctxlog.LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
