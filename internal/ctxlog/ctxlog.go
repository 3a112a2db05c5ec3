// Package ctxlog carries the request logger through context.Context so that
// the loader and the serializers log with the attributes set up by the app.
package ctxlog

import (
	"context"
	"log/slog"
)

// LevelTrace is below slog.LevelDebug. The loader logs every parsed record at
// this level.
const LevelTrace = slog.Level(-8)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
