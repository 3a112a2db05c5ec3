package config

import (
	"context"
)

// Loader is the interface for a format-specific settings file loader.
type Loader interface {
	// Load reads one settings file and returns the values it sets.
	Load(ctx context.Context, path string) (*Settings, error)
}
