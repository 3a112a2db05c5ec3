package config

import (
	"fmt"
	"strings"
)

// Model is the resolved application settings.
type Model struct {
	LogLevel     string
	LogFormat    string
	OutputFormat string
	Strict       bool
	Debug        bool
}

// Default returns the settings used when nothing else is configured.
func Default() Model {
	return Model{
		LogLevel:     "warn",
		LogFormat:    "text",
		OutputFormat: "hcl",
	}
}

// Settings is one layer of configuration. Nil fields are left untouched by
// Apply.
type Settings struct {
	LogLevel     *string
	LogFormat    *string
	OutputFormat *string
	Strict       *bool
	Debug        *bool
}

// Apply returns m with every field set in s overridden.
func (m Model) Apply(s *Settings) Model {
	if s == nil {
		return m
	}
	if s.LogLevel != nil {
		m.LogLevel = strings.ToLower(*s.LogLevel)
	}
	if s.LogFormat != nil {
		m.LogFormat = strings.ToLower(*s.LogFormat)
	}
	if s.OutputFormat != nil {
		m.OutputFormat = strings.ToLower(*s.OutputFormat)
	}
	if s.Strict != nil {
		m.Strict = *s.Strict
	}
	if s.Debug != nil {
		m.Debug = *s.Debug
	}
	return m
}

// LogLevels lists the accepted log level names. "warning" and "err" are
// accepted aliases.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// Validate checks the enumerated fields.
func (m Model) Validate() error {
	switch m.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "err", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be one of %s", m.LogLevel, strings.Join(LogLevels, ", "))
	}
	switch m.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", m.LogFormat)
	}
	switch m.OutputFormat {
	case "hcl", "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid output format %q: must be 'hcl', 'json' or 'yaml'", m.OutputFormat)
	}
	return nil
}
