package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/jspcompile/internal/config"
	"github.com/specialistvlad/jspcompile/internal/ctxlog"
)

// fileRoot is the top-level structure of a settings file. Unknown attributes
// are rejected by gohcl.
type fileRoot struct {
	LogLevel     *string `hcl:"log_level,optional"`
	LogFormat    *string `hcl:"log_format,optional"`
	OutputFormat *string `hcl:"output_format,optional"`
	Strict       *bool   `hcl:"strict,optional"`
	Debug        *bool   `hcl:"debug,optional"`
}

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates an HCL settings loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL settings.", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL settings %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL settings %s: %w", path, diags)
	}

	logger.Debug("HCL settings loaded.", "path", path)
	return &config.Settings{
		LogLevel:     root.LogLevel,
		LogFormat:    root.LogFormat,
		OutputFormat: root.OutputFormat,
		Strict:       root.Strict,
		Debug:        root.Debug,
	}, nil
}
