package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/jspcompile/internal/ctxlog"
	"github.com/specialistvlad/jspcompile/internal/emit"
	"github.com/specialistvlad/jspcompile/internal/inmemorytopology"
	"github.com/specialistvlad/jspcompile/internal/loader"
)

// Run compiles the input template and writes the serialized graph. A load
// failure is returned as the loader's *diag.LineError, wrapped.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath)

	format, err := emit.ParseFormat(a.settings.OutputFormat)
	if err != nil {
		return err
	}

	in, err := os.Open(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}
	defer in.Close()

	store := inmemorytopology.New()
	l := loader.New(ctx, store, loader.WithStrict(a.settings.Strict))
	if err := l.Load(ctx, in); err != nil {
		return fmt.Errorf("failed to load template %s: %w", a.config.InputPath, err)
	}
	if !l.State().Terminal() {
		a.logger.Warn("Template ended before the graph section.", "state", l.State().String(), "lines", l.Lines())
	}

	doc := emit.Build(ctx, store, l.Nodes())
	a.logger.Debug("Graph document built.", "nodes", len(doc.Nodes), "edges", len(doc.Edges))

	if err := a.write(format, doc); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) write(format emit.Format, doc *emit.Document) (err error) {
	var w io.Writer = a.outW
	if a.config.OutputPath != "" {
		f, createErr := os.Create(a.config.OutputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		w = f
	}

	if err := emit.Write(w, format, doc); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	a.logger.Info("Graph written.", "format", string(format), "output", a.outputName())
	return nil
}

func (a *App) outputName() string {
	if a.config.OutputPath == "" {
		return "stdout"
	}
	return a.config.OutputPath
}
