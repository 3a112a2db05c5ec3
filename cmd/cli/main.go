package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/jspcompile/internal/app"
	"github.com/specialistvlad/jspcompile/internal/cli"
	"github.com/specialistvlad/jspcompile/internal/diag"
)

// main is the entrypoint for the jspcompile application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			fmt.Fprintln(os.Stderr, "Run 'jspcompile --help' for usage.")
			os.Exit(exitErr.Code)
		}
		if rerr := diag.Render(os.Stderr, err); rerr != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The graph goes to outW unless an output path is given; logs and
// help text go to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	jspApp, err := app.NewApp(outW, errW, appConfig)
	if err != nil {
		return err
	}
	return jspApp.Run(context.Background())
}
