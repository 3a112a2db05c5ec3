package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/jspcompile/internal/app"
	"github.com/specialistvlad/jspcompile/internal/config"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `jspcompile compiles a directory layout template into a graph.

A template has three sections, in this order:

  [regex]   named patterns:   num = "[0-9]+"   or   name = "positive" "negative"
  [nodes]   directory levels: rd = RD, shot = $num, seq = "[A-Z]+" [volume, owner: fred]
  [graph]   edges:            root -> rd -> shot

The graph is written to OUTPUT, or to stdout when OUTPUT is omitted.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		level      string
		logFormat  string
		format     string
		configPath string
		debug      bool
		strict     bool
		parsed     *app.Config
	)

	cmd := &cobra.Command{
		Use:           "jspcompile [flags] INPUT [OUTPUT]",
		Short:         "Compile a directory layout template into a graph.",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			if len(positional) == 0 {
				slog.Debug("No input path provided, printing usage and exiting.")
				return cmd.Usage()
			}

			flags := cmd.Flags()
			var overrides config.Settings
			if flags.Changed("level") {
				overrides.LogLevel = &level
			}
			if flags.Changed("log-format") {
				overrides.LogFormat = &logFormat
			}
			if flags.Changed("format") {
				overrides.OutputFormat = &format
			}
			if flags.Changed("strict") {
				overrides.Strict = &strict
			}
			if flags.Changed("debug") {
				overrides.Debug = &debug
			}
			if err := config.Default().Apply(&overrides).Validate(); err != nil {
				return err
			}
			slog.Debug("CLI parameter validation complete.")

			cfg := app.Config{
				InputPath:  positional[0],
				ConfigPath: configPath,
				Overrides:  overrides,
			}
			if len(positional) == 2 {
				cfg.OutputPath = positional[1]
			}

			validated, err := app.NewConfig(cfg)
			if err != nil {
				return err
			}
			parsed = validated
			return nil
		},
	}
	// cobra falls back to os.Args for a nil slice.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&level, "level", "l", defaults.LogLevel,
		"Log level: "+strings.Join(config.LogLevels, ", ")+".")
	flags.BoolVarP(&debug, "debug", "d", false, "Debug mode: at least debug level, with source locations.")
	flags.StringVarP(&configPath, "config", "c", "", "Settings file (.hcl or .toml).")
	flags.StringVarP(&format, "format", "f", defaults.OutputFormat, "Output format: hcl, json or yaml.")
	flags.StringVar(&logFormat, "log-format", defaults.LogFormat, "Log output format: text or json.")
	flags.BoolVar(&strict, "strict", false, "Fail when the template ends before the [graph] section.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if parsed == nil {
		// Help or usage was printed.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "input", parsed.InputPath, "output", parsed.OutputPath)
	return parsed, false, nil
}
