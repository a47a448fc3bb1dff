// epiccheck-report runs the epiccheck coding-style checker on a project and
// writes a self-contained HTML report of the violations it found.
//
// Usage:
//
//	epiccheck-report <project_path> [output_file]
//	epiccheck-report --checker python3 --checker-arg epiccheck ./my_project report.html
//
// Violation counts are severity keyword frequencies (FATAL, MAJOR, MINOR,
// INFO) in the checker's standard output, not parsed violation records.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dkoosis/epiccheck-report/internal/config"
	"github.com/dkoosis/epiccheck-report/internal/console"
	"github.com/dkoosis/epiccheck-report/internal/generator"
	"github.com/dkoosis/epiccheck-report/internal/version"
	"github.com/dkoosis/epiccheck-report/pkg/checker"
)

const usageLine = "Usage: epiccheck-report <project_path> [output_file]"

const longHelp = `epiccheck-report runs the epiccheck checker on a project directory, counts
FATAL, MAJOR, MINOR and INFO markers in its output and writes a static HTML report.
Counts are keyword frequencies, not parsed violation records.`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// usageError marks command-line misuse (exit code 2).
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "epiccheck-report: %v\n", uerr)
		fmt.Fprintln(stderr, usageLine)
		return 2
	}
	fmt.Fprintf(stderr, "epiccheck-report: %v\n", err)
	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags config.CliFlags

	cmd := &cobra.Command{
		Use:   "epiccheck-report <project_path> [output_file]",
		Short: "Generate an HTML report of epiccheck coding-style violations",
		Long:  longHelp,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return &usageError{errors.New("missing project path")}
			case len(args) > 2:
				return &usageError{fmt.Errorf("too many arguments: %d", len(args))}
			}
			return nil
		},
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			flags.CheckerSet = fs.Changed("checker")
			flags.CheckerArgsSet = fs.Changed("checker-arg")
			flags.TimeoutSet = fs.Changed("timeout")
			flags.ThemeSet = fs.Changed("theme")
			flags.NoColorSet = fs.Changed("no-color")
			flags.DebugSet = fs.Changed("debug")
			if len(args) > 1 {
				flags.Output, flags.OutputSet = args[1], true
			}
			return generate(cmd.Context(), args[0], flags, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("epiccheck-report {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	fs := cmd.Flags()
	fs.StringVar(&flags.ConfigPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&flags.Checker, "checker", checker.DefaultCommand, "Checker executable")
	fs.StringArrayVar(&flags.CheckerArgs, "checker-arg", nil, "Argument passed to the checker before the project path (repeatable)")
	fs.DurationVar(&flags.Timeout, "timeout", checker.DefaultTimeout, "Checker timeout (0 disables)")
	fs.StringVar(&flags.Theme, "theme", config.DefaultThemeName, "Console theme: default, orca, mono")
	fs.BoolVar(&flags.NoColor, "no-color", false, "Disable console colors")
	fs.BoolVar(&flags.Debug, "debug", false, "Enable debug logging on stderr")

	return cmd
}

func generate(ctx context.Context, projectPath string, flags config.CliFlags, stdout, stderr io.Writer) error {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if flags.DebugSet && flags.Debug {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.ResolveConfig(flags, logger)
	if err != nil {
		return err
	}
	if cfg.Debug {
		level.Set(slog.LevelDebug)
	}
	logger.Debug("resolved config",
		"config_file", cfg.ConfigFile,
		"checker", cfg.Checker,
		"checker_source", cfg.CheckerSource,
		"checker_args", cfg.CheckerArgs,
		"timeout", cfg.Timeout,
		"output", cfg.Output,
		"theme", cfg.Theme)

	chk := checker.New(cfg.Checker, cfg.CheckerArgs...)
	chk.Timeout = cfg.Timeout

	gen := generator.New(generator.Options{
		Runner:  chk,
		Console: console.New(stdout, console.Options{Theme: cfg.Theme, NoColor: cfg.NoColor}),
		Logger:  logger,
		Version: version.Version,
	})
	_, err = gen.Generate(ctx, projectPath, cfg.Output)
	return err
}
