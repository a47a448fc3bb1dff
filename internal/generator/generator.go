// Package generator runs the report pipeline: invoke the checker, classify
// its output, render the HTML report and write it to disk.
package generator

import (
	"context"
	"log/slog"
	"time"

	"github.com/dkoosis/epiccheck-report/internal/console"
	"github.com/dkoosis/epiccheck-report/internal/progress"
	"github.com/dkoosis/epiccheck-report/pkg/checker"
	"github.com/dkoosis/epiccheck-report/pkg/htmlreport"
	"github.com/dkoosis/epiccheck-report/pkg/violation"
)

// Runner runs the external checker against a project directory.
type Runner interface {
	Run(ctx context.Context, projectPath string) (*checker.Run, error)
}

// Options configures a Generator.
type Options struct {
	Runner  Runner
	Console *console.Console
	Logger  *slog.Logger
	Clock   func() time.Time // defaults to time.Now
	Version string
}

// Generator produces one report per Generate call.
type Generator struct {
	runner  Runner
	console *console.Console
	logger  *slog.Logger
	clock   func() time.Time
	version string
}

// Result describes a generated report.
type Result struct {
	Run        *checker.Run
	Counts     violation.Counts
	Status     violation.Status
	OutputPath string
}

// New creates a Generator.
func New(opts Options) *Generator {
	g := &Generator{
		runner:  opts.Runner,
		console: opts.Console,
		logger:  opts.Logger,
		clock:   opts.Clock,
		version: opts.Version,
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	return g
}

// Generate runs the checker on projectPath and writes the HTML report to
// outputPath. Every failure is terminal; on error no report file is written.
func (g *Generator) Generate(ctx context.Context, projectPath, outputPath string) (*Result, error) {
	g.console.Step("Analyzing " + g.console.Path(projectPath) + "...")

	run, err := g.invoke(ctx, projectPath)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("checker finished",
		"path", projectPath,
		"exit_code", run.ExitCode,
		"duration", run.Duration,
		"stdout_bytes", len(run.Output),
		"stderr_bytes", len(run.Stderr))
	if !run.ExitSucceeded && run.Stderr != "" {
		g.logger.Debug("checker stderr", "stderr", run.Stderr)
	}

	counts := violation.Classify(run.Output)
	fields := htmlreport.NewFields(counts, htmlreport.Meta{
		ProjectPath: projectPath,
		GeneratedAt: g.clock(),
		Output:      run.Output,
		Version:     g.version,
	})

	doc, err := htmlreport.Render(fields)
	if err != nil {
		return nil, err
	}
	if err := htmlreport.WriteFile(outputPath, doc); err != nil {
		return nil, err
	}
	g.logger.Debug("report written", "path", outputPath, "bytes", len(doc))

	g.console.Summary(counts)
	g.console.Success("Report written: " + outputPath)

	return &Result{
		Run:        run,
		Counts:     counts,
		Status:     counts.Status(),
		OutputPath: outputPath,
	}, nil
}

func (g *Generator) invoke(ctx context.Context, projectPath string) (*checker.Run, error) {
	if !g.console.Interactive() {
		return g.runner.Run(ctx, projectPath)
	}
	var run *checker.Run
	err := progress.Run(ctx, g.console.Writer(), "Running checker", func(ctx context.Context) error {
		var err error
		run, err = g.runner.Run(ctx, projectPath)
		return err
	})
	return run, err
}
