// Package checker runs the epiccheck linter as a subprocess and captures its output.
package checker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// DefaultCommand is the checker executable looked up on PATH.
const DefaultCommand = "epiccheck"

// DefaultTimeout bounds a single checker run.
const DefaultTimeout = 5 * time.Minute

// waitDelay bounds how long Run waits for the output pipes to close after the
// checker exits or is killed. Descendants that inherited stdout can hold them
// open indefinitely.
const waitDelay = 2 * time.Second

// Checker invokes an external checker as `Command Args... <project>`.
type Checker struct {
	Command string
	Args    []string      // prefix arguments placed before the project path
	Timeout time.Duration // 0 disables the timeout
	Env     []string      // extra environment, appended to os.Environ()
}

// New creates a checker for command with optional prefix arguments.
func New(command string, args ...string) *Checker {
	if command == "" {
		command = DefaultCommand
	}
	return &Checker{
		Command: command,
		Args:    args,
		Timeout: DefaultTimeout,
	}
}

// Run holds the captured result of one checker invocation.
type Run struct {
	ProjectPath   string
	Output        string // standard output, the only text used downstream
	Stderr        string
	ExitSucceeded bool
	ExitCode      int
	Duration      time.Duration
}

// Run executes the checker against projectPath and waits for it to finish.
// A non-zero exit status is not an error: linters exit non-zero when they
// report violations. Failure to start or complete the process is returned
// as an *InvocationError.
func (c *Checker) Run(ctx context.Context, projectPath string) (*Run, error) {
	info, err := os.Stat(projectPath)
	if err != nil {
		return nil, c.invocationError(projectPath, err)
	}
	if !info.IsDir() {
		return nil, c.invocationError(projectPath, fmt.Errorf("%s is not a directory", projectPath))
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Args...)
	args = append(args, projectPath)

	cmd := exec.CommandContext(ctx, c.Command, args...)
	cmd.WaitDelay = waitDelay
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		// checker exited cleanly; a descendant still held its output
		err = nil
	}
	result := &Run{
		ProjectPath:   projectPath,
		Output:        stdout.String(),
		Stderr:        stderr.String(),
		ExitSucceeded: err == nil,
		Duration:      time.Since(start),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, c.invocationError(projectPath, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, c.invocationError(projectPath, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	return result, nil
}

func (c *Checker) invocationError(path string, err error) *InvocationError {
	return &InvocationError{Command: c.Command, Path: path, Err: err}
}
