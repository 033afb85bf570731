// Package runner executes shell command strings and captures their output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/dongho-jung/cafeinstall/internal/platform"
)

// bufferPool reuses bytes.Buffer instances for captured stdout/stderr.
var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// Result captures the outcome of running a shell command.
type Result struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	// Err is set when the command could not be started or was interrupted.
	// A command that ran and exited non-zero has a nil Err.
	Err error
}

// Success reports whether the command ran and exited with status 0.
func (r Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// ErrorText returns the diagnostic text for a failed command: the captured
// stderr, or the launch error when nothing was captured.
func (r Result) ErrorText() string {
	text := strings.TrimSpace(r.Stderr)
	if text == "" && r.Err != nil {
		return r.Err.Error()
	}
	return text
}

// Runner defines the interface for running shell command strings.
type Runner interface {
	// Run executes command through the platform shell and blocks until it exits.
	Run(ctx context.Context, command string) Result
}

// shellRunner implements the Runner interface with os/exec.
type shellRunner struct {
	shell []string
	dir   string
}

// Compile-time check that shellRunner implements Runner interface.
var _ Runner = (*shellRunner)(nil)

// New creates a Runner that executes commands in dir using the shell of osType.
func New(osType platform.OS, dir string) Runner {
	return &shellRunner{
		shell: Shell(osType),
		dir:   dir,
	}
}

// Shell returns the shell invocation prefix for an OS classification.
func Shell(osType platform.OS) []string {
	if osType == platform.Windows {
		return []string{"cmd", "/C"}
	}
	return []string{"sh", "-c"}
}

func (r *shellRunner) Run(ctx context.Context, command string) Result {
	start := time.Now()

	args := append(append([]string{}, r.shell[1:]...), command)
	cmd := exec.CommandContext(ctx, r.shell[0], args...)
	if r.dir != "" {
		cmd.Dir = r.dir
	}

	stdout := bufferPool.Get().(*bytes.Buffer)
	stderr := bufferPool.Get().(*bytes.Buffer)
	stdout.Reset()
	stderr.Reset()
	defer bufferPool.Put(stdout)
	defer bufferPool.Put(stderr)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	result := Result{
		Command:  command,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err == nil {
		return result
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		result.Err = ctxErr
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result
	}

	result.ExitCode = -1
	result.Err = err
	return result
}
