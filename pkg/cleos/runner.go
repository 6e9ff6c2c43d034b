/*
Package cleos runs commands of the external blockchain command-line
toolchain and captures their output for inspection and error reporting.
*/
package cleos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
)

// DefaultPath is the toolchain binary used if no path is configured.
const DefaultPath = "cleos"

// waitDelay bounds the time spent waiting for the output of a killed command
// whose children still hold the pipes open.
const waitDelay = 500 * time.Millisecond

// ErrEmptyCommand is returned when there is nothing to run.
var ErrEmptyCommand = errors.New("empty command")

// Runner executes toolchain commands.
type Runner struct {
	// Path is the toolchain binary, DefaultPath if empty.
	Path string
	// Args are prepended to every command (like "--url http://...").
	Args []string
	// Env is added to the process environment.
	Env []string
	// Timeout limits every command run, zero means no limit.
	Timeout time.Duration
	// Log receives run diagnostics, no logging if nil.
	Log *zap.Logger
}

// Split splits a command line into arguments the way a POSIX shell does.
func Split(line string) ([]string, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("can't parse command %q: %w", line, err)
	}
	return args, nil
}

// RunLine is the same as Run, but accepts the arguments as a single command
// line.
func (r *Runner) RunLine(ctx context.Context, line string) (*Result, error) {
	args, err := Split(line)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, args...)
}

// Run executes the toolchain with the given arguments. A command that exits
// with a non-zero status is not an error for Run, its failure is reflected
// in the Result. The error is returned only if the command can't be started
// or the context is done.
func (r *Runner) Run(ctx context.Context, args ...string) (*Result, error) {
	if len(args) == 0 && len(r.Args) == 0 {
		return nil, ErrEmptyCommand
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	path := r.Path
	if path == "" {
		path = DefaultPath
	}
	full := append(append([]string(nil), r.Args...), args...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, full...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	if len(r.Env) != 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("running command", zap.String("path", path), zap.Strings("args", full))

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s %s: %w", path, shellquote.Join(full...), ctxErr)
	}
	res := &Result{
		Command: append([]string{path}, full...),
		Out:     stdout.String(),
		Err:     strings.TrimSpace(stderr.String()),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("can't run %s: %w", path, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	log.Debug("command finished",
		zap.Int("exit code", res.ExitCode),
		zap.Bool("failed", res.Failed()))
	return res, nil
}
