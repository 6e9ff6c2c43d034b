/*
Package scenario runs scripted toolchain scenarios: narrated sequences of
commands with assertions on their output and errors.
*/
package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eosfactory/eosf/pkg/cleos"
	"github.com/eosfactory/eosf/pkg/errmap"
	"github.com/eosfactory/eosf/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Executor runs toolchain command lines.
type Executor interface {
	RunLine(ctx context.Context, line string) (*cleos.Result, error)
}

var _ Executor = (*cleos.Runner)(nil)

// ErrUnexpectedOutput is returned when the command output lacks an expected
// substring.
var ErrUnexpectedOutput = errors.New("output doesn't contain expected text")

// StepError describes the failed step.
type StepError struct {
	Script string
	// Step is the one-based step number.
	Step int
	// Command is the command line of the step, if any.
	Command string
	Err     error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("%s: step %d: %v", e.Script, e.Step, e.Err)
	}
	return fmt.Sprintf("%s: step %d (%s): %v", e.Script, e.Step, e.Command, e.Err)
}

// Unwrap returns the cause.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Report summarizes a script run.
type Report struct {
	// ID identifies the run in diagnostics.
	ID uuid.UUID
	// Steps is the number of steps completed.
	Steps int
	// Errors is the number of errors printed (but not thrown) along the way.
	Errors int
}

// Runner executes scripts.
type Runner struct {
	exec    Executor
	out     *logger.Logger
	log     *zap.Logger
	printed int
}

// NewRunner creates a script runner using the given executor and console
// logger. log can be nil.
func NewRunner(exec Executor, out *logger.Logger, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{exec: exec, out: out, log: log}
}

// Run executes the script steps in order and stops at the first failed one
// returning *StepError.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	rep := &Report{ID: uuid.New()}
	log := r.log.With(zap.String("script", s.Name), zap.Stringer("run", rep.ID))
	log.Info("script started", zap.Int("steps", len(s.Steps)))

	r.printed = 0
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return rep, &StepError{Script: s.Name, Step: i + 1, Command: st.Run, Err: err}
		}
		if err := r.step(ctx, s.Name, st); err != nil {
			rep.Errors = r.printed
			log.Info("script failed", zap.Int("step", i+1), zap.Error(err))
			return rep, &StepError{Script: s.Name, Step: i + 1, Command: st.Run, Err: err}
		}
		rep.Steps++
	}
	rep.Errors = r.printed
	log.Info("script finished", zap.Int("printed errors", rep.Errors))
	return rep, nil
}

func (r *Runner) step(ctx context.Context, name string, st Step) error {
	if st.Comment != "" {
		r.out.Comment(name, st.Comment)
	}
	if st.Run == "" {
		return nil
	}

	r.out.Debug(st.Run)
	res, err := r.exec.RunLine(ctx, st.Run)
	if err != nil {
		return err
	}
	res.Subject = st.Subject
	r.out.Trace(res.Out)

	switch st.ExpectError {
	case "":
		surfaced, err := r.out.Error(res)
		if err != nil {
			return err
		}
		if surfaced {
			r.printed++
		}
	case NoError:
		if rec := r.out.Classify(res); rec != nil {
			return fmt.Errorf("unexpected %s error: %s", rec.Kind, res.ErrMsg())
		}
	default:
		kind, err := errmap.ParseKind(st.ExpectError)
		if err != nil {
			return err
		}
		rec := r.out.Classify(res)
		if rec == nil {
			return fmt.Errorf("expected %s error, got none", kind)
		}
		if rec.Kind != kind {
			return fmt.Errorf("expected %s error, got %s: %s", kind, rec.Kind, res.ErrMsg())
		}
	}

	for _, exp := range st.Expect {
		if !strings.Contains(res.Out, exp) {
			return fmt.Errorf("%w: %q", ErrUnexpectedOutput, exp)
		}
	}
	return nil
}
