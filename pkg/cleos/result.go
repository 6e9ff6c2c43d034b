package cleos

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/eosfactory/eosf/pkg/errmap"
	"github.com/kballard/go-shellquote"
)

// errorMarker is a prefix the toolchain uses for diagnostics even when it
// exits successfully.
const errorMarker = "Error"

// ErrNoOutput is returned when JSON output is requested from an empty Result.
var ErrNoOutput = errors.New("command produced no output")

// Result is the outcome of a toolchain command.
type Result struct {
	// Command is the full command line that was run.
	Command []string
	// Out is the captured standard output.
	Out string
	// Err is the captured standard error with surrounding whitespace
	// trimmed.
	Err string
	// ExitCode is the process exit status.
	ExitCode int
	// Subject is the name of the account or wallet the command deals with.
	Subject string
	// Record is the classification of the error set by the reporter.
	Record *errmap.Record
}

// Failed returns true if the command exited with a non-zero status or
// printed an error diagnostic.
func (r *Result) Failed() bool {
	return r.ExitCode != 0 || strings.Contains(r.Err, errorMarker)
}

// ErrMsg returns the captured diagnostic.
func (r *Result) ErrMsg() string {
	return r.Err
}

// Name returns the Result subject.
func (r *Result) Name() string {
	return r.Subject
}

// SetErrorRecord stores the classification result.
func (r *Result) SetErrorRecord(rec *errmap.Record) {
	r.Record = rec
}

// String returns the command line that was run.
func (r *Result) String() string {
	return shellquote.Join(r.Command...)
}

// JSON decodes the standard output into v.
func (r *Result) JSON(v any) error {
	if strings.TrimSpace(r.Out) == "" {
		return ErrNoOutput
	}
	return json.Unmarshal([]byte(r.Out), v)
}
