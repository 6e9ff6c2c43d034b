package logger

import (
	"github.com/eosfactory/eosf/pkg/errmap"
	"go.uber.org/zap"
)

// Target is a result of a toolchain invocation that can carry an error.
type Target interface {
	// Failed returns true if the invocation ended with an error.
	Failed() bool
	// ErrMsg returns the raw diagnostic text.
	ErrMsg() string
}

// Named is implemented by targets relating to a named account or wallet. The
// name is used in classified error messages.
type Named interface {
	Name() string
}

// RecordHolder is implemented by targets that keep the classification
// result.
type RecordHolder interface {
	SetErrorRecord(*errmap.Record)
}

// ReportedError is returned by the error reporting methods when the Logger
// throws on errors.
type ReportedError struct {
	// Msg is the formatted error message.
	Msg string
	// Record is the classification result, nil for plain string reports.
	Record *errmap.Record
}

// Error implements the error interface.
func (e *ReportedError) Error() string {
	return e.Msg
}

// Unwrap returns the classified record.
func (e *ReportedError) Unwrap() error {
	if e.Record == nil {
		return nil
	}
	return e.Record
}

// Classify classifies the target diagnostic without printing anything. It
// returns nil for targets that haven't failed or failed with a benign
// diagnostic.
func (l *Logger) Classify(t Target) *errmap.Record {
	if t == nil || !t.Failed() {
		return nil
	}
	var subject string
	if n, ok := t.(Named); ok {
		subject = n.Name()
	}
	rec := l.classifier.ClassifyFor(subject, t.ErrMsg())
	if h, ok := t.(RecordHolder); ok {
		h.SetErrorRecord(rec)
	}
	return rec
}

// Error surfaces the target's error. Nothing is done if the target hasn't
// failed or its diagnostic is classified as benign, false is returned then.
// Otherwise the error is printed or, if the Logger throws on errors, returned
// as *ReportedError; true is returned in both cases.
func (l *Logger) Error(t Target) (bool, error) {
	rec := l.Classify(t)
	if rec == nil {
		if t != nil && t.Failed() {
			l.log.Debug("benign diagnostic suppressed", zap.String("text", t.ErrMsg()))
		}
		return false, nil
	}
	return l.surface(t.ErrMsg(), rec)
}

// ErrorString surfaces a plain error message. Unlike Error it doesn't
// classify the message, any non-empty string is an error.
func (l *Logger) ErrorString(msg string) (bool, error) {
	if msg == "" {
		return false, nil
	}
	return l.surface(msg, nil)
}

func (l *Logger) surface(raw string, rec *errmap.Record) (bool, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	ch := Error
	if l.testing {
		ch = ErrorTesting
	}
	msg := "ERROR:\n" + l.translate(raw)
	l.buffers[Error] = msg

	kind := "none"
	if rec != nil {
		rec.Msg = msg
		kind = rec.Kind.String()
	}
	l.log.Debug("toolchain error", zap.String("kind", kind), zap.Bool("throw", l.throw))

	if l.throw {
		return true, &ReportedError{Msg: msg, Record: rec}
	}
	l.write(l.render(ch.Style(), msg) + "\n\n")
	return true, nil
}
