/*
Package logger implements console output of the toolchain test scripts.

Output goes to a set of named channels (see Channel), each having its own
style. A message is printed only if its channel is active or printing is
forced. The last message of the most used channels is kept for later
inspection, so that scripts can assert on what was traced.

The package also surfaces toolchain errors: raw diagnostics are classified
with errmap and are either printed or returned as errors depending on the
Logger options.
*/
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/eosfactory/eosf/pkg/errmap"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

// Options are the Logger settings.
type Options struct {
	// Channels is the set of active channels. DefaultChannels are used
	// if it's nil.
	Channels []Channel
	// ThrowOnError makes error reporting return errors instead of printing.
	ThrowOnError bool
	// TestingErrors switches errors to the less alarming ERROR_TESTING style.
	TestingErrors bool
	// Aliases substitute raw names (like generated account names) in every
	// message.
	Aliases map[string]string
	// NoColor disables styling.
	NoColor bool
	// Output is where messages are written to, os.Stdout by default.
	Output io.Writer
	// Classifier is used to classify diagnostics, the default one if nil.
	Classifier *errmap.Classifier
	// Log receives diagnostics of the Logger itself.
	Log *zap.Logger
}

// Logger routes messages to channels. It's safe for concurrent use, but it's
// intended to serve a single sequential script.
type Logger struct {
	lock sync.Mutex

	out        io.Writer
	renderer   *lipgloss.Renderer
	active     []Channel
	throw      bool
	testing    bool
	aliases    *strings.Replacer
	classifier *errmap.Classifier
	log        *zap.Logger
	buffers    map[Channel]string
}

// New creates a Logger with the given options.
func New(opts Options) *Logger {
	l := &Logger{
		out:        opts.Output,
		throw:      opts.ThrowOnError,
		testing:    opts.TestingErrors,
		aliases:    newAliasReplacer(opts.Aliases),
		classifier: opts.Classifier,
		log:        opts.Log,
		buffers:    make(map[Channel]string),
	}
	if l.out == nil {
		l.out = os.Stdout
	}
	if l.classifier == nil {
		l.classifier = new(errmap.Classifier)
	}
	if l.log == nil {
		l.log = zap.NewNop()
	}
	l.renderer = lipgloss.NewRenderer(l.out)
	if opts.NoColor {
		l.renderer.SetColorProfile(termenv.Ascii)
	}
	if opts.Channels != nil {
		l.setChannels(opts.Channels)
	} else {
		l.setChannels(DefaultChannels)
	}
	return l
}

// SetColorProfile overrides the color profile detected for the output.
func (l *Logger) SetColorProfile(p termenv.Profile) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.renderer.SetColorProfile(p)
}

// SetChannels replaces the set of active channels.
func (l *Logger) SetChannels(chs ...Channel) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.setChannels(chs)
}

func (l *Logger) setChannels(chs []Channel) {
	l.active = l.active[:0]
	for _, ch := range chs {
		l.active = appendUnique(l.active, ch)
	}
}

// Channels returns a copy of the active channels set.
func (l *Logger) Channels() []Channel {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]Channel(nil), l.active...)
}

// IsActive checks whether the channel is active.
func (l *Logger) IsActive(ch Channel) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.isActive(ch)
}

func (l *Logger) isActive(ch Channel) bool {
	for _, c := range l.active {
		if c == ch {
			return true
		}
	}
	return false
}

// SetThrowOnError makes error reporting return errors (true) or print
// them (false).
func (l *Logger) SetThrowOnError(b bool) {
	l.lock.Lock()
	l.throw = b
	l.lock.Unlock()
}

// SetTestingErrors selects the ERROR_TESTING (true) or ERROR (false) style
// for errors.
func (l *Logger) SetTestingErrors(b bool) {
	l.lock.Lock()
	l.testing = b
	l.lock.Unlock()
}

// Buffer returns the last message passed to the channel, whether it was
// printed or not.
func (l *Logger) Buffer(ch Channel) string {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.buffers[ch]
}

// Emit prints the message to the channel if the message is not empty and
// the channel is active or force is set. It returns true if anything was
// printed.
func (l *Logger) Emit(ch Channel, msg string, force bool) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.emit(ch, l.translate(msg), force)
}

// emit expects translated message.
func (l *Logger) emit(ch Channel, msg string, force bool) bool {
	switch ch {
	case Trace, Out, OutInfo, Error, Debug:
		l.buffers[ch] = msg
	}
	if msg == "" || !(force || l.isActive(ch)) {
		return false
	}
	if ch == Out {
		l.write(msg + "\n\n")
	} else {
		l.write(l.render(ch.Style(), msg) + "\n")
	}
	return true
}

// Trace prints the message to the TRACE channel.
func (l *Logger) Trace(msg string) bool {
	return l.Emit(Trace, msg, false)
}

// Info prints the message to the INFO channel.
func (l *Logger) Info(msg string) bool {
	return l.Emit(Info, msg, false)
}

// Debug prints the message to the DEBUG channel.
func (l *Logger) Debug(msg string) bool {
	return l.Emit(Debug, msg, false)
}

// OutInfo prints the message to the OUT_INFO channel.
func (l *Logger) OutInfo(msg string) bool {
	return l.Emit(OutInfo, msg, false)
}

// Out prints the message to the OUT channel and echoes it to OUT_INFO
// whatever the OUT result is.
func (l *Logger) Out(msg string) bool {
	return l.OutForce(msg, false)
}

// OutForce is Out with the force option passed to both OUT and OUT_INFO.
func (l *Logger) OutForce(msg string, force bool) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	msg = l.translate(msg)
	printed := l.emit(Out, msg, force)
	return l.emit(OutInfo, msg, force) || printed
}

// TraceInfo prints the message to TRACE if it's active and to INFO otherwise.
func (l *Logger) TraceInfo(msg string, force bool) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	msg = l.translate(msg)
	if msg != "" && l.isActive(Trace) {
		return l.emit(Trace, msg, force)
	}
	return l.emit(Info, msg, force)
}

// Comment prints a narration in the COMMENT style. It's not gated by the
// active channels. The label (usually the name of the script or test)
// heads the message.
func (l *Logger) Comment(label, msg string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	header := "\n###\n"
	if label != "" {
		header = "\n###  " + label + ":\n"
	}
	l.write(l.render(Comment.Style(), header+l.translate(msg)+"\n") + "\n")
}

// Scenario is an alias of Comment.
func (l *Logger) Scenario(label, msg string) {
	l.Comment(label, msg)
}

func (l *Logger) translate(msg string) string {
	msg = Heredoc(msg)
	if l.aliases != nil {
		msg = l.aliases.Replace(msg)
	}
	return msg
}

// Render returns msg styled the way the channel ch prints it, whether or not
// the channel is active.
func (l *Logger) Render(ch Channel, msg string) string {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.render(ch.Style(), msg)
}

// render applies the style to every line separately, so that lines are not
// padded to the same width.
func (l *Logger) render(st Style, msg string) string {
	if st == (Style{}) {
		return msg
	}
	s := l.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if st.Foreground != "" {
		s = s.Foreground(st.Foreground)
	}
	if st.Background != "" {
		s = s.Background(st.Background)
	}
	if st.Bold {
		s = s.Bold(true)
	}
	lines := strings.Split(msg, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = s.Render(lines[i])
		}
	}
	return strings.Join(lines, "\n")
}

func (l *Logger) write(s string) {
	if _, err := io.WriteString(l.out, s); err != nil {
		l.log.Warn("failed to write message", zap.Error(err))
	}
}
