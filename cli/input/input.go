package input

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Terminal is a terminal used for input. If `nil`, stdin is used.
var Terminal *term.Terminal

// ReadWriter combiner.
type ReadWriter struct {
	io.Reader
	io.Writer
}

// LineReader reads input line by line and provides the writer that output
// interleaved with the input must go through.
type LineReader interface {
	ReadLine() (string, error)
	Writer() io.Writer
	Close() error
}

type terminalReader struct {
	t   *term.Terminal
	out io.Writer
}

func (r terminalReader) ReadLine() (string, error) { return r.t.ReadLine() }
func (r terminalReader) Writer() io.Writer         { return r.out }
func (r terminalReader) Close() error              { return nil }

type readlineReader struct {
	l *readline.Instance
}

// ReadLine returns io.EOF on EOF and interrupt both.
func (r readlineReader) ReadLine() (string, error) {
	line, err := r.l.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (r readlineReader) Writer() io.Writer { return r.l.Stdout() }
func (r readlineReader) Close() error      { return r.l.Close() }

// NewLineReader returns a reader of Terminal if it's set, out is used for
// output then. Otherwise a readline instance reading stdin and writing to out
// is created. The reader must be closed when reading is over.
func NewLineReader(prompt string, out io.Writer) (LineReader, error) {
	return newLineReader(&readline.Config{
		Prompt: prompt,
		Stdin:  os.Stdin,
		Stdout: out,
	}, out)
}

func newLineReader(c *readline.Config, out io.Writer) (LineReader, error) {
	if Terminal != nil {
		Terminal.SetPrompt(c.Prompt)
		return terminalReader{t: Terminal, out: out}, nil
	}
	l, err := readline.NewEx(c)
	if err != nil {
		return nil, err
	}
	return readlineReader{l: l}, nil
}

// ReadAll reads all the input up to EOF.
func ReadAll() (string, error) {
	if Terminal == nil {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	Terminal.SetPrompt("")
	var lines []string
	for {
		line, err := Terminal.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
