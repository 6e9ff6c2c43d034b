package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func setTerminal(t *testing.T, in string) {
	Terminal = term.NewTerminal(ReadWriter{
		Reader: bytes.NewBufferString(in),
		Writer: io.Discard,
	}, "")
	t.Cleanup(func() { Terminal = nil })
}

func TestReadAll(t *testing.T) {
	setTerminal(t, "first line\rsecond line\r")
	s, err := ReadAll()
	require.NoError(t, err)
	require.Equal(t, "first line\nsecond line", s)
}

func TestLineReader(t *testing.T) {
	setTerminal(t, "one\rtwo\r")
	out := bytes.NewBuffer(nil)
	r, err := NewLineReader("> ", out)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()
	require.Equal(t, out, r.Writer())

	line, err := r.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "one", line)
	line, err = r.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "two", line)
	_, err = r.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadlineReader(t *testing.T) {
	out := bytes.NewBuffer(nil)
	r, err := newLineReader(&readline.Config{
		Stdin:          io.NopCloser(strings.NewReader("one\n")),
		Stdout:         out,
		Stderr:         io.Discard,
		FuncIsTerminal: func() bool { return false },
	}, out)
	require.NoError(t, err)
	defer r.Close()
	require.NotNil(t, r.Writer())

	line, err := r.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "one", line)
	_, err = r.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}
