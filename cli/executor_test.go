package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eosfactory/eosf/cli/app"
	"github.com/eosfactory/eosf/cli/input"
	"github.com/eosfactory/eosf/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

const testVersion = "0.1.0-test"

// fakeCleos mimics the toolchain for the commands used in tests.
const fakeCleos = `#!/bin/sh
case "$*" in
"get info")
	echo '{"head_block_num": 42}' ;;
"get account carol")
	echo "Error 3010001: main.cpp:3008 unknown key" >&2
	exit 1 ;;
"wallet create"*)
	echo "Creating wallet: default"
	echo "Error 3120008: Key already exists" >&2 ;;
"push action"*)
	echo "Error 3080001: Account using more than allotted RAM usage, needs 2048 bytes has 512 bytes" >&2
	exit 1 ;;
"get table"*)
	echo '{"rows": [{"owner": "ibkp3xm1a2bc", "balance": "77.0000 EOS"}]}' ;;
*)
	echo "unknown command: $*" >&2
	exit 2 ;;
esac
`

// executor represents context for a test instance.
// It can be safely used in multiple tests, but not in parallel.
type executor struct {
	// CLI is a cli application to test.
	CLI *cli.App
	// Cleos is a path to the fake toolchain (can be empty).
	Cleos string
	// Out contains command output.
	Out *bytes.Buffer
	// Err contains command errors.
	Err *bytes.Buffer
	// In contains command input.
	In *bytes.Buffer
}

func newExecutor(t *testing.T, needCleos bool) *executor {
	config.Version = testVersion
	e := &executor{
		CLI: app.New(),
		Out: bytes.NewBuffer(nil),
		Err: bytes.NewBuffer(nil),
		In:  bytes.NewBuffer(nil),
	}
	e.CLI.Writer = e.Out
	e.CLI.ErrWriter = e.Err
	if needCleos {
		e.Cleos = newFakeCleos(t)
	}
	t.Cleanup(func() {
		e.Close(t)
	})
	return e
}

func newFakeCleos(t *testing.T) string {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}
	path := filepath.Join(t.TempDir(), "cleos")
	require.NoError(t, os.WriteFile(path, []byte(fakeCleos), 0o755))
	return path
}

func (e *executor) Close(t *testing.T) {
	input.Terminal = nil
}

func (e *executor) getNextLine(t *testing.T) string {
	line, err := e.Out.ReadString('\n')
	require.NoError(t, err)
	return strings.TrimSuffix(line, "\n")
}

func (e *executor) checkNextLine(t *testing.T, expected string) {
	line := e.getNextLine(t)
	e.checkLine(t, line, expected)
}

func (e *executor) checkLine(t *testing.T, line, expected string) {
	require.Regexp(t, expected, line)
}

func (e *executor) checkEOF(t *testing.T) {
	_, err := e.Out.ReadString('\n')
	require.True(t, errors.Is(err, io.EOF))
}

func setExitFunc() <-chan int {
	ch := make(chan int, 1)
	cli.OsExiter = func(code int) {
		ch <- code
	}
	return ch
}

func checkExit(t *testing.T, ch <-chan int, code int) {
	select {
	case c := <-ch:
		require.Equal(t, code, c)
	default:
		if code != 0 {
			require.Fail(t, "no exit was called")
		}
	}
}

// RunWithError runs command and checks that is exits with error.
func (e *executor) RunWithError(t *testing.T, args ...string) {
	ch := setExitFunc()
	require.Error(t, e.run(args...))
	checkExit(t, ch, 1)
}

// RunWithErrorCheck runs command and checks that is exits with error
// containing msg.
func (e *executor) RunWithErrorCheck(t *testing.T, msg string, args ...string) {
	ch := setExitFunc()
	err := e.run(args...)
	require.Error(t, err)
	require.Contains(t, err.Error(), msg)
	checkExit(t, ch, 1)
}

// Run runs command and checks that there were no errors.
func (e *executor) Run(t *testing.T, args ...string) {
	ch := setExitFunc()
	require.NoError(t, e.run(args...))
	checkExit(t, ch, 0)
}

func (e *executor) run(args ...string) error {
	e.Out.Reset()
	e.Err.Reset()
	input.Terminal = term.NewTerminal(input.ReadWriter{
		Reader: e.In,
		Writer: io.Discard,
	}, "")
	err := e.CLI.Run(args)
	input.Terminal = nil
	e.In.Reset()
	return err
}
