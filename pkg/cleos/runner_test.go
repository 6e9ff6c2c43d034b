package cleos

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/eosfactory/eosf/pkg/errmap"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newShellRunner(t *testing.T) *Runner {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("no shell available")
	}
	return &Runner{Path: sh, Args: []string{"-c"}, Log: zaptest.NewLogger(t)}
}

func TestSplit(t *testing.T) {
	args, err := Split(`push action eosio.token transfer '["alice", "bob", "1.0000 EOS", ""]' -p alice`)
	require.NoError(t, err)
	require.Equal(t, []string{"push", "action", "eosio.token", "transfer",
		`["alice", "bob", "1.0000 EOS", ""]`, "-p", "alice"}, args)

	_, err = Split(`get table "unterminated`)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	r := newShellRunner(t)

	t.Run("success", func(t *testing.T) {
		res, err := r.Run(context.Background(), `echo '{"rows": [{"balance": "77.0000 EOS"}]}'`)
		require.NoError(t, err)
		require.False(t, res.Failed())
		require.Equal(t, 0, res.ExitCode)
		require.Equal(t, "", res.ErrMsg())

		var table struct {
			Rows []struct {
				Balance string `json:"balance"`
			} `json:"rows"`
		}
		require.NoError(t, res.JSON(&table))
		require.Equal(t, "77.0000 EOS", table.Rows[0].Balance)
	})
	t.Run("exit status", func(t *testing.T) {
		res, err := r.Run(context.Background(), "echo oops >&2; exit 3")
		require.NoError(t, err)
		require.True(t, res.Failed())
		require.Equal(t, 3, res.ExitCode)
		require.Equal(t, "oops", res.ErrMsg())
		require.ErrorIs(t, res.JSON(new(any)), ErrNoOutput)
	})
	t.Run("error diagnostic", func(t *testing.T) {
		res, err := r.Run(context.Background(), "echo 'Error 3120008: Key already exists' >&2")
		require.NoError(t, err)
		require.Equal(t, 0, res.ExitCode)
		require.True(t, res.Failed())
	})
	t.Run("warning", func(t *testing.T) {
		res, err := r.Run(context.Background(), "echo 'warning: transaction executed locally, but may not be confirmed' >&2")
		require.NoError(t, err)
		require.False(t, res.Failed())
	})
	t.Run("line", func(t *testing.T) {
		res, err := r.RunLine(context.Background(), `"echo hello"`)
		require.NoError(t, err)
		require.Equal(t, "hello\n", res.Out)
		require.Equal(t, []string{r.Path, "-c", "echo hello"}, res.Command)
	})
}

func TestRunEnv(t *testing.T) {
	r := newShellRunner(t)
	r.Env = []string{"EOSF_TEST_VALUE=42"}
	res, err := r.Run(context.Background(), "echo $EOSF_TEST_VALUE")
	require.NoError(t, err)
	require.Equal(t, "42\n", res.Out)
}

func TestRunTimeout(t *testing.T) {
	r := newShellRunner(t)
	r.Timeout = 50 * time.Millisecond
	_, err := r.Run(context.Background(), "sleep 5")
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRunErrors(t *testing.T) {
	r := &Runner{}
	_, err := r.Run(context.Background())
	require.ErrorIs(t, err, ErrEmptyCommand)

	r.Path = "/nonexistent/eosf/cleos"
	_, err = r.Run(context.Background(), "get", "info")
	require.Error(t, err)

	_, err = r.RunLine(context.Background(), `"`)
	require.Error(t, err)
}

func TestResultTarget(t *testing.T) {
	res := &Result{Command: []string{"cleos", "get", "account", "alice"}, Subject: "alice"}
	require.Equal(t, "alice", res.Name())
	require.Equal(t, "cleos get account alice", res.String())

	rec := errmap.Classify("oops")
	res.SetErrorRecord(rec)
	require.Same(t, rec, res.Record)
}
