package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenario(t *testing.T) {
	e := newExecutor(t, true)

	t.Run("no files", func(t *testing.T) {
		e.RunWithError(t, "eosf", "scenario", "--cleos", e.Cleos)
	})
	t.Run("missing file", func(t *testing.T) {
		e.RunWithError(t, "eosf", "scenario", "--cleos", e.Cleos, filepath.Join("testdata", "nonexistent.yml"))
	})
	t.Run("token", func(t *testing.T) {
		e.Run(t, "eosf", "scenario", "--cleos", e.Cleos, filepath.Join("testdata", "token.yml"))
		out := e.Out.String()
		require.Contains(t, out, "###  token:\nCreate the default wallet, the key imported by the\nprevious run is already there.\n")
		require.Contains(t, out, "wallet create --to-console\n")
		require.Contains(t, out, "77.0000 EOS")
		require.NotContains(t, out, "ERROR:")
		require.Contains(t, out, "token: 3 steps passed, 0 errors reported\n")
	})
	t.Run("printed error", func(t *testing.T) {
		e.Run(t, "eosf", "scenario", "--cleos", e.Cleos, filepath.Join("testdata", "lowram.yml"))
		out := e.Out.String()
		require.Contains(t, out, "ERROR:\nError 3080001: Account using more than allotted RAM usage")
		require.Contains(t, out, "lowram: 2 steps passed, 1 errors reported\n")
	})
	t.Run("thrown error", func(t *testing.T) {
		e.RunWithErrorCheck(t, "lowram: step 1 (push action eosio.token issue",
			"eosf", "scenario", "--cleos", e.Cleos, "--throw", filepath.Join("testdata", "lowram.yml"))
		require.NotContains(t, e.Out.String(), "steps passed")
	})
	t.Run("failed expectation", func(t *testing.T) {
		e.RunWithErrorCheck(t, "expected LowRam error, got none", "eosf", "scenario", "--cleos", e.Cleos,
			filepath.Join("testdata", "token.yml"), filepath.Join("testdata", "wrong.yml"))
		require.Contains(t, e.Out.String(), "token: 3 steps passed")
	})
}
