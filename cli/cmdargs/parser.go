package cmdargs

import (
	"strings"

	"github.com/urfave/cli"
)

// CommandSeparator separates eosf flags from the toolchain command line.
const CommandSeparator = "--"

// EnsureNone returns an error if there are any positional arguments present.
// It can be used to check for them in commands that don't accept arguments.
func EnsureNone(ctx *cli.Context) *cli.ExitError {
	if ctx.Args().Present() {
		return cli.NewExitError("additional arguments given while this command expects none", 1)
	}
	return nil
}

// GetCommand returns the toolchain command line given as positional
// arguments. A leading separator is dropped, so that toolchain flags are not
// taken for eosf ones.
func GetCommand(ctx *cli.Context) ([]string, *cli.ExitError) {
	args := []string(ctx.Args())
	if len(args) > 0 && args[0] == CommandSeparator {
		args = args[1:]
	}
	if len(args) == 0 {
		return nil, cli.NewExitError("toolchain command is missing", 1)
	}
	return args, nil
}

// GetText returns positional arguments joined with spaces or an empty string
// if there are none.
func GetText(ctx *cli.Context) string {
	return strings.Join(ctx.Args(), " ")
}
