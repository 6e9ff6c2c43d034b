package run

import (
	"github.com/eosfactory/eosf/cli/cmdargs"
	"github.com/eosfactory/eosf/cli/options"
	"github.com/urfave/cli"
)

// NewCommands returns 'run' command.
func NewCommands() []cli.Command {
	flags := []cli.Flag{
		options.Config,
		options.ConfigFile,
		options.Debug,
		cli.StringFlag{
			Name:  "subject, n",
			Usage: "account or wallet name the command is about",
		},
	}
	flags = append(flags, options.Logger...)
	flags = append(flags, options.Cleos...)
	return []cli.Command{{
		Name:      "run",
		Usage:     "run a toolchain command reporting its errors",
		UsageText: "eosf run [flags] [--] command [args...]",
		Description: `Runs a single toolchain command, prints its output to the OUT channel
   and reports the diagnostics it produces. Benign diagnostics are swallowed,
   the others are printed to the ERROR channel or, with --throw, make the
   command fail with exit code 1.

   Flags must precede the toolchain command, use '--' to separate them when
   the command starts with a dash.
`,
		SkipArgReorder: true,
		Action:         runCommand,
		Flags:          flags,
	}}
}

func runCommand(ctx *cli.Context) error {
	args, exitErr := cmdargs.GetCommand(ctx)
	if exitErr != nil {
		return exitErr
	}
	l, r, done, err := options.Setup(ctx)
	if err != nil {
		return err
	}
	defer done()

	gctx, cancel := options.GetSignalContext()
	defer cancel()

	res, err := r.Run(gctx, args...)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	res.Subject = ctx.String("subject")

	l.Debug(res.String())
	l.Out(res.Out)
	if _, err := l.Error(res); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}
