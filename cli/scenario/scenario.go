package scenario

import (
	"fmt"

	"github.com/eosfactory/eosf/cli/options"
	"github.com/eosfactory/eosf/pkg/scenario"
	"github.com/urfave/cli"
)

// NewCommands returns 'scenario' command.
func NewCommands() []cli.Command {
	flags := []cli.Flag{options.Config, options.ConfigFile, options.Debug}
	flags = append(flags, options.Logger...)
	flags = append(flags, options.Cleos...)
	return []cli.Command{{
		Name:      "scenario",
		Usage:     "run toolchain scenarios",
		UsageText: "eosf scenario [flags] file.yml [file.yml...]",
		Description: `Runs scenario scripts one by one. A script is a YAML file with a list of
   steps, every step may print a comment, run a toolchain command and check
   its output and diagnostics:

     Steps:
       - Comment: Create an account.
         Run: create account eosio alice EOS6MRyAjQq8ud7h...
         Subject: alice
       - Run: get account carol
         ExpectError: AccountNotExist
       - Run: get table eosio.token alice accounts
         Expect: ["77.0000 EOS"]

   ExpectError is either 'none' or an error kind (AccountNotExist,
   WalletExists, WalletNotExist, InvalidPassword, LowRam, Generic). Without
   it, diagnostics are reported the way 'run' does. The command stops at the
   first failed step with exit code 1.
`,
		Action: runScenarios,
		Flags:  flags,
	}}
}

func runScenarios(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return cli.NewExitError("no scenario files given", 1)
	}
	scripts := make([]*scenario.Script, 0, len(ctx.Args()))
	for _, path := range ctx.Args() {
		s, err := scenario.LoadScript(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		scripts = append(scripts, s)
	}

	l, r, done, err := options.Setup(ctx)
	if err != nil {
		return err
	}
	defer done()

	gctx, cancel := options.GetSignalContext()
	defer cancel()

	runner := scenario.NewRunner(r, l, r.Log)
	for _, s := range scripts {
		rep, err := runner.Run(gctx, s)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		_, _ = fmt.Fprintf(ctx.App.Writer, "%s: %d steps passed, %d errors reported\n", s.Name, rep.Steps, rep.Errors)
	}
	return nil
}
