package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/eosfactory/eosf/cli/classify"
	"github.com/eosfactory/eosf/cli/run"
	"github.com/eosfactory/eosf/cli/scenario"
	"github.com/eosfactory/eosf/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "eosf\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates an eosf instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "eosf"
	ctl.Version = config.Version
	ctl.Usage = "EOSIO toolchain driver with classified diagnostics"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, run.NewCommands()...)
	ctl.Commands = append(ctl.Commands, scenario.NewCommands()...)
	ctl.Commands = append(ctl.Commands, classify.NewCommands()...)
	return ctl
}
