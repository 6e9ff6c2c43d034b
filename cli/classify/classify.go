package classify

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eosfactory/eosf/cli/cmdargs"
	"github.com/eosfactory/eosf/cli/input"
	"github.com/eosfactory/eosf/cli/options"
	"github.com/eosfactory/eosf/pkg/errmap"
	"github.com/eosfactory/eosf/pkg/logger"
	"github.com/urfave/cli"
)

// NewCommands returns 'classify' and 'channels' commands.
func NewCommands() []cli.Command {
	channelsFlags := append([]cli.Flag{options.Config, options.ConfigFile}, options.Logger...)
	return []cli.Command{
		{
			Name:      "classify",
			Usage:     "classify toolchain diagnostics",
			UsageText: "eosf classify [--subject name] [--interactive] [text...]",
			Description: `Classifies the given diagnostic text and prints its kind along with the
   user-facing message, or 'none' for benign diagnostics. Arguments are joined
   with spaces; when there are none, the whole standard input is classified.
   With --interactive every input line is classified separately.

   Subject is the account or wallet name substituted into the message.
`,
			Action: classifyText,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subject, n",
					Usage: "account or wallet name the diagnostic is about",
				},
				cli.BoolFlag{
					Name:  "interactive, i",
					Usage: "classify input line by line",
				},
			},
		},
		{
			Name:      "channels",
			Usage:     "list output channels",
			UsageText: "eosf channels [--config-file file] [--verbosity CH,...]",
			Description: `Prints every output channel in its own style, active channels are
   marked with '*'.
`,
			Action: listChannels,
			Flags:  channelsFlags,
		},
	}
}

func classifyText(ctx *cli.Context) error {
	c := errmap.New(nil)
	subject := ctx.String("subject")
	w := ctx.App.Writer

	if ctx.Bool("interactive") {
		if ctx.Args().Present() {
			return cli.NewExitError("text arguments can't be used with --interactive", 1)
		}
		r, err := input.NewLineReader("> ", w)
		if err != nil {
			return cli.NewExitError(fmt.Errorf("can't open terminal: %w", err), 1)
		}
		defer r.Close()
		for {
			line, err := r.ReadLine()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			printRecord(r.Writer(), c.ClassifyFor(subject, line))
		}
	}

	text := cmdargs.GetText(ctx)
	if !ctx.Args().Present() {
		var err error
		text, err = input.ReadAll()
		if err != nil {
			return cli.NewExitError(fmt.Errorf("can't read input: %w", err), 1)
		}
		text = strings.TrimSpace(text)
	}
	printRecord(w, c.ClassifyFor(subject, text))
	return nil
}

func printRecord(w io.Writer, rec *errmap.Record) {
	if rec == nil {
		_, _ = fmt.Fprintln(w, "none")
		return
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", rec.Kind, rec.Msg)
	if rec.Kind == errmap.LowRam {
		_, _ = fmt.Fprintf(w, "needs: %d kB\ndeficiency: %d kB\n", rec.NeedsKB, rec.DeficiencyKB)
	}
}

func listChannels(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return err
	}
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	l := options.GetLogger(ctx, cfg.Logger, nil)
	for _, ch := range logger.AllChannels() {
		mark := " "
		if l.IsActive(ch) {
			mark = "*"
		}
		_, _ = fmt.Fprintf(ctx.App.Writer, "%s %s\n", mark, l.Render(ch, ch.String()))
	}
	return nil
}
