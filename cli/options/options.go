/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/eosfactory/eosf/cli/flags"
	"github.com/eosfactory/eosf/pkg/cleos"
	"github.com/eosfactory/eosf/pkg/config"
	"github.com/eosfactory/eosf/pkg/logger"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is a flag for commands that use configuration directory.
var Config = cli.StringFlag{
	Name:  "config-path",
	Usage: "path to directory with " + config.DefaultConfigFile + " configuration file (may be overridden by --config-file option)",
}

// ConfigFile is a flag for commands that use configuration and provide path
// to the specific config file instead of config path.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the configuration file (overrides --config-path option)",
}

// Debug is a flag for commands that allow debug diagnostics.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (LOTS of output, overrides configuration)",
}

// Logger is a set of flags overriding the console output configuration.
var Logger = []cli.Flag{
	cli.GenericFlag{
		Name:  "verbosity, v",
		Value: new(flags.Channels),
		Usage: "comma-separated list of active output channels (COMMENT, INFO, TRACE, ERROR, ERROR_TESTING, OUT, OUT_INFO, DEBUG)",
	},
	cli.BoolFlag{Name: "throw", Usage: "fail on toolchain errors instead of printing them"},
	cli.BoolFlag{Name: "testing-errors", Usage: "print errors in a less alarming style"},
	cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
}

// Cleos is a set of flags for the toolchain invocation.
var Cleos = []cli.Flag{
	cli.StringFlag{Name: "cleos", Usage: "toolchain binary to run"},
	cli.StringFlag{Name: "url, u", Usage: "node API endpoint passed to the toolchain"},
	cli.StringFlag{Name: "wallet-url", Usage: "wallet daemon endpoint passed to the toolchain"},
	cli.DurationFlag{Name: "timeout, s", Usage: "timeout for every toolchain command"},
}

// GetConfigFromContext looks at the path flags in the given context and
// returns an appropriate config. Defaults are used if no path is given.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	if configFile := ctx.String("config-file"); len(configFile) != 0 {
		return config.LoadFile(configFile)
	}
	if configPath := ctx.String("config-path"); configPath != "" {
		return config.Load(configPath)
	}
	return config.Default(), nil
}

// GetSignalContext returns a context.Context canceled on interrupt, so that
// running toolchain commands are killed.
func GetSignalContext() (context.Context, func()) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If logPath is configured -- function creates a dir and a file for logging.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, *zap.AtomicLevel, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	if logPath := cfg.LogPath; logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, nil, fmt.Errorf("could not create dir for logger: %w", err)
		}
		cc.OutputPaths = []string{logPath}
	}

	log, err := cc.Build()
	return log, &cc.Level, err
}

// GetLogger creates a console logger from the configuration and the context
// flags overriding it. Output goes to the application writer.
func GetLogger(ctx *cli.Context, cfg config.LoggerConfiguration, log *zap.Logger) *logger.Logger {
	opts := cfg.Options()
	if chs, ok := ctx.Generic("verbosity").(*flags.Channels); ok && ctx.IsSet("verbosity") {
		opts.Channels = chs.Value
	}
	if ctx.Bool("throw") {
		opts.ThrowOnError = true
	}
	if ctx.Bool("testing-errors") {
		opts.TestingErrors = true
	}
	if ctx.Bool("no-color") {
		opts.NoColor = true
	}
	opts.Output = ctx.App.Writer
	opts.Log = log
	return logger.New(opts)
}

// GetRunner creates a toolchain runner from the configuration and the context
// flags overriding it.
func GetRunner(ctx *cli.Context, cfg config.CleosConfiguration, log *zap.Logger) *cleos.Runner {
	if path := ctx.String("cleos"); path != "" {
		cfg.Path = path
	}
	if url := ctx.String("url"); url != "" {
		cfg.URL = url
	}
	if url := ctx.String("wallet-url"); url != "" {
		cfg.WalletURL = url
	}
	timeout := cfg.Timeout
	if dur := ctx.Duration("timeout"); dur > 0 {
		timeout = dur
	}
	return &cleos.Runner{
		Path:    cfg.Path,
		Args:    cfg.Args(),
		Timeout: timeout,
		Log:     log,
	}
}

// Setup is a shortcut for commands running the toolchain: it loads the
// config, sets up diagnostics and creates the console logger and runner.
// The returned function must be called to flush diagnostics.
func Setup(ctx *cli.Context) (*logger.Logger, *cleos.Runner, func(), error) {
	cfg, err := GetConfigFromContext(ctx)
	if err != nil {
		return nil, nil, nil, cli.NewExitError(err, 1)
	}
	log, _, err := HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return nil, nil, nil, cli.NewExitError(err, 1)
	}
	done := func() { _ = log.Sync() }
	return GetLogger(ctx, cfg.Logger, log), GetRunner(ctx, cfg.Cleos, log), done, nil
}
