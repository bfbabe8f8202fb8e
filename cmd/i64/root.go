package main

import (
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/i64"
	"github.com/govalues/i64/internal/logging"
)

const logLevelEnv = "I64_LOG_LEVEL"

// Output bases accepted by --base.
const (
	baseDec = "dec"
	baseBin = "bin"
	baseOct = "oct"
	baseHex = "hex"
)

type options struct {
	logLevel string
	logFile  string
	base     string
	format   bool
	upper    bool
	comma    bool
	noColor  bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "i64",
		Short:         "Evaluate and convert 64-bit wraparound integers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.configure()
		},
	}

	level := os.Getenv(logLevelEnv)
	if level == "" {
		level = logging.ErrorLevel
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", level, "the logging level: \"debug\", \"verbose\", \"error\" or \"panic\" (env "+logLevelEnv+")")
	flags.StringVar(&opts.logFile, "log-file", "", "write the log to a rotating file instead of stderr")
	flags.StringVar(&opts.base, "base", baseDec, "output base: \"dec\", \"bin\", \"oct\" or \"hex\"")
	flags.BoolVar(&opts.format, "format", false, "prefix and zero-pad binary, octal and hex output")
	flags.BoolVar(&opts.upper, "upper", false, "render hex digits in uppercase")
	flags.BoolVar(&opts.comma, "comma", false, "group decimal digits with commas")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colorized output")

	cmd.AddCommand(
		newEvalCommand(opts),
		newConvertCommand(opts),
		newRandomCommand(opts),
		newREPLCommand(opts),
	)
	return cmd
}

func (o *options) configure() error {
	if err := logging.ConfigureLogger(o.logLevel, o.logFile); err != nil {
		return err
	}
	switch o.base {
	case baseDec, baseBin, baseOct, baseHex:
	default:
		return errors.Errorf("unknown base %q", o.base)
	}
	logging.Debugf("options: %+v", *o)
	return nil
}

// render formats x in the base selected by the flags.
func (o *options) render(x i64.Int64) string {
	switch o.base {
	case baseBin:
		return x.Binary(o.format)
	case baseOct:
		return x.Octal(o.format)
	case baseHex:
		return x.Hex(o.format, o.upper)
	}
	return o.decimal(x)
}

func (o *options) decimal(x i64.Int64) string {
	if o.comma {
		return humanize.Comma(x.Int64())
	}
	return x.String()
}

// parseArgs resolves every argument to an integer.
func parseArgs(args []string) ([]i64.Int64, error) {
	xs := make([]i64.Int64, len(args))
	for i, arg := range args {
		x, err := i64.Parse(strings.TrimSpace(arg))
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}
