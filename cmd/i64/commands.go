package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"github.com/govalues/i64"
	"github.com/govalues/i64/internal/calc"
	"github.com/govalues/i64/internal/logging"
)

func newEvalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate an expression in prefix notation",
		Long: `Evaluate an expression in prefix notation, e.g. "* 10 + 1 2".
All arguments are joined into a single expression.
Operators: ` + strings.Join(calc.Operators(), " "),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			x, err := calc.Evaluate(expr)
			if err != nil {
				return errors.Wrapf(err, "evaluating %q", expr)
			}
			logging.Debugf("%q = %v", expr, x)
			fmt.Fprintln(cmd.OutOrStdout(), opts.render(x))
			return nil
		},
	}
}

// conversion is the JSON form of convert's output.
type conversion struct {
	Decimal string `json:"decimal"`
	Binary  string `json:"binary"`
	Octal   string `json:"octal"`
	Hex     string `json:"hex"`
	Bytes   []int  `json:"bytes"`
	Safe    bool   `json:"safe"`
}

func newConversion(x i64.Int64, opts *options) conversion {
	c := conversion{
		Decimal: opts.decimal(x),
		Binary:  x.Binary(opts.format),
		Octal:   x.Octal(opts.format),
		Hex:     x.Hex(opts.format, opts.upper),
	}
	for _, b := range x.Bytes() {
		c.Bytes = append(c.Bytes, int(b))
	}
	_, err := x.Float64()
	c.Safe = err == nil
	return c
}

func newConvertCommand(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "convert VALUE...",
		Short: "Print the representations of integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseArgs(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, x := range xs {
				c := newConversion(x, opts)
				if asJSON {
					b, err := sonnet.Marshal(c)
					if err != nil {
						return errors.Wrap(err, "encoding JSON")
					}
					fmt.Fprintln(out, string(b))
					continue
				}
				fmt.Fprintf(out, "decimal: %s\n", c.Decimal)
				fmt.Fprintf(out, "binary:  %s\n", c.Binary)
				fmt.Fprintf(out, "octal:   %s\n", c.Octal)
				fmt.Fprintf(out, "hex:     %s\n", c.Hex)
				fmt.Fprintf(out, "bytes:   % x\n", x.Bytes())
				fmt.Fprintf(out, "safe:    %t\n", c.Safe)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per value")
	return cmd
}

func newRandomCommand(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "random MIN MAX",
		Short: "Print uniformly distributed integers between two bounds inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return errors.Errorf("count %d is negative", count)
			}
			xs, err := parseArgs(args)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), opts.render(xs[0].Random(xs[1])))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of values to print")
	return cmd
}

func newREPLCommand(opts *options) *cobra.Command {
	var historyFile string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if historyFile != "" {
				if err := os.MkdirAll(filepath.Dir(historyFile), 0o700); err != nil {
					logging.Verbosef("history disabled: %v", err)
					historyFile = ""
				}
			}
			r := &calc.REPL{
				HistoryFile: historyFile,
				Format:      opts.render,
				Color:       !opts.noColor,
			}
			return r.Run()
		},
	}
	cmd.Flags().StringVar(&historyFile, "history", defaultHistoryFile(), "history file, empty to disable")
	return cmd
}

func defaultHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "i64", "history")
}
