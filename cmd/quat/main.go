// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Command quat evaluates quaternion expressions.
//
// Operands are written as sums of signed terms, e.g.
// "1 + 2i - j + 0.5k". Operands that start with a minus
// sign must follow a "--" argument.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/gviegas/quater/internal/config"
	"github.com/gviegas/quater/linear"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfgFile   string
	verbose   bool
	precision int
	cfg       *config.Config
	log       zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:               "quat",
		Short:             "Quaternion calculator",
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.quat/quat.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().IntVarP(&a.precision, "precision", "p", -1, "significant digits of results (-1 for shortest exact)")

	root.AddCommand(a.parseCmd(), a.powCmd(), a.equalCmd())
	for _, op := range unaryOps {
		root.AddCommand(a.unaryCmd(op))
	}
	for _, op := range binaryOps {
		root.AddCommand(a.binaryCmd(op))
	}
	root.AddCommand(a.rotateCmds()...)
	return root
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = a.precision
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	level, _ := cfg.Level()
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().Timestamp().Str("cmd", cmd.Name()).
		Logger()
	a.cfg = cfg
	a.log.Debug().
		Int("precision", cfg.Precision).
		Str("angle_unit", cfg.AngleUnit).
		Float64("epsilon", cfg.Epsilon).
		Msg("configured")
	return nil
}

func (a *app) parse(arg string) (linear.Q, error) {
	q, err := linear.Parse(arg)
	if err != nil {
		return linear.Zero, err
	}
	a.log.Debug().Str("arg", arg).Stringer("q", q).Msg("parsed")
	return q, nil
}

func (a *app) parseAll(args []string) ([]linear.Q, error) {
	qs := make([]linear.Q, len(args))
	for i, s := range args {
		var err error
		if qs[i], err = a.parse(s); err != nil {
			return nil, err
		}
	}
	return qs, nil
}

func (a *app) fmtReal(f float64) string {
	if a.cfg.Precision < 0 {
		return linear.FormatReal(f)
	}
	return strconv.FormatFloat(f, 'g', a.cfg.Precision, 64)
}

func (a *app) vector(v linear.V3) string {
	return a.fmtReal(v[0]) + "," + a.fmtReal(v[1]) + "," + a.fmtReal(v[2])
}

func (a *app) printQ(cmd *cobra.Command, q linear.Q) {
	fmt.Fprintln(cmd.OutOrStdout(), q.Text(a.cfg.Precision))
}

func (a *app) printReal(cmd *cobra.Command, f float64) {
	fmt.Fprintln(cmd.OutOrStdout(), a.fmtReal(f))
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <q>",
		Short: "Print q in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.parse(args[0])
			if err != nil {
				return err
			}
			a.printQ(cmd, q)
			return nil
		},
	}
}

func (a *app) powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow <q> <n>",
		Short: "Raise q to the real power n",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.parse(args[0])
			if err != nil {
				return err
			}
			n, err := cast.ToFloat64E(args[1])
			if err != nil {
				return fmt.Errorf("exponent: %w", err)
			}
			if q, err = q.Pow(n); err != nil {
				return err
			}
			a.printQ(cmd, q)
			return nil
		},
	}
}

func (a *app) equalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal <q> <p>",
		Short: "Report whether q and p are equal within the configured epsilon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := a.parseAll(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), qs[0].EqualWithin(qs[1], a.cfg.Epsilon))
			return nil
		},
	}
}

// parseV3 parses a comma-separated list of three numbers.
func parseV3(s string) (v linear.V3, err error) {
	fields := strings.Split(s, ",")
	if len(fields) != len(v) {
		return v, fmt.Errorf("vector %q: want 3 components, have %d", s, len(fields))
	}
	for i, f := range fields {
		if v[i], err = cast.ToFloat64E(strings.TrimSpace(f)); err != nil {
			return v, fmt.Errorf("vector %q: %w", s, err)
		}
	}
	return v, nil
}
