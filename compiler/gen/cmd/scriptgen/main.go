// scriptgen writes the Erviz launcher scripts for every language, shell,
// input format, output format and notation.
//
// Usage:
//
//	scriptgen [--out DIR] [--config axes.yaml] [--watch] [--verbose]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/scriptgen/axis"
	"github.com/syssam/scriptgen/compiler/gen"
	"github.com/syssam/scriptgen/compiler/gen/shell"
	"github.com/syssam/scriptgen/compiler/load"
)

// options holds the command line flags.
type options struct {
	out     string
	config  string
	verbose bool
	watch   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "scriptgen: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "scriptgen",
		Short: "Generate Erviz launcher scripts",
		Long: `Generate one launcher script per language, shell, input format,
output format and notation.

Scripts are written to {lang}-win/*.cmd (Shift_JIS, CRLF) and
{lang}-unix/*.sh (UTF-8, LF) below the output directory. Existing
scripts of the same shell in those directories are removed first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", ".", "Output root directory")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "YAML file selecting the axis values (default: all)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "V", false, "Log every written script")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Regenerate whenever the config file changes")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	if opts.watch && opts.config == "" {
		return errors.New("--watch requires --config")
	}
	log, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	regenerate := func(ctx context.Context) error {
		return generate(ctx, log, opts)
	}
	err = regenerate(ctx)
	if !opts.watch {
		return err
	}
	if err != nil {
		log.Error("generation failed", zap.Error(err))
	}
	return watchConfig(ctx, log, opts.config, regenerate)
}

// generate runs one full generation.
func generate(ctx context.Context, log *zap.Logger, opts *options) error {
	axes := axis.Default()
	if opts.config != "" {
		var err error
		if axes, err = load.File(opts.config); err != nil {
			return err
		}
	}
	cfg, err := gen.NewConfig(
		gen.WithTarget(opts.out),
		gen.WithAxes(axes),
		gen.WithLogger(log),
	)
	if err != nil {
		return err
	}
	return gen.NewGenerator(cfg).WithDialect(shell.Dialects()...).Generate(ctx)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if verbose {
		cfg.Level.SetLevel(zap.DebugLevel)
	}
	return cfg.Build()
}
