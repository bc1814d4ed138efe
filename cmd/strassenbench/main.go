// Command strassenbench times Strassen's algorithm against the classical
// matrix product and prints a comparison table.
//
// Usage:
//
//	strassenbench [--size 256] [--threshold 2,4,16,64,128] [--repeats 1]
//	              [--seed 1] [--parallel-depth 0] [--env-file path]
//	              [--verify] [--log-level info]
//
// Flags override STRASSEN_* environment variables and .env values.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/bench"
)

// verifyTolerance bounds ‖C_strassen − C_standard‖_F / ‖C_standard‖_F in --verify mode.
const verifyTolerance = 1e-9

type flags struct {
	sizes         []int
	thresholds    []int
	repeats       int
	seed          int64
	parallelDepth int
	envFile       string
	verify        bool
	logLevel      string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command; out receives the report, errOut the logs.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "strassenbench",
		Short:         "Compare Strassen matrix multiplication with the classical product",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

			rep, err := bench.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			if err = rep.Write(out); err != nil {
				return err
			}
			if !f.verify {
				return nil
			}
			if err = rep.Check(verifyTolerance); err != nil {
				logger.Error("verification failed", "err", err)
				return err
			}
			fmt.Fprintln(out, "\nall thresholds match the classical product")

			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	fs := cmd.Flags()
	fs.IntSliceVar(&f.sizes, "size", nil, "square matrix sides (repeatable or comma-separated)")
	fs.IntSliceVar(&f.thresholds, "threshold", nil, "Strassen base-case sides, powers of two")
	fs.IntVar(&f.repeats, "repeats", 0, "timed runs per measurement, best is reported")
	fs.Int64Var(&f.seed, "seed", 0, "random source seed")
	fs.IntVar(&f.parallelDepth, "parallel-depth", 0, "recursion levels whose seven products run concurrently")
	fs.StringVar(&f.envFile, "env-file", "", "explicit .env file (default: search working directory and parents)")
	fs.BoolVar(&f.verify, "verify", false, "fail when any threshold disagrees with the classical product")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// resolveConfig layers explicitly set flags over LoadConfig.
func resolveConfig(cmd *cobra.Command, f flags) (bench.Config, error) {
	cfg, err := bench.LoadConfig(f.envFile)
	if err != nil {
		return cfg, err
	}
	fs := cmd.Flags()
	if fs.Changed("size") {
		cfg.Sizes = f.sizes
	}
	if fs.Changed("threshold") {
		cfg.Thresholds = f.thresholds
	}
	if fs.Changed("repeats") {
		cfg.Repeats = f.repeats
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("parallel-depth") {
		cfg.ParallelDepth = f.parallelDepth
	}
	if fs.Changed("log-level") {
		if cfg.LogLevel, err = bench.ParseLogLevel(f.logLevel); err != nil {
			return cfg, err
		}
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}

	return cfg, nil
}
