// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/opcount"
	"github.com/katalvlaran/strassen/strassen"
)

// MethodStandard and MethodStrassen label the rows of a Report.
const (
	MethodStandard = "standard"
	MethodStrassen = "strassen"
)

// Result is one timed measurement.
type Result struct {
	Size      int
	Method    string // MethodStandard or MethodStrassen
	Threshold int    // 0 for MethodStandard
	Best      time.Duration
	Mean      time.Duration
	DiffNorm  float64 // ‖C − C_standard‖_F; 0 for MethodStandard
	RelError  float64 // DiffNorm / ‖C_standard‖_F, or DiffNorm when that norm is 0
	Speedup   float64 // standard Best / this Best
	Levels    int     // Strassen recursion depth
	Counts    opcount.Counts
}

// Run executes cfg and returns the collected results.
//
// Implementation:
//   - Stage 1: validate cfg; seed one random source for the whole run.
//   - Stage 2: per size, draw A and B and time matrix.Mul Repeats times.
//   - Stage 3: per threshold, time strassen.Multiply Repeats times and compare
//     its last result with the classical one.
//
// ctx is checked between measurements; a cancelled run returns ctx.Err().
// A nil logger discards log output.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	rep := &Report{Env: DetectEnvironment(), Config: cfg}
	rng := rand.New(rand.NewSource(cfg.Seed))
	logger.Info("benchmark started",
		"sizes", cfg.Sizes, "thresholds", cfg.Thresholds,
		"repeats", cfg.Repeats, "seed", cfg.Seed, "parallel_depth", cfg.ParallelDepth)

	for _, n := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := RandomMatrix(rng, n, n)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		b, err := RandomMatrix(rng, n, n)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}

		ref, best, mean, err := timeIt(ctx, cfg.Repeats, func() (*matrix.Dense, error) { return matrix.Mul(a, b) })
		if err != nil {
			return nil, fmt.Errorf("Run: standard %dx%d: %w", n, n, err)
		}
		refNorm, err := matrix.FrobeniusNorm(ref)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		counts, err := opcount.Standard(n)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		rep.Results = append(rep.Results, Result{
			Size:    n,
			Method:  MethodStandard,
			Best:    best,
			Mean:    mean,
			Speedup: 1,
			Counts:  counts,
		})
		logger.Info("standard multiplication", "size", n, "best", best)

		for _, th := range cfg.Thresholds {
			res, err := runStrassen(ctx, cfg, a, b, ref, refNorm, best, th)
			if err != nil {
				return nil, fmt.Errorf("Run: strassen %dx%d threshold %d: %w", n, n, th, err)
			}
			rep.Results = append(rep.Results, res)
			logger.Info("strassen multiplication",
				"size", n, "threshold", th, "best", res.Best,
				"diff_norm", res.DiffNorm, "speedup", res.Speedup)
		}
	}
	logger.Debug("benchmark finished", "results", len(rep.Results))

	return rep, nil
}

// runStrassen measures one threshold against the classical reference.
func runStrassen(ctx context.Context, cfg Config, a, b, ref *matrix.Dense, refNorm float64,
	stdBest time.Duration, th int) (Result, error) {
	var st strassen.Stats
	mul, err := strassen.New(th,
		strassen.WithParallelDepth(cfg.ParallelDepth),
		strassen.WithStats(&st))
	if err != nil {
		return Result{}, err
	}
	c, best, mean, err := timeIt(ctx, cfg.Repeats, func() (*matrix.Dense, error) { return mul.Multiply(a, b) })
	if err != nil {
		return Result{}, err
	}
	diff, err := matrix.DiffNorm(c, ref)
	if err != nil {
		return Result{}, err
	}
	counts, err := opcount.Strassen(a.Rows(), th)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Size:      a.Rows(),
		Method:    MethodStrassen,
		Threshold: th,
		Best:      best,
		Mean:      mean,
		DiffNorm:  diff,
		Levels:    st.Levels(),
		Counts:    counts,
	}
	res.RelError = diff
	if refNorm > 0 {
		res.RelError = diff / refNorm
	}
	if best > 0 {
		res.Speedup = float64(stdBest) / float64(best)
	}

	return res, nil
}

// timeIt runs fn repeats times and returns the last result with the best
// and mean wall time.
func timeIt(ctx context.Context, repeats int, fn func() (*matrix.Dense, error)) (*matrix.Dense, time.Duration, time.Duration, error) {
	var (
		out        *matrix.Dense
		best, tot  time.Duration
		start      time.Time
		err        error
		elapsed    time.Duration
		firstTimed = true
	)
	for i := 0; i < repeats; i++ {
		if err = ctx.Err(); err != nil {
			return nil, 0, 0, err
		}
		start = time.Now()
		if out, err = fn(); err != nil {
			return nil, 0, 0, err
		}
		elapsed = time.Since(start)
		tot += elapsed
		if firstTimed || elapsed < best {
			best, firstTimed = elapsed, false
		}
	}

	return out, best, tot / time.Duration(repeats), nil
}

// Check returns ErrMismatch when any Strassen row has a relative error above
// tol. A NaN error never passes.
func (r *Report) Check(tol float64) error {
	for _, res := range r.Results {
		if res.Method == MethodStrassen && !(res.RelError <= tol) {
			return fmt.Errorf("%w: size %d threshold %d: relative error %.3g > %.3g",
				ErrMismatch, res.Size, res.Threshold, res.RelError, tol)
		}
	}

	return nil
}
