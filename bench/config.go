// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/katalvlaran/strassen/strassen"
)

// Environment variable names read by LoadConfig.
const (
	EnvSizes         = "STRASSEN_SIZES"
	EnvThresholds    = "STRASSEN_THRESHOLDS"
	EnvRepeats       = "STRASSEN_REPEATS"
	EnvSeed          = "STRASSEN_SEED"
	EnvParallelDepth = "STRASSEN_PARALLEL_DEPTH"
	EnvLogLevel      = "STRASSEN_LOG_LEVEL"
)

// envSearchDepth bounds the upward search for a .env file.
const envSearchDepth = 5

// Config describes one benchmark run.
type Config struct {
	Sizes         []int      // square matrix sides
	Thresholds    []int      // Strassen base-case sides, powers of two
	Repeats       int        // timed runs per measurement; the best is kept
	Seed          int64      // random source seed
	ParallelDepth int        // strassen.WithParallelDepth
	LogLevel      slog.Level // harness log level
}

// DefaultConfig returns one 256×256 product and the thresholds 2, 4, 16, 64, 128.
func DefaultConfig() Config {
	return Config{
		Sizes:         []int{256},
		Thresholds:    []int{2, 4, 16, 64, 128},
		Repeats:       1,
		Seed:          1,
		ParallelDepth: 0,
		LogLevel:      slog.LevelInfo,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("%w: size %d must be > 0", ErrInvalidConfig, n)
		}
	}
	if len(c.Thresholds) == 0 {
		return fmt.Errorf("%w: no thresholds", ErrInvalidConfig)
	}
	for _, t := range c.Thresholds {
		if err := strassen.ValidateThreshold(t); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.Repeats <= 0 {
		return fmt.Errorf("%w: repeats %d must be > 0", ErrInvalidConfig, c.Repeats)
	}
	if c.ParallelDepth < 0 {
		return fmt.Errorf("%w: parallel depth %d must be >= 0", ErrInvalidConfig, c.ParallelDepth)
	}

	return nil
}

// LoadConfig starts from DefaultConfig and applies STRASSEN_* variables.
//
// Variables already present in the process environment win over those in
// the .env file. envFile names the file explicitly; when empty, a .env file
// is searched in the working directory and up to four parents, and a
// missing file is not an error.
//
// Errors: ErrInvalidConfig for malformed values, or a read error for an
// explicit envFile.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()

	fileVars := map[string]string{}
	if envFile == "" {
		envFile = findEnvFile()
	} else if _, err := os.Stat(envFile); err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return cfg, fmt.Errorf("LoadConfig %s: %w", envFile, err)
		}
		fileVars = vars
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]

		return v, ok
	}

	var err error
	if v, ok := lookup(EnvSizes); ok {
		if cfg.Sizes, err = ParseIntList(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSizes, err)
		}
	}
	if v, ok := lookup(EnvThresholds); ok {
		if cfg.Thresholds, err = ParseIntList(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvThresholds, err)
		}
	}
	if v, ok := lookup(EnvRepeats); ok {
		if cfg.Repeats, err = parseInt(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvRepeats, err)
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return cfg, fmt.Errorf("%s: %w: %w", EnvSeed, ErrInvalidConfig, err)
		}
	}
	if v, ok := lookup(EnvParallelDepth); ok {
		if cfg.ParallelDepth, err = parseInt(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvParallelDepth, err)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if cfg.LogLevel, err = ParseLogLevel(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// ParseIntList parses a comma- or space-separated list of integers such as
// "64, 128 256". Duplicates are dropped, first occurrence wins.
func ParseIntList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty list %q", ErrInvalidConfig, s)
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := parseInt(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return lo.Uniq(out), nil
}

// ParseLogLevel accepts debug, info, warn, error (any case) or an slog
// offset form such as "info+2".
func ParseLogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return l, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return n, nil
}

// findEnvFile looks for .env in the working directory and its parents.
// It returns "" when none is found.
func findEnvFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for i := 0; i < envSearchDepth; i++ {
		p := filepath.Join(dir, ".env")
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
