package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/kula-app/shannonentropy/internal/config"
	"github.com/kula-app/shannonentropy/internal/entropy"
	"github.com/kula-app/shannonentropy/internal/logging"
	"github.com/kula-app/shannonentropy/internal/report"
)

// errUsage is returned when the program is not invoked with exactly one file
var errUsage = errors.New("usage error")

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, the result has been written to stdout.
// If the run function returns an error, nothing has been written to stdout.
//
// The logic of the run function must stay isolated so it can be tested in parallel.
func run(_ context.Context, args []string, getenv func(key string) string, stdout, stderr *os.File) error {
	if len(args) != 2 {
		return errUsage
	}
	path := args[1]

	// Tunables never decide the outcome: a bad value falls back to its default
	cfg, cfgErr := config.Load(getenv)

	// Diagnostics go to stderr so stdout only ever carries the result
	logger := slog.New(logging.NewTerminalHandler(stderr, cfg.LogLevel))
	if cfgErr != nil {
		logger.Warn("ignoring invalid configuration, using defaults", "error", cfgErr)
	}

	mode := report.ModeFor(stdout)
	logger.Debug("configuration loaded",
		"window_size", cfg.WindowSize,
		"log_level", cfg.LogLevel,
		"output_mode", mode)

	calculator := entropy.NewCalculator(logger, cfg.WindowSize)

	value, err := calculator.Compute(path)
	if err != nil {
		return err
	}

	logger.Info("entropy calculated", "path", path, "entropy", value)

	return report.Write(stdout, mode, path, value)
}
