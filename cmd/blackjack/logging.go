package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/config"
)

// setupLogger opens the configured log file. The terminal belongs to the
// game, so diagnostics never go to stdout or stderr.
func setupLogger(cfg *config.Config, debug bool) (*log.Logger, func(), error) {
	level := cfg.LogLevel()
	if debug {
		level = log.DebugLevel
	}

	if cfg.Log.File == "-" {
		return log.NewWithOptions(io.Discard, log.Options{Level: level}), func() {}, nil
	}

	file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(file, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
	})

	closer := func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}
	return logger, closer, nil
}
