package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
)

// logOptions are the persistent logging flags.
type logOptions struct {
	path  string
	level string
	json  bool
}

// setupLogging builds the root logger. It writes to stderr, or appends to
// opts.path when set; the returned file must then be closed by the caller.
func setupLogging(opts logOptions, stderr io.Writer) (hclog.Logger, *os.File, error) {
	level := hclog.LevelFromString(opts.level)
	if level == hclog.NoLevel {
		return nil, nil, fmt.Errorf("unknown log level %q", opts.level)
	}

	var logFile *os.File
	out := stderr
	if opts.path != "" {
		// Ensure directory exists for file logging
		if err := os.MkdirAll(filepath.Dir(opts.path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(opts.path), err)
		}
		f, err := os.OpenFile(opts.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		logFile, out = f, f
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		JSONFormat: opts.json,
		Output:     out,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
	return logger, logFile, nil
}
