// Package logging builds the structured logger shared by every frontend.
// The terminal belongs to the game while it runs, so log output goes to a
// file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const prefix = "snake"

// New creates a logger writing to path at the given level
// (debug, info, warn or error). An empty path discards all output.
// The returned closer releases the log file and is never nil.
func New(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything. Used by tests and as the
// fallback when no logger is configured.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: prefix})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
