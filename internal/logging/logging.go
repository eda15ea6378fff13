// Package logging builds the charmbracelet/log loggers used across ytwiz.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix is attached to every record.
const Prefix = "ytwiz"

// New returns a logger writing to w. Debug records are emitted only when
// verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	l.SetLevel(Level(verbose))
	return l
}

// Level maps the verbose flag onto a log level.
func Level(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// OpenFile returns a logfmt logger appending to path. The terminal belongs to
// the wizard while it runs, so its diagnostics go to a file instead. The
// returned closer must be called on exit. An empty path discards output.
func OpenFile(path string, verbose bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l := log.NewWithOptions(f, log.Options{
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
	l.SetLevel(Level(verbose))
	return l, f, nil
}
