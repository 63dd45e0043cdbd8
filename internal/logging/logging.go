// Package logging builds the structured logger. The terminal belongs to
// the desktop while it runs, so log output goes to a file under the XDG
// state directory unless a writer is given.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// DefaultFile is the log file path relative to the XDG state directory.
const DefaultFile = "dockwm/dockwm.log"

// Options configure New.
type Options struct {
	// Level is a level name: debug, info, warn, error, fatal, or "off".
	Level string
	// File overrides the log file location. Ignored when Writer is set.
	File string
	// Writer receives output instead of a file.
	Writer io.Writer
	// Prefix is shown before every message.
	Prefix string
}

// New returns a logger and a function that releases its file.
func New(opts Options) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	level := strings.ToLower(strings.TrimSpace(opts.Level))
	if level == "" {
		level = "info"
	}
	if level == "off" {
		return log.NewWithOptions(io.Discard, log.Options{}), noop, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, noop, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	w, closer := opts.Writer, noop
	if w == nil {
		path, err := Path(opts.File)
		if err != nil {
			return nil, noop, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return logger, closer, nil
}

// Path resolves the log file location, creating its directory.
func Path(file string) (string, error) {
	if file == "" {
		path, err := xdg.StateFile(DefaultFile)
		if err != nil {
			return "", fmt.Errorf("failed to get log path: %w", err)
		}
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return file, nil
}
