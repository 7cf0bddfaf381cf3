// Package logging builds the charm loggers used by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

// Logger is a charm logger plus the file it writes to, if any.
type Logger struct {
	*log.Logger
	file *os.File
}

// New creates a logger for the given settings.
//
// A configured file is opened for appending. Without one, output goes to
// fallback; pass io.Discard when the terminal belongs to the game.
func New(cfg config.LogConfig, prefix string, fallback io.Writer) (*Logger, error) {
	level, err := cfg.ParseLevel()
	if err != nil {
		return nil, err
	}

	out := fallback
	if out == nil {
		out = io.Discard
	}

	var file *os.File
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = file
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	return &Logger{Logger: logger, file: file}, nil
}

// Close closes the log file, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
