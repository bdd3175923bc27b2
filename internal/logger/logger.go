// Package logger builds the zerolog logger used by the plotlog command.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Format values accepted by Options.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options defines logger initialization parameters.
type Options struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to out and, when opts.File is set, to a
// rotating log file. The returned closer releases the file.
//
// Console format is human readable; the file always receives JSON lines.
func New(out io.Writer, opts Options) (zerolog.Logger, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	switch opts.Format {
	case "", FormatConsole:
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
	case FormatJSON:
		writers = append(writers, out)
	default:
		return zerolog.Nop(), closer, fmt.Errorf("invalid log format: %s (must be console or json)", opts.Format)
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create logs dir: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		writers = append(writers, rotator)
		closer = rotator
	}

	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}

	w := writers[0]
	if len(writers) > 1 {
		w = io.MultiWriter(writers...)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), closer, nil
}
