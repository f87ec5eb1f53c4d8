// Package logs builds the application logger. Records go to stderr and,
// optionally, to a size-rotated file.
package logs

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

type Config struct {
	// Level is one of debug, info, warn, error.
	Level string
	// File enables an additional rotating log file when set.
	File string
	// Writer overrides stderr, mostly for tests.
	Writer io.Writer
}

// ParseLevel falls back to info for unknown names. Levels above error are
// capped at error so failed operations always reach the log.
func ParseLevel(level string) log.Level {
	parsed, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	if parsed > log.ErrorLevel {
		return log.ErrorLevel
	}
	return parsed
}

func New(cfg Config) *log.Logger {
	var writer io.Writer = os.Stderr
	if cfg.Writer != nil {
		writer = cfg.Writer
	}

	if cfg.File != "" {
		writer = io.MultiWriter(writer, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    DefaultMaxSizeMB,
			MaxBackups: DefaultMaxBackups,
			MaxAge:     DefaultMaxAgeDays,
		})
	}

	return log.NewWithOptions(writer, log.Options{
		Level:           ParseLevel(cfg.Level),
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
