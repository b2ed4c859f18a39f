package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging
type Logger struct {
	*logrus.Logger
}

// Config for logger initialization
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Output io.Writer
	Colors bool // force colored text output
}

// New creates a new logger instance
func New(cfg Config) *Logger {
	log := logrus.New()

	// Set level
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// Set formatter
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     cfg.Colors,
		})
	}

	// stdout carries the formatted output, logs go to stderr
	if cfg.Output != nil {
		log.SetOutput(cfg.Output)
	} else {
		log.SetOutput(os.Stderr)
	}

	return &Logger{Logger: log}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return New(Config{Level: "panic", Output: io.Discard})
}

// Component returns an entry tagged with the emitting component
func (l *Logger) Component(name string) *logrus.Entry {
	return l.Logger.WithField("component", name)
}
