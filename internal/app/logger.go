package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// LogConfig controls the rotating log file.
type LogConfig struct {
	// Path is the log file. Empty disables file logging.
	Path string
	// Level is the minimum logrus level.
	Level string
	// Formatter is json or text.
	Formatter string
	// MaxSize is the size in megabytes at which the file is rotated.
	MaxSize int
	// MaxBackups is how many rotated files are kept.
	MaxBackups int
	// MaxAge is the number of days rotated files are kept; 0 keeps them forever.
	MaxAge int
	// Stdout also writes log lines to standard error.
	Stdout bool
}

// AddFlags registers the logging flags.
func (c *LogConfig) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Path, "log-file", "", "write logs to this file, rotating it by size")
	flags.StringVar(&c.Level, "log-level", "info", "minimum log level (debug|info|warn|error)")
	flags.StringVar(&c.Formatter, "log-format", "text", "log line format (text|json)")
	flags.IntVar(&c.MaxSize, "log-max-size", 10, "size in megabytes at which the log file is rotated")
	flags.IntVar(&c.MaxBackups, "log-max-backups", 3, "number of rotated log files to keep")
	flags.IntVar(&c.MaxAge, "log-max-age", 0, "days to keep rotated log files (0 keeps them)")
	flags.BoolVar(&c.Stdout, "log-stdout", false, "also write log lines to stderr")
}

// LogrusLogger adapts logrus to Logger; the component becomes a field.
type LogrusLogger struct {
	log *logrus.Logger
}

func formatterFor(name string) (logrus.Formatter, error) {
	switch name {
	case "", "text":
		return &logrus.TextFormatter{FullTimestamp: true, DisableColors: true}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", name)
	}
}

// NewLogger builds a logger from c. With no path and no stdout it discards
// everything.
func NewLogger(c LogConfig) (*LogrusLogger, error) {
	formatter, err := formatterFor(c.Formatter)
	if err != nil {
		return nil, err
	}
	level := logrus.InfoLevel
	if c.Level != "" {
		if level, err = logrus.ParseLevel(c.Level); err != nil {
			return nil, err
		}
	}

	var writers []io.Writer
	if c.Path != "" {
		if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
			return nil, fmt.Errorf("unable to create the %s log directory: %w", filepath.Dir(c.Path), err)
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   c.Path,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
		})
	}
	if c.Stdout {
		writers = append(writers, os.Stderr)
	}

	l := NewWriterLogger(io.MultiWriter(writers...), formatter)
	l.log.SetLevel(level)
	return l, nil
}

// NewWriterLogger logs to w at info level.
func NewWriterLogger(w io.Writer, formatter logrus.Formatter) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	if formatter != nil {
		l.SetFormatter(formatter)
	}
	l.SetLevel(logrus.InfoLevel)
	return &LogrusLogger{log: l}
}

func (l *LogrusLogger) Infof(component string, format string, args ...interface{}) {
	l.log.WithField("component", component).Infof(format, args...)
}

func (l *LogrusLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.WithField("component", component).Errorf(format, args...)
}

// Debugf logs below the default level; it is not part of Logger.
func (l *LogrusLogger) Debugf(component string, format string, args ...interface{}) {
	l.log.WithField("component", component).Debugf(format, args...)
}
