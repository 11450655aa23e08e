package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// LogrusConfig configures the LogrusLogger.
type LogrusConfig struct {
	// Output receives log lines. Defaults to stderr when neither
	// Output nor FilePath is set.
	Output io.Writer

	// FilePath, when set, appends log lines to the given file in
	// addition to Output.
	FilePath string

	// Level is the minimum level that is emitted.
	Level LogLevel

	// Structured selects JSON output instead of text.
	Structured bool

	// Fields are attached to every entry.
	Fields map[string]any
}

// LogrusLogger implements Logger on top of a logrus entry.
type LogrusLogger struct {
	entry  *logrus.Entry
	closer io.Closer
}

// NewLogrusLogger creates a logger from cfg.
func NewLogrusLogger(cfg LogrusConfig) (*LogrusLogger, error) {
	base := logrus.New()

	var (
		writers []io.Writer
		closer  io.Closer
	)
	if cfg.Output != nil {
		writers = append(writers, cfg.Output)
	}
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(
			cfg.FilePath,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0o644,
		)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
		closer = file
	}

	switch len(writers) {
	case 0:
		base.SetOutput(os.Stderr)
	case 1:
		base.SetOutput(writers[0])
	default:
		base.SetOutput(io.MultiWriter(writers...))
	}

	base.SetLevel(toLogrusLevel(cfg.Level))

	if cfg.Structured {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
			DisableColors:   true,
		})
	}

	return &LogrusLogger{
		entry:  base.WithFields(logrus.Fields(cfg.Fields)),
		closer: closer,
	}, nil
}

func toLogrusLevel(l LogLevel) logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

// Info logs an informational message.
func (l *LogrusLogger) Info(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Info(msg)
}

// Warn logs a warning message.
func (l *LogrusLogger) Warn(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Warn(msg)
}

// Error logs an error message.
func (l *LogrusLogger) Error(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Error(msg)
}

// Debug logs a debug message.
func (l *LogrusLogger) Debug(msg string, fields ...Field) {
	l.entry.WithFields(toLogrusFields(fields)).Debug(msg)
}

// WithFields returns a child logger sharing the same output. Closing
// the child does not close the parent's file.
func (l *LogrusLogger) WithFields(fields ...Field) Logger {
	return &LogrusLogger{
		entry: l.entry.WithFields(toLogrusFields(fields)),
	}
}

// Close closes the log file, if one was opened.
func (l *LogrusLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
