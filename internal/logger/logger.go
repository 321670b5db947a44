package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// RequestIDKey is the context key the HTTP middleware stores the request id under
const RequestIDKey contextKey = "request_id"

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Setup configures the standard logrus logger: JSON output and the given level
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// WithContext creates a logger carrying the request id found in ctx, if any
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		logger.Entry = logger.Entry.WithField("request_id", id)
	}

	return logger
}

// WithComponent tags log lines with the emitting component
func WithComponent(name string) *Logger {
	return New().WithField("component", name)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
