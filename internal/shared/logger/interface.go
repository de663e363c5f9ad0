package logger

import (
	"io"
	"log/slog"
)

type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

type slogLogger struct {
	logger *slog.Logger
	// unnamed is logger without the "logger" attribute, so nested names
	// replace it instead of repeating the key.
	unnamed *slog.Logger
	name    string
}

func NewLogger() Interface {
	return NewLoggerWithSlog(Get())
}

func NewLoggerWithSlog(slogLog *slog.Logger) Interface {
	return &slogLogger{
		logger:  slogLog,
		unnamed: slogLog,
	}
}

// NewNop returns a logger that drops every record.
func NewNop() Interface {
	return NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{
		logger:  l.logger.With(args...),
		unnamed: l.unnamed.With(args...),
		name:    l.name,
	}
}

// Named returns a child logger tagged "logger"=name. Naming a named logger
// joins the names with a dot ("cli.ticket").
func (l *slogLogger) Named(name string) Interface {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &slogLogger{
		logger:  l.unnamed.With("logger", name),
		unnamed: l.unnamed,
		name:    name,
	}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}
