// Package logger wraps zerolog with the printf-style helpers the proxy uses.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "swapproxy"

type Logger struct {
	env string
	log zerolog.Logger
}

// New logs to stdout. See NewWithWriter.
func New(env string) *Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter builds a Logger writing to w. dev gets colored console lines at
// debug level; every other env gets JSON lines at info level tagged with the service name.
func NewWithWriter(env string, w io.Writer) *Logger {
	if env == "dev" {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		return &Logger{env: env, log: zl}
	}

	zl := zerolog.New(w).
		Level(zerolog.InfoLevel).
		With().Timestamp().Str("service", serviceName).Str("env", env).Logger()
	return &Logger{env: env, log: zl}
}

// Nop discards everything. Used by tests and the CLI's --json mode.
func Nop() *Logger {
	return &Logger{env: "test", log: zerolog.Nop()}
}

// Zerolog exposes the underlying logger for clients that take a zerolog.Logger option.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.log
}

func (l *Logger) Infof(format string, args ...interface{})  { l.log.Info().Msgf(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log.Warn().Msgf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log.Error().Msgf(format, args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.log.Debug().Msgf(format, args...) }

// WithRequestID tags every line with the inbound X-Request-ID. Empty ids are skipped.
func (l *Logger) WithRequestID(id string) *Logger {
	if id == "" {
		return l
	}
	return l.WithField("request_id", id)
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{env: l.env, log: l.log.With().Interface(key, value).Logger()}
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.log.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{env: l.env, log: ctx.Logger()}
}
