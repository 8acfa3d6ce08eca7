// Package logger is the process-wide structured logger.
//
// Calls take a message followed by alternating keys and values:
//
//	logger.Info("Server starting", "address", addr)
//	logger.Error("Failed to load artifact", "error", err)
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger(os.Stderr, "info", "json")
}

// Init configures the global logger. Development environments default to
// console output and debug level unless level or format say otherwise.
func Init(env string, opts ...Option) {
	o := options{output: os.Stderr}
	if strings.EqualFold(env, "development") {
		o.level, o.format = "debug", "console"
	} else {
		o.level, o.format = "info", "json"
	}
	for _, opt := range opts {
		opt(&o)
	}

	mu.Lock()
	defer mu.Unlock()
	log = newLogger(o.output, o.level, o.format)
}

type options struct {
	level  string
	format string
	output io.Writer
}

type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		if level != "" {
			o.level = level
		}
	}
}

func WithFormat(format string) Option {
	return func(o *options) {
		if format != "" {
			o.format = format
		}
	}
}

func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

func newLogger(w io.Writer, level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func Debug(msg string, keyvals ...any) {
	emit(current().Debug(), msg, keyvals)
}

func Info(msg string, keyvals ...any) {
	emit(current().Info(), msg, keyvals)
}

func Warn(msg string, keyvals ...any) {
	emit(current().Warn(), msg, keyvals)
}

func Error(msg string, keyvals ...any) {
	emit(current().Error(), msg, keyvals)
}

// Fatal logs and exits the process with status 1.
func Fatal(msg string, keyvals ...any) {
	emit(current().Fatal(), msg, keyvals)
}

func emit(ev *zerolog.Event, msg string, keyvals []any) {
	if ev == nil {
		return
	}
	for i := 0; i < len(keyvals); i += 2 {
		if i+1 == len(keyvals) {
			ev = ev.Interface("extra", keyvals[i])
			break
		}
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		switch v := keyvals[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		case string:
			ev = ev.Str(key, v)
		case int:
			ev = ev.Int(key, v)
		case float64:
			ev = ev.Float64(key, v)
		case bool:
			ev = ev.Bool(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	ev.Msg(msg)
}
