package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level represents logging level
type Level = zerolog.Level

// Logger levels
const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Fields is structured log context. The map-typed signatures below are
// deliberate: zerolog's Event.Fields silently truncates an odd-length
// key/value slice, so a variadic ...interface{} API would let a single
// misplaced argument drop every field without a trace.
type Fields map[string]interface{}

// Config holds logger configuration
type Config struct {
	Level      Level
	TimeFormat string
	Output     io.Writer
}

// Logger wraps zerolog.Logger
type Logger struct {
	zl zerolog.Logger
}

// NewLogger creates a new logger instance
func NewLogger(cfg *Config) *Logger {
	if cfg == nil {
		cfg = &Config{
			Level:      InfoLevel,
			TimeFormat: time.RFC3339,
			Output:     os.Stdout,
		}
	}

	output := zerolog.ConsoleWriter{
		Out:        cfg.Output,
		TimeFormat: cfg.TimeFormat,
		NoColor:    true,
	}

	logger := zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Caller().
		Logger()

	return &Logger{zl: logger}
}

// WithFields adds fields to logger
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{zl: l.zl.With().Fields(map[string]interface{}(fields)).Logger()}
}

func (l *Logger) Info(msg string, fields ...Fields) {
	emit(l.zl.Info(), msg, fields)
}

func (l *Logger) Warn(msg string, fields ...Fields) {
	emit(l.zl.Warn(), msg, fields)
}

func (l *Logger) Error(err error, msg string, fields ...Fields) {
	emit(l.zl.Error().Err(err), msg, fields)
}

func (l *Logger) Fatal(err error, msg string, fields ...Fields) {
	emit(l.zl.Fatal().Err(err), msg, fields)
}

func (l *Logger) Debug(msg string, fields ...Fields) {
	emit(l.zl.Debug(), msg, fields)
}

func emit(event *zerolog.Event, msg string, fields []Fields) {
	for _, f := range fields {
		event = event.Fields(map[string]interface{}(f))
	}
	event.Msg(msg)
}
