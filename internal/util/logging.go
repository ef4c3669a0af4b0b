package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging configures the global zerolog logger.
// format is "json" or "console"; anything else falls back to console.
func SetupLogging(level, format string, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339

	if strings.ToLower(format) == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "off", "disabled":
		return zerolog.Disabled
	case "error":
		return zerolog.ErrorLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger provides consistent logging across services
type Logger struct {
	prefix string
	zl     *zerolog.Logger
}

// NewLogger creates a new logger tagged with a component name.
// It writes through the global logger installed by SetupLogging.
func NewLogger(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

// NewLoggerWith creates a logger bound to a specific zerolog logger.
func NewLoggerWith(prefix string, zl zerolog.Logger) *Logger {
	return &Logger{prefix: prefix, zl: &zl}
}

func (l *Logger) base() zerolog.Logger {
	if l.zl != nil {
		return l.zl.With().Str("component", l.prefix).Logger()
	}
	return log.Logger.With().Str("component", l.prefix).Logger()
}

// Start logs the start of a process
func (l *Logger) Start(name string) {
	zl := l.base()
	zl.Debug().Msgf(LogStart, name)
}

// End logs the end of a process
func (l *Logger) End(name string) {
	zl := l.base()
	zl.Debug().Msgf(LogEnd, name)
}

// Section logs a section header
func (l *Logger) Section(name string) {
	zl := l.base()
	zl.Debug().Msgf(LogSection, name)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error) {
	zl := l.base()
	zl.Error().Err(err).Msg(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, err error) {
	zl := l.base()
	zl.Warn().Err(err).Msg(msg)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	zl := l.base()
	zl.Info().Msgf(format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	zl := l.base()
	zl.Debug().Msgf(format, args...)
}

// Success logs a success message
func (l *Logger) Success(msg string) {
	zl := l.base()
	zl.Info().Bool("ok", true).Msg(msg)
}

// KeyValue logs key-value pairs as fields of a single debug event
func (l *Logger) KeyValue(pairs ...interface{}) {
	zl := l.base()
	ev := zl.Debug()
	for i := 0; i < len(pairs)-1; i += 2 {
		ev = ev.Interface(fmt.Sprint(pairs[i]), pairs[i+1])
	}
	ev.Send()
}
