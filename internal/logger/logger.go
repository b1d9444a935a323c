package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "idxboard"

var (
	base zerolog.Logger
	// output receives log lines; tests swap it through SetOutput.
	output io.Writer = os.Stdout
)

// Init configures the global JSON logger.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	level := parseLevel(getenv("LOG_LEVEL", "info"))
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")

	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := output
	if pretty {
		w = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Str("service", serviceName).Logger().Level(level)
}

// L returns the global logger. Call Init() once on startup.
func L() *zerolog.Logger {
	if base.GetLevel() == zerolog.NoLevel {
		Init()
	}
	return &base
}

// For returns a child logger tagged with the component that emits the events,
// e.g. logger.For("resolver.news").
func For(component string) *zerolog.Logger {
	l := L().With().Str("component", component).Logger()
	return &l
}

// SetOutput redirects the global logger to w and re-initializes it.
func SetOutput(w io.Writer) {
	output = w
	Init()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
