// Package logging configures the diagnostic logger. Logs go to stderr and are
// off unless verbose output is requested, so stdout stays machine-readable.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type config struct {
	level   zerolog.Level
	console bool
	noColor bool
}

// Option configures a logger.
type Option func(*config)

// WithLevel sets the logging level.
func WithLevel(level zerolog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithConsole writes human-readable lines instead of JSON.
func WithConsole() Option {
	return func(c *config) {
		c.console = true
	}
}

// WithNoColor disables ANSI colors in console output.
func WithNoColor() Option {
	return func(c *config) {
		c.noColor = true
	}
}

// New returns a logger writing to out. Without WithLevel the logger is disabled.
func New(out io.Writer, opts ...Option) zerolog.Logger {
	c := config{level: zerolog.Disabled}
	for _, opt := range opts {
		opt(&c)
	}

	w := out
	if c.console {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    c.noColor,
		}
	}
	return zerolog.New(w).Level(c.level).With().Timestamp().Logger()
}

// Level returns the level for the --verbose flag.
func Level(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.Disabled
}
