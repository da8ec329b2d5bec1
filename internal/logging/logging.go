// Package logging builds the structured log handler shared by the registry
// commands.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Option configures NewHandler
type Option func(*options)

type options struct {
	level  slog.Leveler
	output io.Writer
}

// WithLevel sets the minimum level that is written. Defaults to info.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithOutput sets the destination. Defaults to stderr so that stdout stays
// free for command output such as `version --format json`.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// NewHandler returns a JSON handler that stamps records in UTC
func NewHandler(opts ...Option) slog.Handler {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}

	return slog.NewJSONHandler(o.output, &slog.HandlerOptions{
		Level:       o.level,
		ReplaceAttr: utcTime,
	})
}

func utcTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}
