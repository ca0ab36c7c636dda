package ingest

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/magn/schema"
)

// ErrOptionViolation is returned when an Option receives an invalid value.
var ErrOptionViolation = errors.New("ingest: option violation")

// Options configures ReadSQLite.
type Options struct {
	// MaxRows caps the rows read per table; 0 reads everything.
	MaxRows int

	// Keys, when set, replaces the key declarations of the tables it names.
	Keys *schema.Keys

	// Logger receives one record per table read.
	Logger *slog.Logger

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with no row cap and a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// WithMaxRows caps the rows read per table. Negative values are rejected.
func WithMaxRows(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errors.Join(ErrOptionViolation, errors.New("max rows must be >= 0"))
			return
		}
		o.MaxRows = n
	}
}

// WithKeys overrides the key declarations read from the database.
func WithKeys(k *schema.Keys) Option {
	return func(o *Options) { o.Keys = k }
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
