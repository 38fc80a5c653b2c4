package huffman

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
	"github.com/arloliu/hufftree/internal/options"
)

// Config holds Processor settings.
type Config struct {
	verbosity format.Verbosity
	logger    *slog.Logger
	attrs     []slog.Attr
}

// Option configures a Processor.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		verbosity: format.VerbosityNone,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// WithVerbosity sets how much diagnostic output the processor logs.
//
// VerbosityLow logs one summary per phase. VerbosityHigh also logs every symbol
// frequency and code, and a dump of the tree.
func WithVerbosity(v format.Verbosity) Option {
	return options.New(func(c *Config) error {
		if !v.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidVerbosity, v)
		}
		c.verbosity = v

		return nil
	})
}

// WithLogger sets the logger diagnostics are written to. Nothing is logged unless
// WithVerbosity is also given.
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(c *Config) error {
		if logger == nil {
			return errs.ErrNilLogger
		}
		c.logger = logger

		return nil
	})
}

// WithLogAttrs adds attrs to every record the processor logs, in any order
// relative to WithLogger.
func WithLogAttrs(attrs ...slog.Attr) Option {
	return options.NoError(func(c *Config) {
		c.attrs = append(c.attrs, attrs...)
	})
}
