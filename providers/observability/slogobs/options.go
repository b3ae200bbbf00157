package slogobs

import (
	"io"
	"log/slog"
	"os"
)

// Option is a functional option for configuring the Observer.
type Option func(*config)

type config struct {
	format Format
	level  slog.Level
	output io.Writer
	logger *slog.Logger // used as is when set
}

// WithFormat sets the log output format.
func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput sets the output writer for logs.
func WithOutput(output io.Writer) Option {
	return func(c *config) {
		c.output = output
	}
}

// WithLogger uses an existing slog.Logger. It takes precedence over the
// format, level and output options.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func defaultConfig() *config {
	return &config{
		format: FormatFromEnv(),
		level:  LogLevelFromEnv(),
		output: os.Stderr,
	}
}

func applyOptions(opts ...Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// NewLogger builds the slog.Logger an Observer created with opts would use.
func NewLogger(opts ...Option) *slog.Logger {
	cfg := applyOptions(opts...)
	if cfg.logger != nil {
		return cfg.logger
	}
	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	if cfg.format == FormatJSON {
		return slog.New(slog.NewJSONHandler(cfg.output, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(cfg.output, handlerOpts))
}
