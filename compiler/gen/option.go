package gen

import (
	"errors"

	"go.uber.org/zap"

	"github.com/syssam/scriptgen/axis"
)

// Config holds the global configuration of a generation run.
type Config struct {
	// Target is the root directory the per-language/per-platform
	// directories are created in.
	Target string
	// Axes are the values the run iterates over.
	Axes axis.Set
	// Logger receives progress and per-script failures.
	Logger *zap.Logger
}

// Option configures script generation.
type Option func(*Config) error

// NewConfig creates a Config with the default axes, the current directory as
// target and a no-op logger, then applies opts in order.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Target: ".",
		Axes:   axis.Default(),
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithTarget sets the output root directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return newConfigError("Target", errors.New("target directory cannot be empty"))
		}
		c.Target = dir
		return nil
	}
}

// WithAxes sets the axis values to generate for. The set must validate.
func WithAxes(s axis.Set) Option {
	return func(c *Config) error {
		if err := s.Validate(); err != nil {
			return newConfigError("Axes", err)
		}
		c.Axes = s
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return newConfigError("Logger", errors.New("logger cannot be nil"))
		}
		c.Logger = l
		return nil
	}
}
