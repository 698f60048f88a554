package gen

import (
	"errors"
	"slices"

	"go.uber.org/zap"
)

// Option configures generation.
type Option func(*Config) error

// WithKinds restricts generation to kinds.
func WithKinds(kinds ...Kind) Option {
	return func(c *Config) error {
		for _, k := range kinds {
			if !slices.Contains(AllKinds, k) {
				return NewConfigError("Kinds", k, "unknown kind")
			}
		}
		c.Kinds = append(c.Kinds[:0:0], kinds...)
		return nil
	}
}

// WithSubset selects the subset of contracts to yield.
// Supported subsets: "all", "minimal-cover".
func WithSubset(s Subset) Option {
	return func(c *Config) error {
		switch s {
		case SubsetAll, SubsetMinimalCover:
			c.Subset = s
			return nil
		default:
			return NewConfigError("Subset", s, "unsupported subset; use all or minimal-cover")
		}
	}
}

// WithWhere filters combinations with a boolean expression.
func WithWhere(expression string) Option {
	return func(c *Config) error {
		f, err := NewFilter(expression)
		if err != nil {
			return err
		}
		c.Where, c.filter = expression, f
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			l = zap.NewNop()
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options on top of the
// defaults: all kinds, every combination, one worker per CPU.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
