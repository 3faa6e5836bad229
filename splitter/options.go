package splitter

import "github.com/sonali8434/IRanges/irerrors"

// Option is a function that configures a Splitter.
type Option func(*splitConfig) error

// splitConfig holds configuration collected from options before a Splitter
// is constructed.
type splitConfig struct {
	buffer       *IntBuffer
	capacityHint int
	logger       Logger
}

// WithBuffer uses a caller-owned buffer for accumulation. This lets one
// buffer be shared across several Splitters, as long as only one of them
// splits at a time.
//
// Cannot be combined with WithCapacityHint.
func WithBuffer(buf *IntBuffer) Option {
	return func(cfg *splitConfig) error {
		if buf == nil {
			return &irerrors.ConfigError{Field: "buffer", Message: "buffer cannot be nil"}
		}
		cfg.buffer = buf
		return nil
	}
}

// WithCapacityHint pre-sizes the Splitter's own buffer for callers that know
// the typical token count up front. A hint of 0 allocates lazily.
//
// Cannot be combined with WithBuffer.
func WithCapacityHint(n int) Option {
	return func(cfg *splitConfig) error {
		if n < 0 {
			return &irerrors.ConfigError{Field: "capacityHint", Value: n, Message: "capacity hint cannot be negative"}
		}
		cfg.capacityHint = n
		return nil
	}
}

// WithLogger sets the logger used for diagnostic output.
// The default is a no-op logger.
func WithLogger(logger Logger) Option {
	return func(cfg *splitConfig) error {
		if logger == nil {
			return &irerrors.ConfigError{Field: "logger", Message: "logger cannot be nil"}
		}
		cfg.logger = logger
		return nil
	}
}

// applyOptions runs each option in order and validates the combination.
func applyOptions(opts ...Option) (*splitConfig, error) {
	cfg := &splitConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.buffer != nil && cfg.capacityHint > 0 {
		return nil, &irerrors.ConfigError{Message: "cannot combine WithBuffer and WithCapacityHint"}
	}
	return cfg, nil
}
