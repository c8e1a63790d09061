package peg

import "github.com/hashicorp/go-hclog"

// A ParseOption modifies the behaviour of a single Parse call.
type ParseOption func(config *parseConfig)

type parseConfig struct {
	requireFull bool
	logCapacity int
	logger      hclog.Logger
}

func newParseConfig(options []ParseOption) *parseConfig {
	config := &parseConfig{
		requireFull: true,
		logger:      hclog.NewNullLogger(),
	}
	for _, option := range options {
		option(config)
	}
	return config
}

// AllowPartial accepts a parse that stops before the end of input. The
// default is to treat unconsumed trailing input as a failure.
func AllowPartial() ParseOption {
	return func(config *parseConfig) {
		config.requireFull = false
	}
}

// WithLogCapacity preallocates the match log. A capacity hint in the order
// of the input length avoids repeated growth on match-heavy grammars.
func WithLogCapacity(n int) ParseOption {
	return func(config *parseConfig) {
		config.logCapacity = n
	}
}

// WithLogger emits per-rule tracing to logger at Trace level.
func WithLogger(logger hclog.Logger) ParseOption {
	return func(config *parseConfig) {
		if logger != nil {
			config.logger = logger
		}
	}
}
