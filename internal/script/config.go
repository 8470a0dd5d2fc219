package script

import (
	"io"
)

// DefaultConfig is the default configuration for the Runner.
var DefaultConfig = Config{
	Output:    io.Discard,
	Reference: false,
}

// Config contains the optional parameters of a Runner.
type Config struct {
	// Output receives one line per query operation.
	Output io.Writer
	// Reference mirrors every operation onto a second, independent deque
	// implementation and fails as soon as the two disagree.
	Reference bool
}

// Option is an option that can be given to the runner to configure optional
// parameters on initialization.
type Option func(*Config)

// WithOutput sets the writer that query results are written to.
func WithOutput(w io.Writer) Option {
	return func(cfg *Config) {
		if w != nil {
			cfg.Output = w
		}
	}
}

// WithReference enables or disables the reference cross-check.
func WithReference(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Reference = enabled
	}
}
