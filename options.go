package quill

import (
	"github.com/tsawler/quill/writer"
)

// Option configures object stream packing.
type Option func(*writer.Config)

// WithMaxObjectsPerStream sets the batching threshold: a new container is
// opened once the current one reaches n objects. Values below 1 are
// treated as 1.
func WithMaxObjectsPerStream(n int) Option {
	return func(c *writer.Config) {
		if n < 1 {
			n = 1
		}
		c.MaxObjectsPerStream = n
	}
}

// WithCompressionLevel sets the Flate compression level (0-9).
// Out-of-range values are clamped when compression runs.
func WithCompressionLevel(level int) Option {
	return func(c *writer.Config) {
		c.CompressionLevel = level
	}
}

// Disabled turns object stream packing off. A disabled packer rejects
// every AddObject call, signalling the caller to write objects directly.
func Disabled() Option {
	return func(c *writer.Config) {
		c.Enabled = false
	}
}

// buildConfig applies options on top of the defaults.
func buildConfig(opts []Option) writer.Config {
	config := writer.DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}
