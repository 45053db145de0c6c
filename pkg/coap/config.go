package coap

import "github.com/pion/logging"

// Config holds the tunables for a new owned Codec. The zero Config is
// valid; New fills in defaults exactly like matter.NodeConfig.applyDefaults
// does for its much larger config surface.
type Config struct {
	// LoggerFactory produces the scoped logger New passes to the Codec.
	// If nil, logging.NewDefaultLoggerFactory() is used, which is silent
	// at the Trace level this package logs at.
	LoggerFactory logging.LoggerFactory

	// InitialCapacity is the backing buffer's starting capacity. If zero,
	// a small default sized for a typical request PDU is used.
	InitialCapacity int

	// GrowthIncrement is added to the buffer's current capacity whenever
	// an owned buffer must grow; if a single mutation needs more than
	// that, the buffer grows to exactly what it needs. This amortizes
	// repeated small growths (e.g. several add_option calls in a row)
	// against repeated reallocation. If zero, a small default is used.
	GrowthIncrement int
}

// CodecOption configures a Config. It follows the functional-options shape the
// rest of the Go ecosystem uses for optional constructor arguments.
type CodecOption func(*Config)

// WithLoggerFactory sets the logger factory a Codec uses for its trace
// instrumentation.
func WithLoggerFactory(f logging.LoggerFactory) CodecOption {
	return func(c *Config) { c.LoggerFactory = f }
}

// WithInitialCapacity sets the starting capacity of an owned Codec's
// buffer.
func WithInitialCapacity(n int) CodecOption {
	return func(c *Config) { c.InitialCapacity = n }
}

// WithGrowthIncrement sets how much an owned Codec adds to its buffer's
// capacity each time it must grow (or less extra, if a single mutation
// needs more than that).
func WithGrowthIncrement(n int) CodecOption {
	return func(c *Config) { c.GrowthIncrement = n }
}

const defaultInitialCapacity = 32

// applyDefaults fills in zero-valued fields with the package defaults, in
// the style of matter.NodeConfig.applyDefaults.
func (c *Config) applyDefaults() {
	if c.LoggerFactory == nil {
		c.LoggerFactory = logging.NewDefaultLoggerFactory()
	}
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = defaultInitialCapacity
	}
	if c.GrowthIncrement <= 0 {
		c.GrowthIncrement = defaultGrowthIncrement
	}
}

func buildConfig(opts []CodecOption) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.applyDefaults()
	return cfg
}
