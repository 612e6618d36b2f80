package engine

// Config holds the engine configuration.
type Config struct {
	// Logger receives trace-level detail about engine decisions (optional).
	Logger Logger

	// WordsPerFrame is the device's configuration frame width in 32-bit
	// words, used to split an FDRI payload into individual frames.
	WordsPerFrame int

	// Callbacks are invoked as the engine observes state transitions
	// (all optional).
	Callbacks Callbacks

	// ExpectedIDCode, when HaveExpectedIDCode is set, is compared against
	// every IDCODE write the engine observes; a disagreement raises
	// *IdcodeMismatchError just as a disagreement between two IDCODE
	// writes in the same SLR does.
	ExpectedIDCode     uint32
	HaveExpectedIDCode bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Logger:        noopLogger{},
		WordsPerFrame: 101,
	}
}

// Option is a functional option for configuring the Engine.
type Option func(*Config)

// WithLogger sets a logger for engine trace output.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithWordsPerFrame sets the device's configuration frame width.
// Default is 101 (7-series). UltraScale+ devices should pass 123.
func WithWordsPerFrame(words int) Option {
	return func(c *Config) {
		if words > 0 {
			c.WordsPerFrame = words
		}
	}
}

// WithCallbacks sets the engine's observation callbacks.
func WithCallbacks(cb Callbacks) Option {
	return func(c *Config) {
		c.Callbacks = cb
	}
}

// WithExpectedIDCode asserts that every IDCODE write the engine observes
// must equal idcode; a disagreement raises *IdcodeMismatchError.
func WithExpectedIDCode(idcode uint32) Option {
	return func(c *Config) {
		c.ExpectedIDCode = idcode
		c.HaveExpectedIDCode = true
	}
}
