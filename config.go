package research

import "github.com/coregx/research/literal"

// Config controls compilation and matching.
//
// Example:
//
//	config := research.DefaultConfig()
//	config.MaxBacktrack = 1_000_000 // give up on pathological patterns
//	re, err := research.CompileWithConfig(`\(a*\)*b`, syntax.Options{}, config)
type Config struct {
	// EnablePrefilter lets searches skip to positions where a literal
	// prefix or a possible first byte of the pattern occurs.
	// Default: true
	EnablePrefilter bool

	// MaxLiterals limits the number of prefix literals the prefilter
	// searches for at once. Case-insensitive patterns need one literal per
	// case variant of their prefix.
	// Default: 64
	MaxLiterals int

	// MaxBacktrack limits the number of alternatives one Execute call may
	// resume before failing with backtrack.ErrBacktrackLimit. Zero means no
	// limit.
	// Default: 0
	MaxBacktrack int

	// CacheSize is the number of compiled patterns a Searcher keeps for
	// reuse. Zero disables caching.
	// Default: 32
	CacheSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MaxLiterals:     64,
		MaxBacktrack:    0,
		CacheSize:       32,
	}
}

// Validate checks the configuration and returns a *ConfigError describing the
// first invalid field.
func (c Config) Validate() error {
	if c.EnablePrefilter && (c.MaxLiterals < 1 || c.MaxLiterals > 1_000) {
		return &ConfigError{
			Field:   "MaxLiterals",
			Message: "must be between 1 and 1,000",
		}
	}
	if c.MaxBacktrack < 0 {
		return &ConfigError{
			Field:   "MaxBacktrack",
			Message: "must not be negative",
		}
	}
	if c.CacheSize < 0 || c.CacheSize > 100_000 {
		return &ConfigError{
			Field:   "CacheSize",
			Message: "must be between 0 and 100,000",
		}
	}
	return nil
}

func (c Config) extractorConfig() literal.ExtractorConfig {
	ec := literal.DefaultConfig()
	ec.MaxLiterals = c.MaxLiterals
	return ec
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "research: invalid config: " + e.Field + ": " + e.Message
}
