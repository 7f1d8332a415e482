package kwargs

import (
	"github.com/itsatony/go-kwargs/internal"
	"go.uber.org/zap"
)

// UnresolvedPolicy decides what Compile does with a placeholder that names
// no bound argument.
type UnresolvedPolicy = internal.UnresolvedPolicy

const (
	// UnresolvedError rejects the template with a placeholder resolution error.
	UnresolvedError = internal.UnresolvedError
	// UnresolvedAppend rewrites the placeholder to the index one past the last
	// name, leaving it for the caller to supply an extra trailing value.
	UnresolvedAppend = internal.UnresolvedAppend
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	formatter       Formatter
	policy          UnresolvedPolicy
	cacheEnabled    bool
	cacheMaxEntries int
	maxSuggestions  int
	logger          *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		formatter:       DefaultFormatter(),
		policy:          UnresolvedError,
		cacheEnabled:    true,
		cacheMaxEntries: DefaultCacheMaxEntries,
		maxSuggestions:  DefaultMaxSuggestions,
		logger:          nil,
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithFormatter replaces the positional formatter used by Render.
// A nil formatter is ignored.
func WithFormatter(f Formatter) Option {
	return func(c *engineConfig) {
		if f != nil {
			c.formatter = f
		}
	}
}

// WithUnresolvedPolicy sets how unknown placeholder names are handled.
// Default: UnresolvedError
func WithUnresolvedPolicy(policy UnresolvedPolicy) Option {
	return func(c *engineConfig) {
		c.policy = policy
	}
}

// WithTemplateCache enables the compiled template cache with the given
// capacity. Values <= 0 use DefaultCacheMaxEntries.
func WithTemplateCache(maxEntries int) Option {
	return func(c *engineConfig) {
		c.cacheEnabled = true
		c.cacheMaxEntries = maxEntries
	}
}

// WithoutTemplateCache compiles every template from scratch.
func WithoutTemplateCache() Option {
	return func(c *engineConfig) {
		c.cacheEnabled = false
	}
}

// WithMaxSuggestions limits the "did you mean" names attached to lookup and
// placeholder errors. Use 0 to disable suggestions.
// Default: 3
func WithMaxSuggestions(n int) Option {
	return func(c *engineConfig) {
		if n >= 0 {
			c.maxSuggestions = n
		}
	}
}
