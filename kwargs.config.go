package kwargs

import (
	"gopkg.in/yaml.v3"
)

// Config is the file form of the engine options.
//
//	unresolved_policy: append
//	suggestions: 5
//	cache:
//	  enabled: true
//	  max_entries: 512
type Config struct {
	UnresolvedPolicy string      `yaml:"unresolved_policy,omitempty"`
	Suggestions      *int        `yaml:"suggestions,omitempty"`
	Cache            CacheConfig `yaml:"cache,omitempty"`
}

// CacheConfig configures the compiled template cache.
type CacheConfig struct {
	// Enabled defaults to true when omitted.
	Enabled *bool `yaml:"enabled,omitempty"`

	// MaxEntries is the maximum number of cached templates.
	// When exceeded, the least recently used entry is evicted.
	// Default: 256.
	MaxEntries int `yaml:"max_entries,omitempty"`
}

// LoadConfig parses a YAML configuration document and validates it.
// An empty document yields the zero Config, which maps to the defaults.
func LoadConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the policy name and numeric limits.
func (c *Config) Validate() error {
	if _, err := ParseUnresolvedPolicy(c.UnresolvedPolicy); err != nil {
		return err
	}
	if c.Suggestions != nil && *c.Suggestions < 0 {
		return NewConfigError(ErrMsgConfigInvalid, nil).
			WithMetadata(MetaKeyField, ConfigFieldSuggestions)
	}
	if c.Cache.MaxEntries < 0 {
		return NewConfigError(ErrMsgConfigInvalid, nil).
			WithMetadata(MetaKeyField, ConfigFieldCacheMaxEntries)
	}
	return nil
}

// Options converts the configuration into engine options. Fields left
// unset keep the engine defaults.
func (c *Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var opts []Option
	if c.UnresolvedPolicy != "" {
		policy, _ := ParseUnresolvedPolicy(c.UnresolvedPolicy)
		opts = append(opts, WithUnresolvedPolicy(policy))
	}
	if c.Suggestions != nil {
		opts = append(opts, WithMaxSuggestions(*c.Suggestions))
	}
	if c.Cache.Enabled != nil && !*c.Cache.Enabled {
		opts = append(opts, WithoutTemplateCache())
	} else if c.Cache.MaxEntries > 0 {
		opts = append(opts, WithTemplateCache(c.Cache.MaxEntries))
	}
	return opts, nil
}

// ParseUnresolvedPolicy maps "error" or "append" to a policy. The empty
// string selects UnresolvedError.
func ParseUnresolvedPolicy(name string) (UnresolvedPolicy, error) {
	switch name {
	case "", PolicyNameError:
		return UnresolvedError, nil
	case PolicyNameAppend:
		return UnresolvedAppend, nil
	}
	return UnresolvedError, NewConfigError(ErrMsgUnknownPolicy, nil).
		WithMetadata(MetaKeyField, ConfigFieldPolicy).
		WithMetadata(MetaKeyActual, name)
}
