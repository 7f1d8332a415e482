package kwargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		cfg, err := LoadConfig([]byte(`
unresolved_policy: append
suggestions: 5
cache:
  max_entries: 10
`))
		require.NoError(t, err)
		assert.Equal(t, PolicyNameAppend, cfg.UnresolvedPolicy)

		opts, err := cfg.Options()
		require.NoError(t, err)
		assert.Len(t, opts, 3)

		engine := MustNew(opts...)
		assert.Equal(t, UnresolvedAppend, engine.config.policy)
		assert.Equal(t, 5, engine.config.maxSuggestions)
		require.NotNil(t, engine.cache)
		assert.Equal(t, 10, engine.cache.maxEntries)
	})

	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig(nil)
		require.NoError(t, err)

		opts, err := cfg.Options()
		require.NoError(t, err)
		assert.Empty(t, opts)

		engine := MustNew(opts...)
		assert.Equal(t, UnresolvedError, engine.config.policy)
		assert.Equal(t, DefaultMaxSuggestions, engine.config.maxSuggestions)
		require.NotNil(t, engine.cache)
		assert.Equal(t, DefaultCacheMaxEntries, engine.cache.maxEntries)
	})

	t.Run("cache disabled", func(t *testing.T) {
		cfg, err := LoadConfig([]byte("cache:\n  enabled: false\n"))
		require.NoError(t, err)

		opts, err := cfg.Options()
		require.NoError(t, err)
		assert.Nil(t, MustNew(opts...).cache)
	})

	t.Run("zero suggestions", func(t *testing.T) {
		cfg, err := LoadConfig([]byte("suggestions: 0\n"))
		require.NoError(t, err)

		opts, err := cfg.Options()
		require.NoError(t, err)
		assert.Equal(t, 0, MustNew(opts...).config.maxSuggestions)
	})
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown policy", data: "unresolved_policy: maybe\n"},
		{name: "negative suggestions", data: "suggestions: -1\n"},
		{name: "negative cache size", data: "cache:\n  max_entries: -5\n"},
		{name: "malformed yaml", data: "unresolved_policy: [\n"},
		{name: "wrong type", data: "suggestions: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, ErrCodeConfig, ErrorCode(err))
		})
	}
}

func TestParseUnresolvedPolicy(t *testing.T) {
	policy, err := ParseUnresolvedPolicy("")
	require.NoError(t, err)
	assert.Equal(t, UnresolvedError, policy)

	policy, err = ParseUnresolvedPolicy(PolicyNameError)
	require.NoError(t, err)
	assert.Equal(t, UnresolvedError, policy)

	policy, err = ParseUnresolvedPolicy(PolicyNameAppend)
	require.NoError(t, err)
	assert.Equal(t, UnresolvedAppend, policy)

	_, err = ParseUnresolvedPolicy("Append")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownPolicy)
}

func TestLoadBindings(t *testing.T) {
	t.Run("keeps document order", func(t *testing.T) {
		args, err := LoadBindings([]byte(`
name: Alice
count: 3
ratio: 0.5
tags: [a, b]
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "count", "ratio", "tags"}, args.Names())
		assert.Equal(t, []any{"Alice", 3, 0.5, []any{"a", "b"}}, args.Values())
	})

	t.Run("order is not alphabetical", func(t *testing.T) {
		args, err := LoadBindings([]byte("b: 1\na: 2\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, args.Names())

		out, err := Format("{a}{b}", args)
		require.NoError(t, err)
		assert.Equal(t, "21", out)
	})

	t.Run("empty document", func(t *testing.T) {
		args, err := LoadBindings(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, args.Len())
	})

	t.Run("not a mapping", func(t *testing.T) {
		_, err := LoadBindings([]byte("- a\n- b\n"))
		require.Error(t, err)
		assert.Equal(t, ErrCodeConfig, ErrorCode(err))
		assert.Contains(t, err.Error(), ErrMsgBindingsInvalid)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadBindings([]byte("a: [\n"))
		require.Error(t, err)
		assert.Equal(t, ErrCodeConfig, ErrorCode(err))
	})

	t.Run("complex key", func(t *testing.T) {
		_, err := LoadBindings([]byte("? [a, b]\n: 1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEmptyName)
	})
}

func TestLoadEnv(t *testing.T) {
	env, err := LoadEnv([]byte("x: 1\ny: hello\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 1, "y": "hello"}, env)

	args, err := EvalCapture("sum=x + 1, y", env)
	require.NoError(t, err)
	assert.Equal(t, []any{2, "hello"}, args.Values())
}
