package kwargs

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalCapture(t *testing.T) {
	env := map[string]any{
		"x":    21,
		"z":    "zed",
		"user": map[string]any{"name": "Alice"},
	}

	tests := []struct {
		name     string
		capture  string
		names    []string
		expected []any
	}{
		{name: "bare names", capture: "x, z", names: []string{"x", "z"}, expected: []any{21, "zed"}},
		{name: "arithmetic", capture: "y=x * 2", names: []string{"y"}, expected: []any{42}},
		{name: "by reference marker", capture: "&z", names: []string{"z"}, expected: []any{"zed"}},
		{name: "string concatenation", capture: `s="a" + z`, names: []string{"s"}, expected: []any{"azed"}},
		{name: "nested commas", capture: "n=len([x, 2, 3]), x", names: []string{"n", "x"}, expected: []any{3, 21}},
		{name: "member access", capture: "who=user.name", names: []string{"who"}, expected: []any{"Alice"}},
		{name: "empty", capture: "", names: nil, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := EvalCapture(tt.capture, env)
			require.NoError(t, err)
			assert.Equal(t, len(tt.names), args.Len())
			if tt.names != nil {
				assert.Equal(t, tt.names, args.Names())
				assert.Equal(t, tt.expected, args.Values())
			}
		})
	}
}

func TestEvalCapture_RenderScenario(t *testing.T) {
	args, err := EvalCapture("foo=1, bar=foo + 1", map[string]any{"foo": 1})
	require.NoError(t, err)

	out, err := Format("{bar} {foo}", args)
	require.NoError(t, err)
	assert.Equal(t, "2 1", out)
}

func TestEvalCapture_Errors(t *testing.T) {
	t.Run("missing env entry", func(t *testing.T) {
		_, err := EvalCapture("count", map[string]any{"cnt": 1})
		require.Error(t, err)
		assert.True(t, IsNameNotFound(err))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		suggestions, _ := customErr.GetMetadata(MetaKeySuggestions)
		assert.Equal(t, "cnt", suggestions)
	})

	t.Run("nil env", func(t *testing.T) {
		_, err := EvalCapture("x", nil)
		assert.True(t, IsNameNotFound(err))
	})

	t.Run("compile failure", func(t *testing.T) {
		_, err := EvalCapture("y=x +", map[string]any{"x": 1})
		require.Error(t, err)
		assert.Equal(t, ErrCodeExpr, ErrorCode(err))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		name, _ := customErr.GetMetadata(MetaKeyName)
		expression, _ := customErr.GetMetadata(MetaKeyExpression)
		assert.Equal(t, "y", name)
		assert.Equal(t, "x +", expression)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := EvalCapture("y=unknown + 1", map[string]any{"x": 1})
		require.Error(t, err)
		assert.Equal(t, ErrCodeExpr, ErrorCode(err))
	})

	t.Run("rejected capture", func(t *testing.T) {
		_, err := EvalCapture("this", nil)
		assert.True(t, IsCaptureSyntaxError(err))
	})
}
