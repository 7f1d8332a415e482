package kwargs

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestForward(t *testing.T) {
	params := []string{"a", "b", "c"}

	t.Run("positional then named", func(t *testing.T) {
		out, err := Forward(params, []any{1}, MustMake("c, b", 3, 2))
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2, 3}, out)
	})

	t.Run("all named", func(t *testing.T) {
		out, err := Forward(params, nil, MustMake("b, c, a", 2, 3, 1))
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2, 3}, out)
	})

	t.Run("all positional", func(t *testing.T) {
		out, err := Forward(params, []any{1, 2, 3}, nil)
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2, 3}, out)
	})

	t.Run("unknown names are ignored", func(t *testing.T) {
		out, err := Forward(params, []any{1, 2}, MustMake("c, zzz", 3, 4))
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2, 3}, out)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := Forward(params, []any{1}, MustMake("b", 2))
		require.Error(t, err)
		assert.True(t, IsCallError(err))
		assert.Contains(t, err.Error(), ErrMsgMissingArgument)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		param, _ := customErr.GetMetadata(MetaKeyParameter)
		assert.Equal(t, "c", param)
	})

	t.Run("positional repeated as keyword", func(t *testing.T) {
		_, err := Forward(params, []any{1}, MustMake("a, b, c", 1, 2, 3))
		require.Error(t, err)
		assert.True(t, IsCallError(err))
		assert.Contains(t, err.Error(), ErrMsgDuplicateArgument)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		param, _ := customErr.GetMetadata(MetaKeyParameter)
		assert.Equal(t, "a", param)
	})

	t.Run("too many positional", func(t *testing.T) {
		_, err := Forward(params, []any{1, 2, 3, 4}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgTooManyPositional)
	})
}

func TestNewFunc(t *testing.T) {
	tests := []struct {
		name   string
		fn     any
		params []string
		msg    string
	}{
		{name: "not a function", fn: 42, params: nil, msg: ErrMsgNotAFunction},
		{name: "nil function", fn: (func())(nil), params: nil, msg: ErrMsgNotAFunction},
		{name: "too few names", fn: func(a, b int) {}, params: []string{"a"}, msg: ErrMsgParamCount},
		{name: "variadic", fn: func(a ...int) {}, params: []string{"a"}, msg: ErrMsgParamCount},
		{name: "empty name", fn: func(a int) {}, params: []string{""}, msg: ErrMsgEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFunc("f", tt.fn, tt.params...)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFunc_Call(t *testing.T) {
	area := MustNewFunc("area", func(w, h int) int { return w * h }, "w", "h")
	assert.Equal(t, "area", area.Name())
	assert.Equal(t, []string{"w", "h"}, area.Params())

	tests := []struct {
		name       string
		args       *Args
		positional []any
		expected   []any
	}{
		{name: "positional and named", args: MustMake("h", 3), positional: []any{4}, expected: []any{12}},
		{name: "named only", args: MustMake("h, w", 5, 2), positional: nil, expected: []any{10}},
		{name: "positional only", args: nil, positional: []any{6, 7}, expected: []any{42}},
		{name: "extra names ignored", args: MustMake("h, color", 3, "red"), positional: []any{4}, expected: []any{12}},
		{name: "numeric conversion", args: MustMake("w, h", int64(2), 3.0), positional: nil, expected: []any{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := area.Call(tt.args, tt.positional...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFunc_Call_Errors(t *testing.T) {
	area := MustNewFunc("area", func(w, h int) int { return w * h }, "w", "h")

	t.Run("duplicate", func(t *testing.T) {
		_, err := area.Call(MustMake("w", 1), 4)
		require.Error(t, err)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		function, _ := customErr.GetMetadata(MetaKeyFunction)
		assert.Equal(t, "area", function)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := area.Call(nil, 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgMissingArgument)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := area.Call(MustMake("w, h", "wide", 1))
		require.Error(t, err)
		assert.True(t, IsCallError(err))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		param, _ := customErr.GetMetadata(MetaKeyParameter)
		expected, _ := customErr.GetMetadata(MetaKeyExpected)
		actual, _ := customErr.GetMetadata(MetaKeyActual)
		assert.Equal(t, "w", param)
		assert.Equal(t, "int", expected)
		assert.Equal(t, "string", actual)
	})

	t.Run("lossy numeric conversion", func(t *testing.T) {
		small := MustNewFunc("small", func(w int32, h uint) uint { return uint(w) * h }, "w", "h")

		tests := []struct {
			name string
			args *Args
		}{
			{name: "fractional float", args: MustMake("w, h", 2.5, 1)},
			{name: "int64 overflow", args: MustMake("w, h", int64(1)<<62, 1)},
			{name: "negative into unsigned", args: MustMake("w, h", 1, -1)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := small.Call(tt.args)
				require.Error(t, err)
				assert.True(t, IsCallError(err))
				assert.Contains(t, err.Error(), ErrMsgArgumentType)
			})
		}

		_, err := area.Call(MustMake("w, h", 2.5, 1))
		require.Error(t, err)
		assert.True(t, IsCallError(err))
	})

	t.Run("nil for non-nillable parameter", func(t *testing.T) {
		_, err := area.Call(MustMake("w, h", nil, 1))
		require.Error(t, err)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		actual, _ := customErr.GetMetadata(MetaKeyActual)
		assert.Equal(t, "nil", actual)
	})
}

func TestFunc_Call_Results(t *testing.T) {
	errDivByZero := errors.New("division by zero")
	div := MustNewFunc("div", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errDivByZero
		}
		return a / b, nil
	}, "a", "b")

	out, err := div.Call(MustMake("b, a", 4.0, 10.0))
	require.NoError(t, err)
	assert.Equal(t, []any{2.5}, out)

	_, err = div.Call(MustMake("b", 0.0), 1.0)
	assert.ErrorIs(t, err, errDivByZero)

	t.Run("no results", func(t *testing.T) {
		called := false
		f := MustNewFunc("noop", func(s string) { called = s == "x" }, "s")
		out, err := f.Call(MustMake("s", "x"))
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.True(t, called)
	})

	t.Run("nil for nillable parameter", func(t *testing.T) {
		f := MustNewFunc("size", func(m map[string]int) int { return len(m) }, "m")
		out, err := f.Call(MustMake("m", nil))
		require.NoError(t, err)
		assert.Equal(t, []any{0}, out)
	})
}

func TestFunc_WithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	f := MustNewFunc("id", func(v int) int { return v }, "v").WithLogger(zap.New(core))

	_, err := f.Call(MustMake("v", 1))
	require.NoError(t, err)

	entries := logs.FilterMessage(LogMsgForward).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "id", entries[0].ContextMap()[LogFieldFunction])
}
