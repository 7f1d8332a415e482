package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPositional(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		values   []any
		expected string
	}{
		{name: "empty", format: "", values: nil, expected: ""},
		{name: "plain text", format: "hello", values: nil, expected: "hello"},
		{name: "auto fields", format: "{} {}", values: []any{42, 3}, expected: "42 3"},
		{name: "manual fields", format: "{1} {0}", values: []any{3, 42}, expected: "42 3"},
		{name: "repeated field", format: "{0}{0}", values: []any{"ab"}, expected: "abab"},
		{name: "escaped braces", format: "{{x}}", values: nil, expected: "{x}"},
		{name: "escaped span with nested field", format: "{{x{x}}}", values: nil, expected: "{x{x}}"},
		{name: "escaped between fields", format: "{0}{{x{x}}}{0}", values: []any{1}, expected: "1{x{x}}1"},
		{name: "escaped close", format: "a }} b", values: nil, expected: "a } b"},
		{name: "slice value", format: "list: {0}", values: []any{[]int{1, 2, 3}}, expected: "list: [1 2 3]"},
		{name: "nil value", format: "{0}", values: []any{nil}, expected: "<nil>"},
		{name: "spec width", format: "[{0:5}]", values: []any{42}, expected: "[   42]"},
		{name: "spec string width", format: "[{0:5}]", values: []any{"ab"}, expected: "[ab   ]"},
		{name: "spec precision", format: "{0:.2f}", values: []any{3.14159}, expected: "3.14"},
		{name: "auto with spec", format: "{:x}-{:X}", values: []any{255, 255}, expected: "ff-FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatPositional(tt.format, tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormatPositional_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		values  []any
		message string
	}{
		{name: "unterminated field", format: "{0", values: []any{1}, message: ErrMsgUnterminatedField},
		{name: "unmatched close", format: "a } b", values: nil, message: ErrMsgUnmatchedCloseBrace},
		{name: "auto then manual", format: "{} {0}", values: []any{1}, message: ErrMsgMixedIndexing},
		{name: "manual then auto", format: "{0} {}", values: []any{1}, message: ErrMsgMixedIndexing},
		{name: "named field", format: "{x}", values: []any{1}, message: ErrMsgInvalidFieldIndex},
		{name: "bad spec", format: "{0:zz}", values: []any{1}, message: ErrMsgInvalidSpec},
		{name: "width overflows int", format: "{0:99999999999999999999}", values: []any{"a"}, message: ErrMsgInvalidSpec},
		{name: "width above limit", format: "{0:>5000}", values: []any{"a"}, message: ErrMsgInvalidSpec},
		{name: "integer type for string", format: "{0:d}", values: []any{"a"}, message: ErrMsgSpecTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FormatPositional(tt.format, tt.values)
			require.Error(t, err)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.message, formatErr.Message)
		})
	}
}

func TestFormatPositional_IndexOutOfRange(t *testing.T) {
	_, err := FormatPositional("{0} {2}", []any{1, 2})
	require.Error(t, err)

	var indexErr *IndexError
	require.True(t, errors.As(err, &indexErr))
	assert.Equal(t, 2, indexErr.Index)
	assert.Equal(t, 2, indexErr.Arity)
	assert.Contains(t, err.Error(), ErrMsgIndexOutOfRange)

	_, err = FormatPositional("{} {}", []any{1})
	require.True(t, errors.As(err, &indexErr))
	assert.Equal(t, 1, indexErr.Index)
}

func TestCompileThenFormat_RoundTrip(t *testing.T) {
	names := []string{"foo", "bar", "baz"}
	values := []any{1, "two", 3.5}

	tests := []struct {
		named  string
		manual string
	}{
		{named: "{foo} {bar}", manual: "{0} {1}"},
		{named: "{bar} {foo}", manual: "{1} {0}"},
		{named: "{baz:>6.1f}|{foo:03}", manual: "{2:>6.1f}|{0:03}"},
		{named: "{{foo}} = {foo}", manual: "{{foo}} = {0}"},
	}

	for _, tt := range tests {
		t.Run(tt.named, func(t *testing.T) {
			compiled, err := CompileFormat(tt.named, names, UnresolvedError)
			require.NoError(t, err)

			got, err := FormatPositional(compiled.Format, values)
			require.NoError(t, err)
			want, err := FormatPositional(tt.manual, values)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		text     string
		expected Spec
	}{
		{text: "", expected: Spec{Fill: ' ', Precision: -1}},
		{text: ">10", expected: Spec{Fill: ' ', Align: '>', Width: 10, Precision: -1}},
		{text: "*^7", expected: Spec{Fill: '*', Align: '^', Width: 7, Precision: -1}},
		{text: "<<3", expected: Spec{Fill: '<', Align: '<', Width: 3, Precision: -1}},
		{text: "+08.3f", expected: Spec{Fill: ' ', Sign: '+', ZeroPad: true, Width: 8, Precision: 3, Type: 'f'}},
		{text: "#x", expected: Spec{Fill: ' ', Alternate: true, Precision: -1, Type: 'x'}},
		{text: ".5", expected: Spec{Fill: ' ', Precision: 5}},
		{text: "?", expected: Spec{Fill: ' ', Precision: -1, Type: '?'}},
		{text: "é>4", expected: Spec{Fill: 'é', Align: '>', Width: 4, Precision: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			spec, err := ParseSpec(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spec)
		})
	}
}

func TestParseSpec_Invalid(t *testing.T) {
	for _, text := range []string{"zz", ".", ".f", "5q", ">10dd", "99999999999999999999", "5000", ".99999999999999999999", "0.5000f"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseSpec(text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), ErrMsgInvalidSpec)
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		spec     string
		expected string
	}{
		{name: "no spec", value: 42, spec: "", expected: "42"},
		{name: "right align", value: "ab", spec: ">5", expected: "   ab"},
		{name: "left align number", value: 7, spec: "<4", expected: "7   "},
		{name: "center with fill", value: "ab", spec: "*^7", expected: "**ab***"},
		{name: "zero pad negative", value: -42, spec: "06", expected: "-00042"},
		{name: "plus sign", value: 5, spec: "+", expected: "+5"},
		{name: "space sign", value: 5, spec: " d", expected: " 5"},
		{name: "alternate hex", value: 255, spec: "#x", expected: "0xff"},
		{name: "binary", value: 5, spec: "b", expected: "101"},
		{name: "octal", value: 8, spec: "o", expected: "10"},
		{name: "exponent", value: 1234.5, spec: ".2e", expected: "1.23e+03"},
		{name: "general precision", value: 3.14159, spec: ".3", expected: "3.14"},
		{name: "string truncation", value: "abcdef", spec: ".3", expected: "abc"},
		{name: "debug quoting", value: "a\"b", spec: "?", expected: `"a\"b"`},
		{name: "char", value: 'A', spec: "c", expected: "A"},
		{name: "width smaller than text", value: "abcdef", spec: "3", expected: "abcdef"},
		{name: "unicode width counts runes", value: "héé", spec: ">5", expected: "  héé"},
		{name: "width at limit", value: "", spec: "4096", expected: strings.Repeat(" ", MaxSpecWidth)},
		{name: "fixed point int", value: 3, spec: ".2f", expected: "3.00"},
		{name: "exponent uint", value: uint8(5), spec: "e", expected: "5.000000e+00"},
		{name: "string type for int", value: 42, spec: ">4s", expected: "  42"},
		{name: "hex string", value: "hi", spec: "x", expected: "6869"},
		{name: "debug float", value: 2.5, spec: "?", expected: `"2.5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatValue(tt.value, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormatValue_TypeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		value any
		spec  string
	}{
		{name: "decimal string", value: "abc", spec: "d"},
		{name: "binary float", value: 2.5, spec: "b"},
		{name: "char string", value: "A", spec: "c"},
		{name: "fixed point string", value: "3", spec: ".2f"},
		{name: "exponent nil", value: nil, spec: "e"},
		{name: "pointer int", value: 1, spec: "p"},
		{name: "hex bool", value: true, spec: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatValue(tt.value, tt.spec)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Contains(t, err.Error(), ErrMsgSpecTypeMismatch)
			assert.NotContains(t, err.Error(), "%!")
		})
	}
}
