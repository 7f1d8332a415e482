package internal

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Spec is a parsed format spec: [[fill]align][sign][#][0][width][.precision][type]
type Spec struct {
	Fill      rune
	Align     byte // '<', '>', '^' or 0 for the value's default alignment
	Sign      byte // '+', '-', ' ' or 0
	Alternate bool
	ZeroPad   bool
	Width     int
	Precision int // -1 when absent
	Type      byte
}

// Format spec type characters and the fmt verb each one maps to
var specVerbs = map[byte]byte{
	0:   'v',
	'v': 'v',
	's': 's',
	'd': 'd',
	'b': 'b',
	'o': 'o',
	'x': 'x',
	'X': 'X',
	'e': 'e',
	'E': 'E',
	'f': 'f',
	'F': 'F',
	'g': 'g',
	'G': 'G',
	'c': 'c',
	'p': 'p',
	'?': 'q',
}

// ParseSpec parses the text after ':' in a replacement field
func ParseSpec(text string) (Spec, error) {
	spec := Spec{Fill: CharSpace, Precision: -1}
	rest := text

	if r, size := utf8.DecodeRuneInString(rest); size > 0 && size < len(rest) && isAlign(rest[size]) {
		spec.Fill = r
		spec.Align = rest[size]
		rest = rest[size+1:]
	} else if rest != "" && isAlign(rest[0]) {
		spec.Align = rest[0]
		rest = rest[1:]
	}

	if rest != "" && (rest[0] == '+' || rest[0] == '-' || rest[0] == CharSpace) {
		spec.Sign = rest[0]
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '#' {
		spec.Alternate = true
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '0' {
		spec.ZeroPad = true
		rest = rest[1:]
	}

	digits := leadingDigits(rest)
	if digits != "" {
		width, ok := specNumber(digits)
		if !ok {
			return spec, &FormatError{Message: ErrMsgInvalidSpec, Field: text}
		}
		spec.Width = width
		rest = rest[len(digits):]
	}

	if rest != "" && rest[0] == CharDot {
		digits = leadingDigits(rest[1:])
		precision, ok := specNumber(digits)
		if !ok {
			return spec, &FormatError{Message: ErrMsgInvalidSpec, Field: text}
		}
		spec.Precision = precision
		rest = rest[1+len(digits):]
	}

	switch len(rest) {
	case 0:
	case 1:
		if _, ok := specVerbs[rest[0]]; !ok || rest[0] == 0 {
			return spec, &FormatError{Message: ErrMsgInvalidSpec, Field: text}
		}
		spec.Type = rest[0]
	default:
		return spec, &FormatError{Message: ErrMsgInvalidSpec, Field: text}
	}

	return spec, nil
}

// FormatValue renders value according to the spec text
func FormatValue(value any, text string) (string, error) {
	if text == "" {
		return fmt.Sprint(value), nil
	}
	spec, err := ParseSpec(text)
	if err != nil {
		return "", err
	}
	return spec.Apply(value)
}

// Apply renders value with fmt and pads it to the spec width. A type that
// does not apply to the value's kind, such as 'd' for a string, is an error.
func (s Spec) Apply(value any) (string, error) {
	value, ok := s.operand(value)
	if !ok {
		return "", &FormatError{Message: ErrMsgSpecTypeMismatch, Field: string(s.Type)}
	}

	var verb strings.Builder
	verb.WriteByte('%')
	switch s.Sign {
	case '+':
		verb.WriteByte('+')
	case CharSpace:
		verb.WriteByte(CharSpace)
	}
	if s.Alternate {
		verb.WriteByte('#')
	}

	// Zero padding without explicit alignment is sign-aware, so leave it to fmt.
	fmtPads := s.ZeroPad && s.Align == 0 && s.Width > 0
	if fmtPads {
		verb.WriteByte('0')
		verb.WriteString(strconv.Itoa(s.Width))
	}
	if s.Precision >= 0 {
		verb.WriteByte(CharDot)
		verb.WriteString(strconv.Itoa(s.Precision))
	}
	verb.WriteByte(specVerbs[s.Type])

	out := fmt.Sprintf(verb.String(), value)
	if fmtPads {
		return out, nil
	}
	return s.pad(out, isNumeric(value)), nil
}

// operand checks value against the spec type. Integers are widened to
// float64 for the floating point types. Other values are rendered with
// their default format for 's' and '?'.
func (s Spec) operand(value any) (any, bool) {
	kind := reflect.Invalid
	if value != nil {
		kind = reflect.TypeOf(value).Kind()
	}

	switch s.Type {
	case 'd', 'b', 'o', 'c':
		return value, isIntegerKind(kind)
	case 'x', 'X':
		return value, isIntegerKind(kind) || isFloatKind(kind) || isText(value)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if isIntegerKind(kind) {
			return reflect.ValueOf(value).Convert(reflect.TypeOf(float64(0))).Interface(), true
		}
		return value, isFloatKind(kind) || kind == reflect.Complex64 || kind == reflect.Complex128
	case 'p':
		switch kind {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return value, true
		}
		return value, false
	case 's':
		if isText(value) {
			return value, true
		}
		return fmt.Sprint(value), true
	case '?':
		if isText(value) || isIntegerKind(kind) {
			return value, true
		}
		return fmt.Sprint(value), true
	}
	return value, true
}

// specNumber parses a width or precision, rejecting values above MaxSpecWidth
func specNumber(digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxSpecWidth {
		return 0, false
	}
	return n, true
}

func (s Spec) pad(text string, numeric bool) string {
	missing := s.Width - utf8.RuneCountInString(text)
	if missing <= 0 {
		return text
	}

	align := s.Align
	if align == 0 {
		align = '<'
		if numeric {
			align = '>'
		}
	}

	fill := string(s.Fill)
	switch align {
	case '>':
		return strings.Repeat(fill, missing) + text
	case '^':
		left := missing / 2
		return strings.Repeat(fill, left) + text + strings.Repeat(fill, missing-left)
	default:
		return text + strings.Repeat(fill, missing)
	}
}

func isAlign(ch byte) bool {
	return ch == '<' || ch == '>' || ch == '^'
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i]
}

func isNumeric(value any) bool {
	if value == nil {
		return false
	}
	switch kind := reflect.TypeOf(value).Kind(); {
	case isIntegerKind(kind), isFloatKind(kind):
		return true
	default:
		return kind == reflect.Complex64 || kind == reflect.Complex128
	}
}

func isIntegerKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloatKind(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}

// isText reports whether fmt renders value as text under %s, %q and %x
func isText(value any) bool {
	switch value.(type) {
	case string, []byte, fmt.Stringer, error:
		return true
	}
	return false
}
