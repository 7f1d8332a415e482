package kwargs

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/itsatony/go-kwargs/internal"
)

// Args is an ordered record of named values. Names and values are paired by
// position and neither changes after construction. A nil *Args is the empty
// record.
type Args struct {
	names          []string
	values         []any
	maxSuggestions int
}

// Pair is one name and its value, used for the explicit call form.
type Pair struct {
	Name  string
	Value any
}

// Arg pairs a value with its name
func Arg(name string, value any) Pair {
	return Pair{Name: name, Value: value}
}

// NewArgs creates a record from parallel name and value lists.
// Duplicate names are allowed; lookups resolve to the first one.
func NewArgs(names []string, values []any) (*Args, error) {
	if len(names) != len(values) {
		return nil, NewArityMismatchError(len(names), len(values))
	}
	for i, name := range names {
		if name == "" {
			return nil, NewEmptyNameError(i)
		}
	}
	return newArgs(names, values, DefaultMaxSuggestions), nil
}

func newArgs(names []string, values []any, maxSuggestions int) *Args {
	return &Args{
		names:          append([]string(nil), names...),
		values:         append([]any(nil), values...),
		maxSuggestions: maxSuggestions,
	}
}

// FromPairs creates a record from explicitly named values
func FromPairs(pairs ...Pair) (*Args, error) {
	names := make([]string, len(pairs))
	values := make([]any, len(pairs))
	for i, p := range pairs {
		names[i] = p.Name
		values[i] = p.Value
	}
	return NewArgs(names, values)
}

// Len returns the arity
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

// Names returns a copy of the names in declaration order
func (a *Args) Names() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.names...)
}

// Values returns a copy of the values in declaration order
func (a *Args) Values() []any {
	if a == nil {
		return nil
	}
	return append([]any(nil), a.values...)
}

// NameAt returns the name at position i
func (a *Args) NameAt(i int) (string, error) {
	if i < 0 || i >= a.Len() {
		return "", NewIndexOutOfRangeError(i, a.Len())
	}
	return a.names[i], nil
}

// Index returns the position of the first argument called name
func (a *Args) Index(name string) (int, bool) {
	if a == nil {
		return -1, false
	}
	return internal.IndexOf(a.names, name)
}

// Has reports whether an argument called name exists
func (a *Args) Has(name string) bool {
	_, ok := a.Index(name)
	return ok
}

// At returns the value at position i
func (a *Args) At(i int) (any, error) {
	if i < 0 || i >= a.Len() {
		return nil, NewIndexOutOfRangeError(i, a.Len())
	}
	return a.values[i], nil
}

// Lookup returns the value of the first argument called name
func (a *Args) Lookup(name string) (any, error) {
	idx, ok := a.Index(name)
	if !ok {
		return nil, NewNameNotFoundError(name, a.suggest(name))
	}
	return a.values[idx], nil
}

// AtOr returns the value at position i, or fallback if there is none
func (a *Args) AtOr(i int, fallback any) any {
	if i < 0 || i >= a.Len() {
		return fallback
	}
	return a.values[i]
}

// LookupOr returns the value called name, or fallback if there is none
func (a *Args) LookupOr(name string, fallback any) any {
	idx, ok := a.Index(name)
	if !ok {
		return fallback
	}
	return a.values[idx]
}

// Pairs returns the record as name/value pairs
func (a *Args) Pairs() []Pair {
	pairs := make([]Pair, a.Len())
	for i := range pairs {
		pairs[i] = Pair{Name: a.names[i], Value: a.values[i]}
	}
	return pairs
}

// String renders the record as name=value pairs, e.g. "(foo=1, bar=x)"
func (a *Args) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.names[i])
		b.WriteByte('=')
		fmt.Fprint(&b, a.values[i])
	}
	b.WriteByte(')')
	return b.String()
}

func (a *Args) suggest(name string) []string {
	if a == nil {
		return nil
	}
	return internal.FindSimilarNames(name, a.names, a.maxSuggestions)
}

// Get returns the value called name as a T
func Get[T any](a *Args, name string) (T, error) {
	var zero T
	v, err := a.Lookup(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, NewTypeMismatchError(name, typeName[T](), v)
	}
	return t, nil
}

// GetAt returns the value at position i as a T
func GetAt[T any](a *Args, i int) (T, error) {
	var zero T
	v, err := a.At(i)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, NewTypeMismatchError(strconv.Itoa(i), typeName[T](), v)
	}
	return t, nil
}

// GetOr returns the value called name as a T. The fallback is returned when
// the name is absent or its value is not a T.
func GetOr[T any](a *Args, name string, fallback T) T {
	t, err := Get[T](a, name)
	if err != nil {
		return fallback
	}
	return t
}

// GetAtOr returns the value at position i as a T, or fallback
func GetAtOr[T any](a *Args, i int, fallback T) T {
	t, err := GetAt[T](a, i)
	if err != nil {
		return fallback
	}
	return t
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
