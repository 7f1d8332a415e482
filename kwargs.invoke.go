package kwargs

import (
	"reflect"
	"strconv"

	"go.uber.org/zap"
)

// Forward orders the arguments of a call to a function whose parameters are
// named params. The first len(positional) parameters take the positional
// values; every remaining parameter must be named in args. Naming a
// parameter that was already filled positionally is an error. Names in args
// that match no parameter are ignored.
func Forward(params []string, positional []any, args *Args) ([]any, error) {
	return forward("", params, positional, args)
}

func forward(function string, params []string, positional []any, args *Args) ([]any, error) {
	if len(positional) > len(params) {
		return nil, NewCallSetupError(function, ErrMsgTooManyPositional).
			WithMetadata(MetaKeyExpected, strconv.Itoa(len(params))).
			WithMetadata(MetaKeyActual, strconv.Itoa(len(positional)))
	}

	out := make([]any, len(params))
	for i, param := range params {
		if i < len(positional) {
			if args.Has(param) {
				return nil, NewDuplicateArgumentError(function, param)
			}
			out[i] = positional[i]
			continue
		}

		idx, ok := args.Index(param)
		if !ok {
			return nil, NewMissingArgumentError(function, param)
		}
		out[i] = args.values[idx]
	}
	return out, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

const nilTypeName = "nil"

// Func is a Go function whose parameters have names, so it can be called
// with a mix of positional and named arguments.
type Func struct {
	name     string
	params   []string
	fn       reflect.Value
	fnType   reflect.Type
	errIndex int // Index of a trailing error result, or -1
	logger   *zap.Logger
}

// NewFunc wraps fn, naming its parameters in order. fn must be a
// non-variadic function with exactly len(params) parameters.
func NewFunc(name string, fn any, params ...string) (*Func, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, NewCallSetupError(name, ErrMsgNotAFunction)
	}
	t := v.Type()
	if t.IsVariadic() || t.NumIn() != len(params) {
		return nil, NewCallSetupError(name, ErrMsgParamCount).
			WithMetadata(MetaKeyExpected, strconv.Itoa(t.NumIn())).
			WithMetadata(MetaKeyActual, strconv.Itoa(len(params)))
	}
	for i, param := range params {
		if param == "" {
			return nil, NewEmptyNameError(i)
		}
	}

	errIndex := -1
	if n := t.NumOut(); n > 0 && t.Out(n-1) == errorType {
		errIndex = n - 1
	}

	return &Func{
		name:     name,
		params:   append([]string(nil), params...),
		fn:       v,
		fnType:   t,
		errIndex: errIndex,
		logger:   zap.NewNop(),
	}, nil
}

// MustNewFunc is like NewFunc but panics on error.
func MustNewFunc(name string, fn any, params ...string) *Func {
	f, err := NewFunc(name, fn, params...)
	if err != nil {
		panic(err)
	}
	return f
}

// WithLogger returns a copy of f that logs each call.
func (f *Func) WithLogger(logger *zap.Logger) *Func {
	clone := *f
	if logger == nil {
		logger = zap.NewNop()
	}
	clone.logger = logger
	return &clone
}

// Name returns the function name used in errors
func (f *Func) Name() string {
	return f.name
}

// Params returns the parameter names
func (f *Func) Params() []string {
	return append([]string(nil), f.params...)
}

// Call invokes the function. positional fills the leading parameters and
// args supplies the rest by name. Results are returned in order without a
// trailing error result, which is returned as the call error instead.
func (f *Func) Call(args *Args, positional ...any) ([]any, error) {
	values, err := forward(f.name, f.params, positional, args)
	if err != nil {
		return nil, err
	}

	f.logger.Debug(LogMsgForward,
		zap.String(LogFieldFunction, f.name),
		zap.Int(LogFieldValues, len(positional)),
		zap.Int(LogFieldNames, args.Len()),
	)

	in := make([]reflect.Value, len(values))
	for i, value := range values {
		rv, err := f.argument(i, value)
		if err != nil {
			return nil, err
		}
		in[i] = rv
	}

	results := f.fn.Call(in)
	out := make([]any, 0, len(results))
	var callErr error
	for i, r := range results {
		if i == f.errIndex {
			if !r.IsNil() {
				callErr = r.Interface().(error)
			}
			continue
		}
		out = append(out, r.Interface())
	}
	return out, callErr
}

// argument converts value to the type of parameter i
func (f *Func) argument(i int, value any) (reflect.Value, error) {
	want := f.fnType.In(i)
	if value == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, f.argumentError(i, value)
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(want) {
		return rv, nil
	}
	if isNumericKind(rv.Kind()) && isNumericKind(want.Kind()) {
		converted := rv.Convert(want)
		// Only conversions that round-trip are allowed: 2.5 never becomes 2.
		if converted.Convert(rv.Type()).Interface() != value {
			return reflect.Value{}, f.argumentError(i, value)
		}
		return converted, nil
	}
	return reflect.Value{}, f.argumentError(i, value)
}

func (f *Func) argumentError(i int, value any) error {
	actual := nilTypeName
	if value != nil {
		actual = reflect.TypeOf(value).String()
	}
	return NewCallSetupError(f.name, ErrMsgArgumentType).
		WithMetadata(MetaKeyParameter, f.params[i]).
		WithMetadata(MetaKeyExpected, f.fnType.In(i).String()).
		WithMetadata(MetaKeyActual, actual)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
