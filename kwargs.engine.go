package kwargs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/itsatony/go-kwargs/internal"
	"go.uber.org/zap"
)

// Binding is one parsed entry of a capture list.
type Binding = internal.Binding

// Engine binds capture lists to values and compiles and renders named
// templates. It is safe for concurrent use.
type Engine struct {
	config    *engineConfig
	formatter Formatter
	cache     *templateCache
	logger    *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := &Engine{
		config:    config,
		formatter: config.formatter,
		logger:    logger,
	}
	if config.cacheEnabled {
		engine.cache = newTemplateCache(config.cacheMaxEntries)
	}

	logger.Debug(LogMsgEngineCreated,
		zap.Bool(LogFieldCacheOn, config.cacheEnabled),
		zap.Int(LogFieldPolicy, int(config.policy)),
	)
	return engine, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Logger returns the engine's logger
func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

// ParseCapture splits a capture list such as "x, y=2, &z" into bindings.
func (e *Engine) ParseCapture(capture string) ([]Binding, error) {
	bindings, err := internal.NewCaptureParser(capture, e.logger).Parse()
	if err != nil {
		e.logger.Debug(LogMsgBindRejected,
			zap.String(LogFieldCapture, capture),
			zap.Error(err),
		)
		return nil, NewCaptureSyntaxError(capture, err)
	}
	return bindings, nil
}

// Names returns the names declared by a capture list in order
func (e *Engine) Names(capture string) ([]string, error) {
	bindings, err := e.ParseCapture(capture)
	if err != nil {
		return nil, err
	}
	return internal.CaptureNames(bindings), nil
}

// Bind pairs the names of a capture list with values by position.
func (e *Engine) Bind(capture string, values ...any) (*Args, error) {
	names, err := e.Names(capture)
	if err != nil {
		return nil, err
	}
	if len(names) != len(values) {
		return nil, NewArityMismatchError(len(names), len(values))
	}

	e.logger.Debug(LogMsgBind,
		zap.Int(LogFieldNames, len(names)),
		zap.Int(LogFieldValues, len(values)),
	)
	return newArgs(names, values, e.config.maxSuggestions), nil
}

// Compile rewrites every named placeholder of source into the index of the
// first matching name. Compiled templates are cached unless the cache is
// disabled.
func (e *Engine) Compile(source string, names []string) (*Template, error) {
	var key string
	if e.cache != nil {
		key = templateCacheKey(source, names)
		if tmpl := e.cache.get(key); tmpl != nil {
			e.logger.Debug(LogMsgCacheHit, zap.Int(LogFieldNames, len(names)))
			return tmpl, nil
		}
		e.logger.Debug(LogMsgCacheMiss, zap.Int(LogFieldNames, len(names)))
	}

	e.logger.Debug(LogMsgCompile,
		zap.Int(LogFieldLength, len(source)),
		zap.Int(LogFieldNames, len(names)),
	)
	compiled, err := internal.NewFormatCompiler(source, e.config.policy, e.logger).Compile(names)
	if err != nil {
		return nil, e.compileError(source, names, err)
	}

	tmpl := newTemplate(compiled, names, e)
	if e.cache != nil && e.cache.put(key, tmpl) {
		e.logger.Debug(LogMsgCacheEvict, zap.Int(LogFieldCacheLen, e.cache.maxEntries))
	}
	return tmpl, nil
}

func (e *Engine) compileError(source string, names []string, err error) error {
	var formatErr *internal.FormatError
	if errors.As(err, &formatErr) && formatErr.Message == internal.ErrMsgUnresolvedPlaceholder {
		suggestions := internal.FindSimilarNames(formatErr.Field, names, e.config.maxSuggestions)
		return NewPlaceholderResolutionError(source, err, suggestions)
	}
	return NewFormatError(source, err)
}

// CompileFor compiles source against the names of args
func (e *Engine) CompileFor(source string, args *Args) (*Template, error) {
	return e.Compile(source, args.Names())
}

// Render formats tmpl with the values of args. Values are matched to the
// names tmpl was compiled against by name, so a record declared in another
// order renders the same text.
func (e *Engine) Render(tmpl *Template, args *Args) (string, error) {
	if tmpl == nil {
		return "", NewNilTemplateError()
	}
	values, err := tmpl.bind(args)
	if err != nil {
		return "", err
	}
	if err := tmpl.Check(len(values)); err != nil {
		return "", err
	}

	e.logger.Debug(LogMsgRender,
		zap.Int(LogFieldSlots, len(tmpl.slots)),
		zap.Int(LogFieldValues, len(values)),
	)
	out, err := e.formatter.Format(tmpl.positional, values)
	if err != nil {
		return "", wrapFormatError(tmpl.positional, err)
	}
	return out, nil
}

// Format compiles source against args and renders it in one step.
func (e *Engine) Format(source string, args *Args) (string, error) {
	tmpl, err := e.CompileFor(source, args)
	if err != nil {
		return "", err
	}
	return e.Render(tmpl, args)
}

// Fprint formats source with args and writes the result to w.
func (e *Engine) Fprint(w io.Writer, source string, args *Args) (int, error) {
	out, err := e.Format(source, args)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, out)
}

// Print formats source with args and writes the result to standard output.
func (e *Engine) Print(source string, args *Args) (int, error) {
	return e.Fprint(os.Stdout, source, args)
}

// Println is Print followed by a newline.
func (e *Engine) Println(source string, args *Args) (int, error) {
	out, err := e.Format(source, args)
	if err != nil {
		return 0, err
	}
	return fmt.Fprintln(os.Stdout, out)
}

// CacheStats returns template cache statistics. The zero value is returned
// when the cache is disabled.
func (e *Engine) CacheStats() CacheStats {
	if e.cache == nil {
		return CacheStats{}
	}
	return e.cache.stats()
}

// ClearCache drops every cached template.
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.clear()
	}
}
