package kwargs

import (
	"io"
	"sync"
)

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the shared engine used by the package-level functions.
// It has no logger, the built-in formatter, UnresolvedError and a template
// cache of DefaultCacheMaxEntries.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = MustNew()
	})
	return defaultEngine
}

// Make binds the names of a capture list to values by position.
//
//	args, err := kwargs.Make("foo, bar", 1, 2)
func Make(capture string, values ...any) (*Args, error) {
	return Default().Bind(capture, values...)
}

// MustMake is like Make but panics on error. Intended for capture lists
// written as literals at the call site.
func MustMake(capture string, values ...any) *Args {
	args, err := Make(capture, values...)
	if err != nil {
		panic(err)
	}
	return args
}

// Names returns the names declared by a capture list
func Names(capture string) ([]string, error) {
	return Default().Names(capture)
}

// Compile compiles a named template against names with the default engine
func Compile(source string, names []string) (*Template, error) {
	return Default().Compile(source, names)
}

// Format compiles source against args and renders it
func Format(source string, args *Args) (string, error) {
	return Default().Format(source, args)
}

// Fprint formats source with args and writes the result to w
func Fprint(w io.Writer, source string, args *Args) (int, error) {
	return Default().Fprint(w, source, args)
}

// Print formats source with args and writes the result to standard output
func Print(source string, args *Args) (int, error) {
	return Default().Print(source, args)
}

// Println is Print followed by a newline
func Println(source string, args *Args) (int, error) {
	return Default().Println(source, args)
}
