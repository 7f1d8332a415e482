// Package kwargs provides named arguments for Go call sites and named
// placeholders for format templates.
//
// A capture list names the values passed at a call site:
//
//	args, err := kwargs.Make("foo, bar", 1, 2)
//	foo, _ := kwargs.Get[int](args, "foo") // 1
//
// Entries may also carry an initializer or a by-reference marker, which the
// parser records but never evaluates:
//
//	kwargs.Make("x=compute(), &y", a, b)
//
// # Named Templates
//
// Templates use {name} and {name:spec} placeholders. Compiling a template
// against the argument names rewrites every placeholder to its index, so the
// result is an ordinary positional template:
//
//	out, err := kwargs.Format("{bar} {foo}", args) // "2 1"
//
// Literal braces are written doubled. Everything between {{ and its
// matching }} is copied through unchanged:
//
//	kwargs.Format("{{foo}} = {foo}", args) // "{foo} = 1"
//
// # Format Specs
//
// The text after ':' follows [[fill]align][sign][#][0][width][.precision][type]:
//
//	kwargs.Format("{foo:>5}|{bar:03}", args) // "    1|002"
//
// # Engines
//
// The package-level functions share a default engine. Create an Engine to
// configure logging, the formatter, the unresolved placeholder policy or the
// template cache:
//
//	engine := kwargs.MustNew(kwargs.WithLogger(logger))
//	tmpl, err := engine.Compile("{greeting}, {name}!", []string{"name", "greeting"})
//	out, err := engine.Render(tmpl, args)
//
// # Forwarding
//
// Func wraps an ordinary Go function so it can be called with a mix of
// positional and named arguments:
//
//	area := kwargs.MustNewFunc("area", func(w, h int) int { return w * h }, "w", "h")
//	res, err := area.Call(kwargs.MustMake("h", 3), 4) // [12]
//
// # Errors
//
// Every error is a *cuserr.CustomError. Use ErrorCode or the Is* predicates
// to discriminate, and GetMetadata for details such as the offending name.
package kwargs

// Version is the library version
const Version = "1.0.0"
