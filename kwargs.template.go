package kwargs

import (
	"io"

	"github.com/itsatony/go-kwargs/internal"
)

// Slot describes one replacement field of a compiled template.
type Slot = internal.Slot

// Template is a named template compiled against an ordered name list.
// It is immutable and safe for concurrent use.
type Template struct {
	source     string
	positional string
	names      []string
	slots      []Slot
	appended   bool
	required   int
	engine     *Engine
}

func newTemplate(compiled *internal.CompiledFormat, names []string, engine *Engine) *Template {
	required := compiled.MaxIndex() + 1
	if auto := compiled.AutoCount(); auto > required {
		required = auto
	}
	return &Template{
		source:     compiled.Source,
		positional: compiled.Format,
		names:      append([]string(nil), names...),
		slots:      compiled.Slots,
		appended:   compiled.Appended,
		required:   required,
		engine:     engine,
	}
}

// Source returns the original template text
func (t *Template) Source() string {
	return t.source
}

// Positional returns the compiled text, in which every named field has been
// replaced by its index
func (t *Template) Positional() string {
	return t.positional
}

// Names returns the name list the template was compiled against
func (t *Template) Names() []string {
	return append([]string(nil), t.names...)
}

// Slots returns the replacement fields in source order
func (t *Template) Slots() []Slot {
	return append([]Slot(nil), t.slots...)
}

// Appended reports whether an unknown name was rewritten past the last
// index under UnresolvedAppend
func (t *Template) Appended() bool {
	return t.appended
}

// Arity returns the minimum number of values Render needs
func (t *Template) Arity() int {
	return t.required
}

// Check verifies that a record of the given arity satisfies every slot
func (t *Template) Check(arity int) error {
	if t.required > arity {
		return NewIndexOutOfRangeError(t.required-1, arity)
	}
	return nil
}

// bind lines the values of args up with the template's names. A record
// declared in the template's order is used as is. Otherwise every name is
// looked up in args, and values past the name list still fill appended
// slots.
func (t *Template) bind(args *Args) ([]any, error) {
	values := args.Values()
	if t.sameOrder(args) {
		return values, nil
	}

	bound, err := forward(t.source, t.names, nil, args)
	if err != nil {
		return nil, err
	}
	if len(values) > len(t.names) {
		bound = append(bound, values[len(t.names):]...)
	}
	return bound, nil
}

func (t *Template) sameOrder(args *Args) bool {
	n := min(args.Len(), len(t.names))
	for i := 0; i < n; i++ {
		if args.names[i] != t.names[i] {
			return false
		}
	}
	return true
}

// Render formats the template with args using the engine that compiled it
func (t *Template) Render(args *Args) (string, error) {
	return t.engine.Render(t, args)
}

// Fprint renders the template to w
func (t *Template) Fprint(w io.Writer, args *Args) (int, error) {
	out, err := t.Render(args)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, out)
}

// String returns the template source
func (t *Template) String() string {
	return t.source
}
