package kwargs

import "github.com/itsatony/go-kwargs/internal"

// Formatter renders a positional template, in which every field is {} or
// {index[:spec]}, with values in declaration order.
type Formatter interface {
	Format(format string, values []any) (string, error)
}

// FormatterFunc adapts an ordinary function to the Formatter interface
type FormatterFunc func(format string, values []any) (string, error)

// Format implements Formatter
func (f FormatterFunc) Format(format string, values []any) (string, error) {
	return f(format, values)
}

// DefaultFormatter returns the built-in positional formatter. It understands
// {{ }} escapes, automatic and manual indexing, and the
// [[fill]align][sign][#][0][width][.precision][type] spec.
func DefaultFormatter() Formatter {
	return FormatterFunc(internal.FormatPositional)
}

// FormatPositional renders an already positional template with the
// built-in formatter.
func FormatPositional(format string, values ...any) (string, error) {
	out, err := internal.FormatPositional(format, values)
	if err != nil {
		return "", wrapFormatError(format, err)
	}
	return out, nil
}
