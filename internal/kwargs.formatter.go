package internal

import (
	"errors"
	"strconv"
	"strings"
)

type indexing int

const (
	indexingUnset indexing = iota
	indexingAuto
	indexingManual
)

// FormatPositional renders a format made of {}, {i} and {i:spec} fields.
// Escaped {{...}} spans are matched the same way FormatCompiler matches them
// and render with one outer brace removed on each side; a lone }} renders }.
func FormatPositional(format string, values []any) (string, error) {
	s := NewScanner(format)
	var out strings.Builder
	out.Grow(len(format))

	mode := indexingUnset
	next := 0

	for !s.AtEnd() {
		ch := s.Current()
		switch {
		case ch == CharOpenBrace && s.Peek() == CharOpenBrace:
			s.Advance()
			start := s.Pos()
			s.ScanTo(CharCloseBrace)
			out.WriteString(s.Slice(start))
			s.Advance()

		case ch == CharOpenBrace:
			open := s.Pos()
			s.Advance()
			start := s.Pos()
			s.ScanTo(CharCloseBrace, CharColon)
			field := s.Slice(start)

			spec := ""
			if s.Current() == CharColon {
				s.Advance()
				specStart := s.Pos()
				s.ScanTo(CharCloseBrace)
				spec = s.Slice(specStart)
			}
			if s.AtEnd() {
				return "", formatError(ErrMsgUnterminatedField, "", format, open)
			}
			s.Advance()

			var idx int
			switch {
			case field == "":
				if mode == indexingManual {
					return "", formatError(ErrMsgMixedIndexing, field, format, open)
				}
				mode = indexingAuto
				idx = next
				next++
			case IsIndex(field):
				if mode == indexingAuto {
					return "", formatError(ErrMsgMixedIndexing, field, format, open)
				}
				mode = indexingManual
				n, err := strconv.Atoi(field)
				if err != nil {
					return "", formatError(ErrMsgInvalidFieldIndex, field, format, open)
				}
				idx = n
			default:
				return "", formatError(ErrMsgInvalidFieldIndex, field, format, open)
			}

			if idx >= len(values) {
				return "", &IndexError{Index: idx, Arity: len(values)}
			}
			text, err := FormatValue(values[idx], spec)
			if err != nil {
				msg := ErrMsgInvalidSpec
				var specErr *FormatError
				if errors.As(err, &specErr) {
					msg = specErr.Message
				}
				return "", formatError(msg, spec, format, open)
			}
			out.WriteString(text)

		case ch == CharCloseBrace:
			if s.Peek() != CharCloseBrace {
				return "", formatError(ErrMsgUnmatchedCloseBrace, "", format, s.Pos())
			}
			out.WriteByte(CharCloseBrace)
			s.Advance()
			s.Advance()

		default:
			out.WriteByte(ch)
			s.Advance()
		}
	}

	return out.String(), nil
}

func formatError(msg, field, format string, offset int) error {
	return &FormatError{
		Message:  msg,
		Field:    field,
		Format:   format,
		Position: PositionAt(format, offset),
	}
}

// IndexError reports a field index beyond the supplied values
type IndexError struct {
	Index int
	Arity int
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return ErrMsgIndexOutOfRange + ": " + strconv.Itoa(e.Index) + " >= " + strconv.Itoa(e.Arity)
}
