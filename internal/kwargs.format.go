package internal

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// UnresolvedPolicy decides what happens to a placeholder naming an unknown argument
type UnresolvedPolicy int

const (
	// UnresolvedError rejects the template
	UnresolvedError UnresolvedPolicy = iota
	// UnresolvedAppend rewrites the placeholder to the index one past the last name
	UnresolvedAppend
)

// Slot is one replacement field of a compiled format
type Slot struct {
	Index  int    // Positional index, -1 for automatic fields
	Auto   bool   // Field was written as {} or {:spec}
	Name   string // Field text as written in the source ("x", "0", "")
	Spec   string // Format spec after ':' without the colon
	Offset int    // Byte offset of the opening brace in the source
}

// CompiledFormat is a format string whose named fields were replaced by indices
type CompiledFormat struct {
	Source   string
	Format   string
	Slots    []Slot
	Appended bool // At least one field was resolved through UnresolvedAppend
}

// MaxIndex returns the highest explicit slot index, or -1 if there is none
func (c *CompiledFormat) MaxIndex() int {
	highest := -1
	for _, slot := range c.Slots {
		if !slot.Auto && slot.Index > highest {
			highest = slot.Index
		}
	}
	return highest
}

// AutoCount returns the number of automatic fields
func (c *CompiledFormat) AutoCount() int {
	n := 0
	for _, slot := range c.Slots {
		if slot.Auto {
			n++
		}
	}
	return n
}

// FormatCompiler rewrites {name} and {name:spec} fields into positional form
type FormatCompiler struct {
	scanner *Scanner
	policy  UnresolvedPolicy
	logger  *zap.Logger
}

// NewFormatCompiler creates a compiler over the raw template text
func NewFormatCompiler(source string, policy UnresolvedPolicy, logger *zap.Logger) *FormatCompiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormatCompiler{
		scanner: NewScanner(source),
		policy:  policy,
		logger:  logger,
	}
}

// CompileFormat is a convenience wrapper around FormatCompiler.Compile
func CompileFormat(source string, names []string, policy UnresolvedPolicy) (*CompiledFormat, error) {
	return NewFormatCompiler(source, policy, nil).Compile(names)
}

// Compile resolves every named field against names. Literal text, escaped
// {{...}} spans and format specs are copied verbatim.
func (c *FormatCompiler) Compile(names []string) (*CompiledFormat, error) {
	s := c.scanner
	c.logger.Debug(LogMsgFormatCompileStart,
		zap.Int(LogFieldSource, len(s.Source())),
		zap.Int(LogFieldNames, len(names)),
	)

	result := &CompiledFormat{Source: s.Source()}
	var out strings.Builder
	out.Grow(len(s.Source()))

	for !s.AtEnd() {
		ch := s.Current()
		out.WriteByte(ch)
		if ch != CharOpenBrace {
			s.Advance()
			continue
		}

		open := s.Pos()
		s.Advance()

		if s.Current() == CharOpenBrace {
			// Escaped braces: copy up to the first unbalanced '}', which
			// matches the outer '{'. The loop then copies that '}' itself.
			start := s.Pos()
			s.ScanTo(CharCloseBrace)
			out.WriteString(s.Slice(start))
			continue
		}

		start := s.Pos()
		s.ScanTo(CharCloseBrace, CharColon)
		field := s.Slice(start)

		slot, appended, err := c.resolve(field, open, names)
		if err != nil {
			return nil, err
		}
		result.Appended = result.Appended || appended
		if !slot.Auto {
			if IsIndex(field) {
				out.WriteString(field)
			} else {
				out.WriteString(strconv.Itoa(slot.Index))
			}
		}

		if s.Current() == CharColon {
			s.Advance()
			specStart := s.Pos()
			s.ScanTo(CharCloseBrace)
			slot.Spec = s.Slice(specStart)
			out.WriteByte(CharColon)
			out.WriteString(slot.Spec)
		}
		result.Slots = append(result.Slots, slot)

		if !s.AtEnd() {
			out.WriteByte(s.Current())
			s.Advance()
		}
	}

	result.Format = out.String()
	c.logger.Debug(LogMsgFormatCompileEnd, zap.Int(LogFieldSlots, len(result.Slots)))
	return result, nil
}

func (c *FormatCompiler) resolve(field string, offset int, names []string) (Slot, bool, error) {
	slot := Slot{Name: field, Offset: offset, Index: -1}

	switch {
	case field == "":
		slot.Auto = true
		return slot, false, nil
	case IsIndex(field):
		idx, err := strconv.Atoi(field)
		if err != nil {
			return slot, false, c.fail(ErrMsgInvalidFieldIndex, field, offset)
		}
		slot.Index = idx
		return slot, false, nil
	}

	if idx, ok := IndexOf(names, field); ok {
		slot.Index = idx
		return slot, false, nil
	}

	if c.policy != UnresolvedAppend {
		return slot, false, c.fail(ErrMsgUnresolvedPlaceholder, field, offset)
	}
	slot.Index = len(names)
	c.logger.Debug(LogMsgPlaceholderAppend,
		zap.String(LogFieldPlaceholder, field),
		zap.Int(LogFieldIndex, slot.Index),
	)
	return slot, true, nil
}

func (c *FormatCompiler) fail(msg, field string, offset int) error {
	return &FormatError{
		Message:  msg,
		Field:    field,
		Format:   c.scanner.Source(),
		Position: PositionAt(c.scanner.Source(), offset),
	}
}

// FormatError reports a problem with a replacement field
type FormatError struct {
	Message  string
	Field    string
	Format   string
	Position Position
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position)
	}
	return fmt.Sprintf(ErrFmtWithDetail, e.Message, e.Field, e.Position)
}
