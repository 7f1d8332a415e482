package internal

import "fmt"

// Position represents a location in the scanned source
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Scanner is a byte cursor over a capture list or format string.
// It never fails: running off the end simply stops every scan.
type Scanner struct {
	source string
	pos    int
}

// NewScanner creates a scanner positioned at the start of source
func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// AtEnd returns true if the cursor is past the last byte
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.source)
}

// Current returns the byte under the cursor, or 0 at end of input
func (s *Scanner) Current() byte {
	if s.AtEnd() {
		return 0
	}
	return s.source[s.pos]
}

// Peek returns the byte after the cursor, or 0 if there is none
func (s *Scanner) Peek() byte {
	if s.pos+1 >= len(s.source) {
		return 0
	}
	return s.source[s.pos+1]
}

// Advance moves the cursor forward by one byte
func (s *Scanner) Advance() {
	if !s.AtEnd() {
		s.pos++
	}
}

// Pos returns the current byte offset
func (s *Scanner) Pos() int {
	return s.pos
}

// Slice returns the source between start and the cursor
func (s *Scanner) Slice(start int) string {
	return s.source[start:s.pos]
}

// Source returns the full scanned text
func (s *Scanner) Source() string {
	return s.source
}

// SkipWhitespace advances over blanks and line-continuation backslashes
func (s *Scanner) SkipWhitespace() {
	for !s.AtEnd() {
		ch := s.Current()
		if !isWhitespace(ch) && ch != CharBackslash {
			return
		}
		s.pos++
	}
}

// ScanTo advances until one of stops is found at nesting depth zero.
// Brackets, braces and parentheses open and close nesting levels, so a stop
// byte inside f(a,b) or {x:{y}} is skipped. Unbalanced closers drive the
// depth negative without complaint.
func (s *Scanner) ScanTo(stops ...byte) {
	depth := 0
	for !s.AtEnd() {
		ch := s.Current()
		if depth == 0 && containsByte(stops, ch) {
			return
		}
		switch ch {
		case CharOpenBrack, CharOpenBrace, CharOpenParen:
			depth++
		case CharCloseBrack, CharCloseBrace, CharCloseParen:
			depth--
		}
		s.pos++
	}
}

// Position returns line and column information for the cursor
func (s *Scanner) Position() Position {
	return PositionAt(s.source, s.pos)
}

// PositionAt calculates the Position of byte offset within source.
func PositionAt(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	pos := Position{Offset: offset, Line: 1, Column: 1}
	for i := 0; i < offset; i++ {
		if source[i] == CharNewline {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

func isWhitespace(ch byte) bool {
	return ch == CharSpace || ch == CharTab || ch == CharNewline || ch == CharCarriageRet
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func containsByte(set []byte, ch byte) bool {
	for _, b := range set {
		if b == ch {
			return true
		}
	}
	return false
}
