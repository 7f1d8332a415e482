package internal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Binding is one entry of a capture list such as `x`, `y=3` or `&z=w.get()`.
type Binding struct {
	Name     string   // Argument name as written
	Expr     string   // Value expression after '=', empty for a bare name
	ByRef    bool     // Leading '&' was present
	Position Position // Location of the name
}

// CaptureParser splits a comma-separated capture list into bindings
type CaptureParser struct {
	scanner *Scanner
	logger  *zap.Logger
}

// NewCaptureParser creates a parser over the raw capture text
func NewCaptureParser(source string, logger *zap.Logger) *CaptureParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CaptureParser{
		scanner: NewScanner(source),
		logger:  logger,
	}
}

// ParseCapture is a convenience wrapper for NewCaptureParser(source, nil).Parse()
func ParseCapture(source string) ([]Binding, error) {
	return NewCaptureParser(source, nil).Parse()
}

// Parse consumes the whole capture list. Any rejection invalidates the
// entire list; no partial result is returned.
func (p *CaptureParser) Parse() ([]Binding, error) {
	s := p.scanner
	p.logger.Debug(LogMsgCaptureParseStart, zap.Int(LogFieldSource, len(s.Source())))

	var bindings []Binding
	for !s.AtEnd() {
		s.SkipWhitespace()
		if s.AtEnd() {
			break
		}

		byRef := false
		if s.Current() == CharAmpersand {
			byRef = true
			s.Advance()
			s.SkipWhitespace()
		}

		if s.Current() == CharDot {
			return nil, p.reject(ReasonPackExpansion)
		}

		start := s.Pos()
		s.ScanTo(CharEquals, CharComma, CharSpace, CharNewline, CharCarriageRet, CharTab)
		if s.Pos() == start {
			return nil, p.reject(ReasonEmptyName)
		}

		name := s.Slice(start)
		if strings.Contains(name, CapturePack) {
			return nil, p.reject(ReasonPackExpansion)
		}
		if name == CaptureSelf || name == CaptureSelfDeref {
			return nil, p.reject(ReasonSelfCapture)
		}

		binding := Binding{
			Name:     name,
			ByRef:    byRef,
			Position: PositionAt(s.Source(), start),
		}

		// Anything up to the next top-level comma belongs to this capture.
		rest := s.Pos()
		s.ScanTo(CharComma)
		if value, ok := strings.CutPrefix(strings.TrimSpace(s.Slice(rest)), string(CharEquals)); ok {
			binding.Expr = strings.TrimSpace(value)
		}
		bindings = append(bindings, binding)

		s.Advance()
		s.SkipWhitespace()
	}

	p.logger.Debug(LogMsgCaptureParseEnd, zap.Int(LogFieldNames, len(bindings)))
	return bindings, nil
}

func (p *CaptureParser) reject(reason string) error {
	pos := p.scanner.Position()
	p.logger.Debug(LogMsgCaptureRejected,
		zap.String(LogFieldReason, reason),
		zap.Int(LogFieldOffset, pos.Offset),
	)
	return &CaptureError{
		Reason:   reason,
		Text:     p.scanner.Source(),
		Position: pos,
	}
}

// CaptureNames projects the names of bindings in order
func CaptureNames(bindings []Binding) []string {
	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.Name
	}
	return names
}

// CaptureError reports a rejected capture list
type CaptureError struct {
	Reason   string
	Text     string
	Position Position
}

// Error implements the error interface
func (e *CaptureError) Error() string {
	return fmt.Sprintf(ErrFmtWithDetail, e.Reason, e.Text, e.Position)
}
