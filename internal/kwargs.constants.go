package internal

// Character constants
const (
	CharSpace       = ' '
	CharTab         = '\t'
	CharNewline     = '\n'
	CharCarriageRet = '\r'
	CharBackslash   = '\\'
	CharAmpersand   = '&'
	CharDot         = '.'
	CharEquals      = '='
	CharComma       = ','
	CharColon       = ':'
	CharOpenBrace   = '{'
	CharCloseBrace  = '}'
	CharOpenBrack   = '['
	CharCloseBrack  = ']'
	CharOpenParen   = '('
	CharCloseParen  = ')'
)

// Reserved capture tokens that can never name an argument
const (
	CaptureSelf      = "this"
	CaptureSelfDeref = "*this"
	CapturePack      = "..."
)

// Capture rejection reasons
const (
	ReasonPackExpansion = "pack expansion is not supported"
	ReasonEmptyName     = "empty capture name or default capture"
	ReasonSelfCapture   = "capturing this is not supported"
)

// Format error messages
const (
	ErrMsgUnresolvedPlaceholder = "placeholder does not name a bound argument"
	ErrMsgUnterminatedField     = "unterminated replacement field"
	ErrMsgUnmatchedCloseBrace   = "single '}' encountered in format string"
	ErrMsgInvalidFieldIndex     = "invalid replacement field index"
	ErrMsgIndexOutOfRange       = "argument index out of range"
	ErrMsgMixedIndexing         = "cannot switch between automatic and manual field numbering"
	ErrMsgInvalidSpec           = "invalid format spec"
	ErrMsgSpecTypeMismatch      = "format spec type does not apply to the value"
)

// MaxSpecWidth bounds the width and precision a format spec may request
const MaxSpecWidth = 4096

// Log message constants
const (
	LogMsgCaptureParseStart  = "starting capture list parse"
	LogMsgCaptureParseEnd    = "capture list parse complete"
	LogMsgCaptureRejected    = "capture list rejected"
	LogMsgFormatCompileStart = "starting format compile"
	LogMsgFormatCompileEnd   = "format compile complete"
	LogMsgPlaceholderAppend  = "unresolved placeholder appended as trailing slot"
)

// Log field names
const (
	LogFieldSource      = "source_length"
	LogFieldNames       = "name_count"
	LogFieldSlots       = "slot_count"
	LogFieldReason      = "reason"
	LogFieldOffset      = "offset"
	LogFieldPlaceholder = "placeholder"
	LogFieldIndex       = "index"
)

// Error format string constants (for Error() methods)
const (
	ErrFmtWithPosition = "%s at %s"
	ErrFmtWithDetail   = "%s: %q at %s"
)
