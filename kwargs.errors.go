package kwargs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-kwargs/internal"
)

// MetaKeyKind carries the error code of every error created by this package
const MetaKeyKind = "kind"

// ErrorCode returns the KWARGS_* code of err, or "" if err did not originate here.
func ErrorCode(err error) string {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return ""
	}
	code, _ := customErr.GetMetadata(MetaKeyKind)
	return code
}

// IsCaptureSyntaxError reports whether err is a rejected capture list
func IsCaptureSyntaxError(err error) bool { return ErrorCode(err) == ErrCodeCapture }

// IsArityMismatch reports whether err is a names/values count mismatch
func IsArityMismatch(err error) bool { return ErrorCode(err) == ErrCodeArity }

// IsNameNotFound reports whether err is a failed lookup by name
func IsNameNotFound(err error) bool { return ErrorCode(err) == ErrCodeNameNotFound }

// IsIndexOutOfRange reports whether err is a failed lookup by index
func IsIndexOutOfRange(err error) bool { return ErrorCode(err) == ErrCodeIndex }

// IsPlaceholderUnresolved reports whether err is an unresolved template placeholder
func IsPlaceholderUnresolved(err error) bool { return ErrorCode(err) == ErrCodeTemplate }

// IsCallError reports whether err came from forwarding arguments to a function
func IsCallError(err error) bool { return ErrorCode(err) == ErrCodeCall }

// IsTemplateNotFound reports whether err is a catalog miss
func IsTemplateNotFound(err error) bool { return ErrorCode(err) == ErrCodeTemplateNotFound }

// Codes for not-found errors, which cuserr categorizes by resource
const (
	ErrCodeNameNotFound     = "KWARGS_NAME"
	ErrCodeTemplateNotFound = "KWARGS_TEMPLATE_NOT_FOUND"
)

func withPosition(err *cuserr.CustomError, pos internal.Position) *cuserr.CustomError {
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewCaptureSyntaxError creates an error for a rejected capture list.
// cause is usually an *internal.CaptureError carrying the position.
func NewCaptureSyntaxError(capture string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeCapture, ErrMsgCaptureSyntax)
	} else {
		err = cuserr.NewValidationError(ErrCodeCapture, ErrMsgCaptureSyntax)
	}
	err = err.
		WithMetadata(MetaKeyKind, ErrCodeCapture).
		WithMetadata(MetaKeyCapture, capture)

	var captureErr *internal.CaptureError
	if errors.As(cause, &captureErr) {
		err = withPosition(err, captureErr.Position).
			WithMetadata(MetaKeyReason, captureErr.Reason)
	}
	return err
}

// NewArityMismatchError creates an error for names and values of different length
func NewArityMismatchError(names, values int) error {
	return cuserr.NewValidationError(ErrCodeArity, ErrMsgArityMismatch).
		WithMetadata(MetaKeyKind, ErrCodeArity).
		WithMetadata(MetaKeyNames, strconv.Itoa(names)).
		WithMetadata(MetaKeyValues, strconv.Itoa(values))
}

// NewEmptyNameError creates an error for an empty name at position index
func NewEmptyNameError(index int) error {
	return cuserr.NewValidationError(ErrCodeCapture, ErrMsgEmptyName).
		WithMetadata(MetaKeyKind, ErrCodeCapture).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index))
}

// NewNameNotFoundError creates a lookup error listing close matches
func NewNameNotFoundError(name string, suggestions []string) error {
	err := cuserr.NewNotFoundError(ResourceKeywordArgument, name).
		WithMetadata(MetaKeyKind, ErrCodeNameNotFound).
		WithMetadata(MetaKeyName, name).
		WithMetadata(MetaKeySuggestions, strings.Join(suggestions, listSeparator))
	err.Message += internal.FormatSuggestions(suggestions)
	return err
}

// NewIndexOutOfRangeError creates an error for an index at or past the arity
func NewIndexOutOfRangeError(index, arity int) error {
	return cuserr.NewValidationError(ErrCodeIndex, ErrMsgIndexOutOfRange).
		WithMetadata(MetaKeyKind, ErrCodeIndex).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index)).
		WithMetadata(MetaKeyArity, strconv.Itoa(arity))
}

// NewTypeMismatchError creates an error for a value of the wrong dynamic type.
// key is the argument name, or its decimal index for positional lookups.
func NewTypeMismatchError(key string, expected string, actual any) error {
	return cuserr.NewValidationError(ErrCodeType, ErrMsgTypeMismatch).
		WithMetadata(MetaKeyKind, ErrCodeType).
		WithMetadata(MetaKeyName, key).
		WithMetadata(MetaKeyExpected, expected).
		WithMetadata(MetaKeyActual, fmt.Sprintf("%T", actual))
}

// NewPlaceholderResolutionError creates an error for a template field naming an unbound argument
func NewPlaceholderResolutionError(template string, cause error, suggestions []string) error {
	msg := ErrMsgPlaceholderUnresolved
	var formatErr *internal.FormatError
	hasField := errors.As(cause, &formatErr)
	if hasField {
		msg += ": " + formatErr.Field + internal.FormatSuggestions(suggestions)
	}

	err := cuserr.WrapStdError(cause, ErrCodeTemplate, msg).
		WithMetadata(MetaKeyKind, ErrCodeTemplate).
		WithMetadata(MetaKeyTemplate, template).
		WithMetadata(MetaKeySuggestions, strings.Join(suggestions, listSeparator))
	if hasField {
		err = withPosition(err, formatErr.Position).
			WithMetadata(MetaKeyPlaceholder, formatErr.Field)
	}
	return err
}

// NewFormatError wraps a failure of the value formatter
func NewFormatError(format string, cause error) error {
	err := cuserr.WrapStdError(cause, ErrCodeFormat, ErrMsgFormatFailed).
		WithMetadata(MetaKeyKind, ErrCodeFormat).
		WithMetadata(MetaKeyTemplate, format)

	var formatErr *internal.FormatError
	if errors.As(cause, &formatErr) {
		err = withPosition(err, formatErr.Position).
			WithMetadata(MetaKeyField, formatErr.Field)
	}
	return err
}

// NewNilTemplateError creates an error for rendering a nil template
func NewNilTemplateError() error {
	return cuserr.NewValidationError(ErrCodeNilTemplate, ErrMsgNilTemplate).
		WithMetadata(MetaKeyKind, ErrCodeNilTemplate)
}

// wrapFormatError converts a formatter failure into a package error.
// Errors that already carry a code pass through unchanged.
func wrapFormatError(format string, err error) error {
	if ErrorCode(err) != "" {
		return err
	}
	var indexErr *internal.IndexError
	if errors.As(err, &indexErr) {
		return NewIndexOutOfRangeError(indexErr.Index, indexErr.Arity)
	}
	return NewFormatError(format, err)
}

// NewMissingArgumentError creates an error for a parameter nobody supplied
func NewMissingArgumentError(function, parameter string) error {
	return cuserr.NewValidationError(ErrCodeCall, ErrMsgMissingArgument+": "+parameter).
		WithMetadata(MetaKeyKind, ErrCodeCall).
		WithMetadata(MetaKeyFunction, function).
		WithMetadata(MetaKeyParameter, parameter)
}

// NewDuplicateArgumentError creates an error for a parameter supplied both ways
func NewDuplicateArgumentError(function, parameter string) error {
	return cuserr.NewValidationError(ErrCodeCall, ErrMsgDuplicateArgument+": "+parameter).
		WithMetadata(MetaKeyKind, ErrCodeCall).
		WithMetadata(MetaKeyFunction, function).
		WithMetadata(MetaKeyParameter, parameter)
}

// NewCallSetupError creates an error for a function that cannot be wrapped or called
func NewCallSetupError(function, msg string) *cuserr.CustomError {
	return cuserr.NewValidationError(ErrCodeCall, msg).
		WithMetadata(MetaKeyKind, ErrCodeCall).
		WithMetadata(MetaKeyFunction, function)
}

// NewExpressionError wraps a compile or run failure of a capture expression
func NewExpressionError(name, expression string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeExpr, ErrMsgExpressionFailed).
		WithMetadata(MetaKeyKind, ErrCodeExpr).
		WithMetadata(MetaKeyName, name).
		WithMetadata(MetaKeyExpression, expression)
}

// NewTemplateNotFoundError creates a catalog miss error
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(ResourceTemplate, name).
		WithMetadata(MetaKeyKind, ErrCodeTemplateNotFound).
		WithMetadata(MetaKeyTemplate, name)
}

// NewCatalogError creates a catalog error, optionally wrapping a driver error
func NewCatalogError(msg string, cause error) *cuserr.CustomError {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeCatalog, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeCatalog, msg)
	}
	return err.WithMetadata(MetaKeyKind, ErrCodeCatalog)
}

// NewConfigError creates a configuration error
func NewConfigError(msg string, cause error) *cuserr.CustomError {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return err.WithMetadata(MetaKeyKind, ErrCodeConfig)
}
