package model

import "fmt"

// ErrorKind classifies why a QR payload could not be decoded
type ErrorKind string

const (
	// Encoding errors
	ErrInvalidBase64   ErrorKind = "INVALID_BASE64"
	ErrPayloadTooLarge ErrorKind = "PAYLOAD_TOO_LARGE"

	// Structural errors
	ErrEmptyPayload ErrorKind = "EMPTY_PAYLOAD"
	ErrTruncated    ErrorKind = "TRUNCATED"

	// Field errors
	ErrMissingTag  ErrorKind = "MISSING_TAG"
	ErrInvalidUTF8 ErrorKind = "INVALID_UTF8"
	ErrNotANumber  ErrorKind = "NOT_A_NUMBER"
)

// ParseError represents a decode failure with diagnostic context.
// Exactly one is returned per failed decode; a payload is never
// partially accepted.
type ParseError struct {
	Kind   ErrorKind
	Offset int    // byte offset into the decoded buffer, for TRUNCATED
	Tag    byte   // TLV tag number, for tag-level failures
	Raw    string // offending raw text, for NOT_A_NUMBER
	Cause  error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrTruncated:
		return fmt.Sprintf("[%s] record overruns buffer at offset %d", e.Kind, e.Offset)
	case ErrMissingTag:
		return fmt.Sprintf("[%s] mandatory tag %d absent", e.Kind, e.Tag)
	case ErrInvalidUTF8:
		return fmt.Sprintf("[%s] tag %d value is not valid UTF-8", e.Kind, e.Tag)
	case ErrNotANumber:
		return fmt.Sprintf("[%s] tag %d value %q is not a non-negative decimal", e.Kind, e.Tag, e.Raw)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("[%s] %v", e.Kind, e.Cause)
		}
		return fmt.Sprintf("[%s]", e.Kind)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewInvalidBase64Error creates an encoding error with the underlying cause
func NewInvalidBase64Error(cause error) *ParseError {
	return &ParseError{Kind: ErrInvalidBase64, Cause: cause}
}

// NewPayloadTooLargeError creates an error for payloads above the size cap
func NewPayloadTooLargeError() *ParseError {
	return &ParseError{Kind: ErrPayloadTooLarge}
}

// NewEmptyPayloadError creates an error for a zero-length byte buffer
func NewEmptyPayloadError() *ParseError {
	return &ParseError{Kind: ErrEmptyPayload}
}

// NewTruncatedError creates a structural error at the given buffer offset
func NewTruncatedError(offset int) *ParseError {
	return &ParseError{Kind: ErrTruncated, Offset: offset}
}

// NewMissingTagError creates a field error for an absent mandatory tag
func NewMissingTagError(tag byte) *ParseError {
	return &ParseError{Kind: ErrMissingTag, Tag: tag}
}

// NewInvalidUTF8Error creates a field error for undecodable text bytes
func NewInvalidUTF8Error(tag byte) *ParseError {
	return &ParseError{Kind: ErrInvalidUTF8, Tag: tag}
}

// NewNotANumberError creates a field error for an unparseable amount
func NewNotANumberError(tag byte, raw string, cause error) *ParseError {
	return &ParseError{Kind: ErrNotANumber, Tag: tag, Raw: raw, Cause: cause}
}
