// Package extjson holds the shared error surface for the extended JSON
// scanner found in the scanner subpackage.
package extjson

import "fmt"

// ErrorKind describes the type of error.
type ErrorKind int

const (
	ErrMalformedInput ErrorKind = iota
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedInput:
		return "malformed input"
	default:
		return "error"
	}
}

// Error represents an error raised while scanning extended JSON text.
type Error struct {
	Kind     ErrorKind
	Message  string
	Position int // byte offset of the lexeme that failed, -1 if unknown
}

func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s: %s (at offset %d)", e.Kind, e.Message, e.Position)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError creates a new error without position information.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Position: -1}
}

// WithPosition adds the lexeme start offset to an error.
func (e *Error) WithPosition(pos int) *Error {
	e.Position = pos
	return e
}
