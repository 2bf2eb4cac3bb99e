package compiler

import (
	"errors"
	"fmt"
)

// Parse error codes (E020-E039)
const (
	ErrNoEntryRule    = "E020" // source declares no rule
	ErrRecursionLimit = "E030" // source declares more than ir.MaxRules rules
)

// CodedError is an error that carries a taxonomy code.
type CodedError interface {
	error
	ErrCode() string
}

// ErrorCode returns the taxonomy code carried by err, or "" when err is nil
// or carries no code. Wrapped errors are unwrapped.
func ErrorCode(err error) string {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.ErrCode()
	}
	return ""
}

// ParseError represents a fatal error detected while parsing source text.
type ParseError struct {
	Code    string
	Message string
	Line    int // 1-based source line, 0 when the error is not tied to a line
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Code, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrCode implements CodedError.
func (e *ParseError) ErrCode() string {
	return e.Code
}
