// Package diagnostics defines the three error families produced while
// scanning, parsing, and typechecking a Dieter source file.
package diagnostics

import (
	"fmt"

	"github.com/dieterlang/dieter/internal/token"
)

// Code distinguishes where in the pipeline a diagnostic originated.
type Code string

const (
	ScanError     Code = "scan"
	ParseError    Code = "parse"
	TypingErrCode Code = "typing"
	InternalErr   Code = "internal"
)

// Diagnostic is a single reported problem, carrying enough positional
// information for a caret-style CLI renderer.
type Diagnostic struct {
	Code    Code
	File    string
	Token   token.Token
	Message string
}

func (d *Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Token.Line, d.Token.Column, d.Code, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Token.Line, d.Token.Column, d.Code, d.Message)
}

// NewScanError builds a scan-family diagnostic.
func NewScanError(file string, tok token.Token, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: ScanError, File: file, Token: tok, Message: fmt.Sprintf(format, args...)}
}

// NewParseError builds a parse-family diagnostic.
func NewParseError(file string, tok token.Token, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: ParseError, File: file, Token: tok, Message: fmt.Sprintf(format, args...)}
}

// TypingError is raised while typechecking; it is the only error kind
// that satisfies a module's `fails` expectation.
type TypingError struct {
	File    string
	Token   token.Token
	Message string
}

func NewTypingError(format string, args ...interface{}) *TypingError {
	return &TypingError{Message: fmt.Sprintf(format, args...)}
}

func (e *TypingError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: typing error: %s", e.File, e.Token.Line, e.Token.Column, e.Message)
	}
	return fmt.Sprintf("typing error: %s", e.Message)
}

// WithPos attaches source position to a TypingError, returning itself.
func (e *TypingError) WithPos(file string, tok token.Token) *TypingError {
	e.File = file
	e.Token = tok
	return e
}

// InternalError marks a state well-formed input should never reach —
// a bug, not a typing failure. It never satisfies a module's `fails`
// expectation.
type InternalError struct {
	Message string
}

func NewInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}
