package syntax

import (
	"errors"

	"github.com/coregx/research/charclass"
)

// Error codes carried by CompileError.Code. Match them with errors.Is.
var (
	ErrMissingParen          = errors.New("missing closing )")
	ErrUnexpectedParen       = errors.New("unexpected )")
	ErrTooManyGroups         = errors.New("too many capture groups")
	ErrMissingBracket        = errors.New("missing closing ]")
	ErrInvalidRange          = charclass.ErrInvalidRange
	ErrInvalidEscape         = errors.New("invalid escape sequence")
	ErrTrailingBackslash     = errors.New("trailing backslash at end of expression")
	ErrInvalidBackref        = errors.New("invalid back reference")
	ErrMissingRepeatArgument = errors.New("missing argument to repetition operator")
	ErrInvalidRepeatOperand  = errors.New("invalid repetition operand")
	ErrProgramTooLong        = errors.New("expression too large")
)

// CompileError describes why a pattern failed to compile.
//
// The message format follows regexp/syntax:
//
//	error parsing regexp: invalid escape sequence: `\q`
type CompileError struct {
	Code    error  // one of the Err* values above
	Expr    string // the offending part of the pattern
	Pattern string // the whole pattern
	Offset  int    // byte offset of Expr in Pattern
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return "error parsing regexp: " + e.Code.Error() + ": `" + e.Expr + "`"
}

// Unwrap returns the error code.
func (e *CompileError) Unwrap() error {
	return e.Code
}
