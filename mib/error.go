package mib

import (
	"fmt"
	"strings"
)

// ParseError is the single structured error value a failed parse
// returns. It covers both error kinds: a syntax error (input does not
// match the grammar; Expected lists the rule shapes wanted at the
// offending position) and a literal decoding error (a leaf matched the
// lexical shape of a literal but its content does not decode; Err
// carries the underlying conversion failure).
type ParseError struct {
	// Offset is the byte offset of the failure in the input.
	Offset int
	// Line and Column are 1-based positions derived from Offset.
	Line   int
	Column int
	// Expected lists the rule or token shapes expected at the failure
	// position. Empty for literal decoding errors.
	Expected []string
	// Found describes what was found instead, for syntax errors.
	Found string
	// Err is the underlying decoding failure, nil for syntax errors.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d:%d: invalid literal: %v", e.Line, e.Column, e.Err)
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%d:%d: syntax error: found %s", e.Line, e.Column, e.Found)
	}
	return fmt.Sprintf("%d:%d: syntax error: expected %s, found %s",
		e.Line, e.Column, strings.Join(e.Expected, " or "), e.Found)
}

// Unwrap returns the underlying decoding failure, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsSyntaxError returns true if this error reports a grammar mismatch
// rather than a literal decoding failure.
func (e *ParseError) IsSyntaxError() bool {
	return e.Err == nil
}

// Position converts a byte offset in text to a 1-based line and column.
func Position(text string, offset int) (line, column int) {
	if offset > len(text) {
		offset = len(text)
	}
	line, column = 1, 1
	for _, b := range []byte(text[:offset]) {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
