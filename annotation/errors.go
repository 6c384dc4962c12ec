package annotation

import (
	"errors"
	"fmt"
)

// ErrNoClosingBrace is matched by errors.Is for every *UnclosedError.
var ErrNoClosingBrace = errors.New("no closing attribute brace found")

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// ParseError is the base error type for annotation errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// UnclosedError reports an escaped annotation that reached the end of its
// block without a closing `\}`. Pos points at the opening backslash.
type UnclosedError struct{ ParseError }

func newUnclosedError(source []byte, offset int) *UnclosedError {
	return &UnclosedError{ParseError{
		Message: ErrNoClosingBrace.Error(),
		Pos:     positionAt(source, offset),
		Cause:   ErrNoClosingBrace,
	}}
}

// positionAt converts a byte offset into a line/column position.
func positionAt(source []byte, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	pos := Position{Line: 1, Column: 1, Offset: offset}
	for _, ch := range source[:offset] {
		if ch == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
