package csvn

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrOutOfTokenCapacity is returned when the token slice has no free slot
	// left. The parse cannot be continued: run it again from a reset Position
	// with a larger slice, or count first.
	ErrOutOfTokenCapacity = errors.New("csvn: out of token capacity")

	// ErrInvalidCharacter is returned when a byte is not allowed where it was
	// found: a quote inside an unquoted field or content after a closing quote
	// (Strict), or an empty field under EmptyReject.
	ErrInvalidCharacter = errors.New("csvn: invalid character")

	// ErrUnterminatedQuote is returned when a quoted field reaches the end of
	// input and Options.RejectUnterminatedQuote is set.
	ErrUnterminatedQuote = errors.New("csvn: unterminated quoted field")
)

// Numeric codes for callers that report failures as integers.
const (
	CodeOK                 = 0
	CodeOutOfTokenCapacity = -1
	CodeInvalidCharacter   = -2
	CodeUnterminatedQuote  = -3
	CodeOther              = -128
)

// Code maps err onto its numeric code. It returns CodeOK for nil and CodeOther
// for errors that did not come from this package.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrOutOfTokenCapacity):
		return CodeOutOfTokenCapacity
	case errors.Is(err, ErrInvalidCharacter):
		return CodeInvalidCharacter
	case errors.Is(err, ErrUnterminatedQuote):
		return CodeUnterminatedQuote
	default:
		return CodeOther
	}
}

// ParseError records where a parse stopped.
type ParseError struct {
	// Offset is the byte index of the offending byte.
	Offset int
	// StartLine is the line the failing field started on (1-indexed).
	StartLine int
	// Line is the line the scanner was on when it stopped (1-indexed).
	Line int
	// Column is the 1-indexed byte column of Offset within its line.
	Column int
	// Err is one of the package sentinels.
	Err error
}

// Error returns a formatted message with position information.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.StartLine == e.Line {
		return fmt.Sprintf("csvn: parse error on line %d, column %d (offset %d): %v",
			e.Line, e.Column, e.Offset, e.Err)
	}
	return fmt.Sprintf("csvn: parse error on line %d (started line %d), column %d (offset %d): %v",
		e.Line, e.StartLine, e.Column, e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// column returns the 1-indexed column of offset in buf.
func column(buf []byte, offset int) int {
	if offset > len(buf) {
		offset = len(buf)
	}
	return offset - bytes.LastIndexByte(buf[:offset], Newline)
}
