package dxf

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is returned when the stream ends inside an entity or
	// between a group code and its value.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrUnexpectedCode is returned when a group code appears where the
	// format does not allow it.
	ErrUnexpectedCode = errors.New("unexpected group code")

	// ErrMalformedValue is returned when a value cannot be parsed as the
	// type its group code requires.
	ErrMalformedValue = errors.New("malformed value")

	// ErrUnresolvedHandle is returned when a non-zero handle has no record
	// in the resolver.
	ErrUnresolvedHandle = errors.New("unresolved handle")

	// ErrNilEntity is returned when encoding a nil root or line.
	ErrNilEntity = errors.New("nil entity")
)

// SyntaxError locates a decoding failure in the input.
type SyntaxError struct {
	Line int // 1-based line of the group code
	Code int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("dxf: line %d (code %d): %v", e.Line, e.Code, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxErr(p Pair, err error) error {
	return &SyntaxError{Line: p.Line, Code: p.Code, Err: err}
}
