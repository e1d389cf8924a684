package dxf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/mleader/pkg/catalog"
)

// Pair is one group code and its raw value.
type Pair struct {
	Code  int
	Value string
	Line  int // line of the group code, 1-based
}

// Bool parses the value as 0 or 1. Any other integer is true.
func (p Pair) Bool() (bool, error) {
	v, err := p.Int()
	return v != 0, err
}

// Int parses the value as a decimal integer.
func (p Pair) Int() (int64, error) { return p.IntN(64) }

// IntN parses the value as a decimal integer that fits in bitSize bits.
// Values out of range are malformed rather than truncated.
func (p Pair) IntN(bitSize int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(p.Value), 10, bitSize)
	if errors.Is(err, strconv.ErrRange) {
		return 0, syntaxErr(p, fmt.Errorf("%w: %s out of range for int%d", ErrMalformedValue, strings.TrimSpace(p.Value), bitSize))
	}
	if err != nil {
		return 0, syntaxErr(p, fmt.Errorf("%w: %q is not an integer", ErrMalformedValue, p.Value))
	}
	return v, nil
}

// Double parses the value as a floating-point number.
func (p Pair) Double() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
	if err != nil {
		return 0, syntaxErr(p, fmt.Errorf("%w: %q is not a number", ErrMalformedValue, p.Value))
	}
	return v, nil
}

// Handle parses the value as a hexadecimal handle.
func (p Pair) Handle() (catalog.Handle, error) {
	h, err := catalog.ParseHandle(p.Value)
	if err != nil {
		return 0, syntaxErr(p, fmt.Errorf("%w: %v", ErrMalformedValue, err))
	}
	return h, nil
}

// Reader reads group-code/value pairs. Blank lines before a group code are
// skipped and CRLF line endings are accepted.
type Reader struct {
	s    *bufio.Scanner
	line int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{s: s}
}

func (r *Reader) scan() (string, bool) {
	if !r.s.Scan() {
		return "", false
	}
	r.line++
	return strings.TrimSuffix(r.s.Text(), "\r"), true
}

// Next returns the next pair. It returns io.EOF when the stream ends cleanly
// between pairs.
func (r *Reader) Next() (Pair, error) {
	var codeLine string
	for {
		text, ok := r.scan()
		if !ok {
			if err := r.s.Err(); err != nil {
				return Pair{}, err
			}
			return Pair{}, io.EOF
		}
		if strings.TrimSpace(text) != "" {
			codeLine = text
			break
		}
	}

	p := Pair{Line: r.line}
	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		return Pair{}, syntaxErr(p, fmt.Errorf("%w: group code %q", ErrMalformedValue, codeLine))
	}
	p.Code = code

	value, ok := r.scan()
	if !ok {
		if err := r.s.Err(); err != nil {
			return Pair{}, err
		}
		return Pair{}, syntaxErr(p, ErrUnexpectedEOF)
	}
	p.Value = value
	return p, nil
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int { return r.line }
