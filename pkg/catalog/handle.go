package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Handle identifies a catalog record inside a drawing. The zero handle means
// "no record".
type Handle uint64

// String formats the handle as upper-case hex, the form used in drawing files.
func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}

// IsZero reports whether h refers to nothing.
func (h Handle) IsZero() bool { return h == 0 }

// ParseHandle parses a hex handle. Surrounding whitespace is ignored and an
// empty string parses as the zero handle.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse handle %q: %w", s, err)
	}
	return Handle(v), nil
}
