package dxf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/geom"
)

// Writer emits group-code/value pairs. Errors are sticky: after the first
// failed write every call is a no-op and [Writer.Flush] returns the error.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter returns a Writer that buffers output to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) write(code int, value string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, "%3d\n%s\n", code, value)
}

// WriteString writes a raw string value.
func (w *Writer) WriteString(code int, s string) { w.write(code, s) }

// WriteBool writes 1 or 0.
func (w *Writer) WriteBool(code int, b bool) {
	if b {
		w.write(code, "1")
		return
	}
	w.write(code, "0")
}

// WriteInt writes a decimal integer.
func (w *Writer) WriteInt(code int, v int64) { w.write(code, strconv.FormatInt(v, 10)) }

// WriteDouble writes the shortest decimal form that parses back to v.
func (w *Writer) WriteDouble(code int, v float64) {
	w.write(code, strconv.FormatFloat(v, 'g', -1, 64))
}

// WriteHandle writes h in hexadecimal.
func (w *Writer) WriteHandle(code int, h catalog.Handle) { w.write(code, h.String()) }

// WritePoint writes the three components of p under codes[0..2].
func (w *Writer) WritePoint(codes []int, p geom.XYZ) {
	for i, v := range p.Array() {
		w.WriteDouble(codes[i], v)
	}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}
