package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidHandle is returned when a record is added with the zero handle.
	ErrInvalidHandle = errors.New("record handle must not be zero")

	// ErrDuplicateHandle is returned when a handle is already taken by a record
	// of the same kind.
	ErrDuplicateHandle = errors.New("duplicate record handle")

	// ErrNilRecord is returned when a nil record is added.
	ErrNilRecord = errors.New("record must not be nil")
)

// LineType is a named dash pattern. Positive pattern entries are dashes,
// negative entries are gaps and zero is a dot.
type LineType struct {
	Handle      Handle
	Name        string
	Description string
	Pattern     []float64
}

// PatternLength returns the total length of one pattern repetition.
func (lt *LineType) PatternLength() float64 {
	var total float64
	for _, v := range lt.Pattern {
		if v < 0 {
			v = -v
		}
		total += v
	}
	return total
}

// BlockRecord is a block definition. Leader lines use block records as
// arrowhead symbols.
type BlockRecord struct {
	Handle Handle
	Name   string
}

// Resolver maps persisted handles to shared catalog instances.
// Implementations must return the same pointer for the same handle so that
// references stay shared.
type Resolver interface {
	LineType(h Handle) (*LineType, bool)
	BlockRecord(h Handle) (*BlockRecord, bool)
}

// Catalog is an in-memory [Resolver].
//
// The zero value is not usable; use [New]. Catalog is not safe for concurrent
// mutation. Concurrent lookups are safe once loading is finished.
type Catalog struct {
	lineTypes map[Handle]*LineType
	blocks    map[Handle]*BlockRecord
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		lineTypes: make(map[Handle]*LineType),
		blocks:    make(map[Handle]*BlockRecord),
	}
}

// AddLineType registers a line type under its handle.
func (c *Catalog) AddLineType(lt *LineType) error {
	if lt == nil {
		return ErrNilRecord
	}
	if lt.Handle.IsZero() {
		return fmt.Errorf("line type %q: %w", lt.Name, ErrInvalidHandle)
	}
	if _, exists := c.lineTypes[lt.Handle]; exists {
		return fmt.Errorf("line type %s: %w", lt.Handle, ErrDuplicateHandle)
	}
	c.lineTypes[lt.Handle] = lt
	return nil
}

// AddBlockRecord registers a block record under its handle.
func (c *Catalog) AddBlockRecord(b *BlockRecord) error {
	if b == nil {
		return ErrNilRecord
	}
	if b.Handle.IsZero() {
		return fmt.Errorf("block %q: %w", b.Name, ErrInvalidHandle)
	}
	if _, exists := c.blocks[b.Handle]; exists {
		return fmt.Errorf("block %s: %w", b.Handle, ErrDuplicateHandle)
	}
	c.blocks[b.Handle] = b
	return nil
}

// LineType returns the line type registered under h.
func (c *Catalog) LineType(h Handle) (*LineType, bool) {
	lt, ok := c.lineTypes[h]
	return lt, ok
}

// BlockRecord returns the block record registered under h.
func (c *Catalog) BlockRecord(h Handle) (*BlockRecord, bool) {
	b, ok := c.blocks[h]
	return b, ok
}

// LineTypeByName finds a line type by case-insensitive name.
func (c *Catalog) LineTypeByName(name string) (*LineType, bool) {
	for _, lt := range c.lineTypes {
		if strings.EqualFold(lt.Name, name) {
			return lt, true
		}
	}
	return nil, false
}

// BlockRecordByName finds a block record by case-insensitive name.
func (c *Catalog) BlockRecordByName(name string) (*BlockRecord, bool) {
	for _, b := range c.blocks {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return nil, false
}

// LineTypes returns all line types sorted by handle.
func (c *Catalog) LineTypes() []*LineType {
	out := make([]*LineType, 0, len(c.lineTypes))
	for _, lt := range c.lineTypes {
		out = append(out, lt)
	}
	slices.SortFunc(out, func(a, b *LineType) int { return compareHandles(a.Handle, b.Handle) })
	return out
}

// BlockRecords returns all block records sorted by handle.
func (c *Catalog) BlockRecords() []*BlockRecord {
	out := make([]*BlockRecord, 0, len(c.blocks))
	for _, b := range c.blocks {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b *BlockRecord) int { return compareHandles(a.Handle, b.Handle) })
	return out
}

// Len returns the total number of records.
func (c *Catalog) Len() int { return len(c.lineTypes) + len(c.blocks) }

func compareHandles(a, b Handle) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var _ Resolver = (*Catalog)(nil)
