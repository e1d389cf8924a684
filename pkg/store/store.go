// Package store persists documents by ID, either as files in a directory or
// in a MongoDB collection.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mleader/pkg/document"
)

var (
	// ErrNotFound is returned when no document has the requested ID.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned for IDs that are not UUIDs.
	ErrInvalidID = errors.New("invalid document id")
)

// Store persists documents.
type Store interface {
	// Put inserts doc or replaces the document with the same ID.
	Put(ctx context.Context, doc document.Document) error
	// Get returns the document with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (document.Document, error)
	// List summarizes all documents, newest first.
	List(ctx context.Context) ([]Summary, error)
	// Delete removes a document or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	Close() error
}

// Summary describes a stored document without its geometry.
type Summary struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Roots     int
	Lines     int
}

// Summarize builds the summary of doc.
func Summarize(doc document.Document) Summary {
	return Summary{
		ID:        doc.ID,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
		Roots:     len(doc.Roots),
		Lines:     doc.LineCount(),
	}
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidID, id)
	}
	return nil
}

func sortNewestFirst(s []Summary) {
	slices.SortStableFunc(s, func(a, b Summary) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
