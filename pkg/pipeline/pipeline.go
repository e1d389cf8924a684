// Package pipeline loads, converts and duplicates leader documents with
// caching, for use by the command line and any other front end.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	if err := runner.SetCatalog(cat); err != nil {
//	    return err
//	}
//
//	src, err := pipeline.SourceFromFile("detail-a.dxf")
//	loaded, err := runner.Load(ctx, src)
//	out, hit, err := runner.Convert(ctx, src, document.FormatJSON)
//
//	dup, err := pipeline.Duplicate(loaded.Roots, 0)
//
// Errors leaving the pipeline are *errors.Error values from pkg/errors, so
// callers can branch on their code.
package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mleader/pkg/document"
	mlerrors "github.com/matzehuels/mleader/pkg/errors"
)

// Source is an encoded document and the format it is in.
type Source struct {
	// Name is used as the document name when the encoding carries none.
	Name   string
	Data   []byte
	Format document.Format
}

// SourceFromFile reads path, picking the format from its extension.
func SourceFromFile(path string) (Source, error) {
	if err := mlerrors.ValidatePath(path); err != nil {
		return Source{}, err
	}
	f, err := document.DetectFormat(path)
	if err != nil {
		return Source{}, mlerrors.Wrap(mlerrors.ErrCodeUnsupported, err, "unsupported input %s", path)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Source{}, mlerrors.Wrap(mlerrors.ErrCodeFileNotFound, err, "file not found: %s", path)
	}
	if err != nil {
		return Source{}, mlerrors.Wrap(mlerrors.ErrCodeInternal, err, "read %s", path)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Source{Name: name, Data: data, Format: f}, nil
}
