package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/dxf"
	"github.com/matzehuels/mleader/pkg/mleader"
)

// =============================================================================
// Document Serialization API
// =============================================================================

// Marshal encodes doc in format f.
func Marshal(doc Document, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes doc in format f to w. The DXF format writes roots only.
func Write(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatDXF:
		roots, err := doc.ToRoots(handleResolver{})
		if err != nil {
			return err
		}
		return EncodeDXF(w, roots)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Read decodes a document in format f. res is only consulted for DXF input,
// whose handles are resolved while decoding.
func Read(r io.Reader, f Format, res catalog.Resolver) (Document, error) {
	var doc Document
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatDXF:
		roots, err := DecodeDXF(r, res)
		if err != nil {
			return Document{}, err
		}
		doc = New("", roots)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return doc, nil
}

// ReadFile reads a document, choosing the format from the file extension.
func ReadFile(path string, res catalog.Resolver) (Document, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return Document{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Read(file, f, res)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// WriteFile writes doc, choosing the format from the file extension.
func WriteFile(path string, doc Document) error {
	f, err := DetectFormat(path)
	if err != nil {
		return err
	}
	data, err := Marshal(doc, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EncodeDXF writes roots as a tagged stream.
func EncodeDXF(w io.Writer, roots []*mleader.LeaderRoot) error {
	return dxf.NewEncoder(w).EncodeRoots(roots)
}

// DecodeDXF reads every root from a tagged stream.
func DecodeDXF(r io.Reader, res catalog.Resolver) ([]*mleader.LeaderRoot, error) {
	return dxf.NewDecoder(r, res).DecodeRoots()
}
