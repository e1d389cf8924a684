package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a serialization of a [Document].
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatDXF  Format = "dxf"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatDXF}

// ErrUnknownFormat is returned for unsupported format names or file
// extensions.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "dxf":
		return FormatDXF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DetectFormat picks a format from a file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Ext returns the canonical file extension, including the dot.
func (f Format) Ext() string { return "." + string(f) }

func (f Format) String() string { return string(f) }
