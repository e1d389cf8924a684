package errors

import (
	"strings"
	"unicode"
)

// ValidatePath checks a local file path given on the command line.
//
// Absolute and relative paths are both accepted. The path must be non-empty,
// at most 4096 bytes and free of control characters.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateDocumentName checks the display name of a stored document.
//
// Names are 1 to 128 characters, without control characters or path
// separators, and not "." or "..".
func ValidateDocumentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "document name cannot be empty")
	}

	const maxNameLength = 128
	if len([]rune(name)) > maxNameLength {
		return New(ErrCodeInvalidName, "document name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "document name contains invalid control characters")
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidName, "document name cannot contain path separators")
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidName, "document name %q is reserved", name)
	}
	return nil
}
