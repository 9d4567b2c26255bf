package errors

import (
	"strings"
	"unicode"
)

// ValidateName validates a sheet or formation set name.
// Names are used in output file names, so they are restricted to a
// conservative character set.
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSheet, "name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidSheet, "name too long (max 128 characters)")
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			continue
		}
		return New(ErrCodeInvalidSheet, "name %q contains invalid character %q", name, r)
	}
	return nil
}

// ValidateOutputName validates an output file name pattern.
// It must be a relative path without traversal sequences; at most one
// %d-style verb is allowed.
//
// Validation rules:
//   - Name cannot be empty
//   - No null bytes or control characters
//   - No absolute paths
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid characters")
		}
	}

	if strings.HasPrefix(name, "/") {
		return New(ErrCodeInvalidPath, "output name must be relative (cannot start with /)")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "output name cannot contain path traversal sequences (..)")
	}
	if strings.Contains(name, "\\") {
		return New(ErrCodeInvalidPath, "output name cannot contain backslashes")
	}
	if n := strings.Count(strings.ReplaceAll(name, "%%", ""), "%"); n > 1 {
		return New(ErrCodeInvalidPath, "output name %q has %d format verbs (max 1)", name, n)
	}

	return nil
}
