package errors

import (
	"strings"
	"unicode"
)

// ValidateExtension validates a filename extension supplied on the command line.
// Extensions must be non-empty after stripping the optional leading dot, contain
// no path separators, and no control characters.
func ValidateExtension(ext string) error {
	if ext == "" || ext == "." {
		return New(ErrCodeInvalidExtension, "extension cannot be empty")
	}

	if strings.ContainsAny(ext, "/\\") {
		return New(ErrCodeInvalidExtension, "extension cannot contain path separators: %q", ext)
	}

	for _, r := range ext {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidExtension, "extension contains invalid control characters")
		}
	}

	return nil
}

// NormalizeExtension ensures an extension carries a single leading dot, so
// that "py" and ".py" are treated identically.
func NormalizeExtension(ext string) string {
	return "." + strings.TrimLeft(ext, ".")
}

// ValidateFontSize validates a body font size in points.
// The bounds are generous; anything outside them produces unusable pages.
func ValidateFontSize(size float64) error {
	if size < 4 || size > 72 {
		return New(ErrCodeInvalidFontSize, "font size must be between 4 and 72 points, got %g", size)
	}
	return nil
}

// ValidateOutputPath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateThemeName validates a highlight theme name.
// Theme names are simple identifiers; the highlight package decides whether
// the name actually resolves to a known theme.
func ValidateThemeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTheme, "theme name cannot be empty")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return New(ErrCodeInvalidTheme, "invalid theme name: %q", name)
		}
	}

	return nil
}
