package errors

import (
	"regexp"
	"strings"
)

// ValidateBinCount validates the group count for weight binning.
// Bin counts must be positive; a zero or negative count cannot partition
// a weight range.
func ValidateBinCount(k int) error {
	if k < 1 {
		return New(ErrCodeInvalidInput, "bin count must be positive, got %d", k)
	}
	return nil
}

// ValidateAlpha validates an opacity value. Alpha must lie in [0, 1].
func ValidateAlpha(alpha float64) error {
	if alpha < 0 || alpha > 1 {
		return New(ErrCodeInvalidInput, "alpha must be in [0, 1], got %g", alpha)
	}
	return nil
}

// validLineStyles is the set of recognized dash patterns.
var validLineStyles = map[string]bool{
	"solid":  true,
	"dashed": true,
	"dotted": true,
}

// ValidateLineStyle checks that the style names a recognized dash pattern.
func ValidateLineStyle(style string) error {
	if !validLineStyles[style] {
		return New(ErrCodeInvalidInput, "line style must be 'solid', 'dashed', or 'dotted', got %q", style)
	}
	return nil
}

// hexColorRegex matches 3- or 6-digit hex color strings with a leading '#'.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor checks that s is a well-formed hex color such as
// "#abacab" or "#fff". Named colors are validated by the palette package.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidInput, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidInput, "invalid hex color: %q", s)
	}
	return nil
}

// ValidatePropertyName validates an edge property identifier.
// Property names are simple identifiers: no whitespace, no control
// characters, at most 128 characters.
func ValidatePropertyName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "property name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "property name too long (max 128 characters)")
	}
	if strings.ContainsAny(name, " \t\n\r\x00") {
		return New(ErrCodeInvalidInput, "property name contains invalid characters: %q", name)
	}
	return nil
}
