/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"errors"
	"strings"
)

// ErrCircularReference indicates a token references itself, directly or transitively.
var ErrCircularReference = errors.New("circular token reference")

// ErrInvalidDocument indicates the token document failed structural validation.
var ErrInvalidDocument = errors.New("invalid token document")

// StructuralError describes one structural problem in a token document.
// Validation collects every problem in a single pass rather than failing on
// the first, so users can fix them together.
type StructuralError struct {
	// Path is the dot path to the problematic element, empty for
	// document-level errors.
	Path string

	// Message describes what's wrong.
	Message string

	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}
