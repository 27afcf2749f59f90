/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides token document shape detection.
package schema

import "fmt"

// Shape represents a token document shape.
type Shape int

const (
	// Unknown represents an undetected or unrecognized document shape.
	Unknown Shape = iota

	// Flat represents the plain category -> key -> {value, type} shape.
	Flat

	// TokenStudio represents the nested Token-Studio export shape, with
	// $-prefixed metadata keys and $value/$type leaf fields.
	TokenStudio
)

// String returns the string representation of the shape.
func (s Shape) String() string {
	switch s {
	case Flat:
		return "flat"
	case TokenStudio:
		return "token-studio"
	default:
		return "unknown"
	}
}

// FromString returns the shape from a string representation.
func FromString(s string) (Shape, error) {
	switch s {
	case "flat":
		return Flat, nil
	case "token-studio", "tokenstudio", "studio":
		return TokenStudio, nil
	default:
		return Unknown, fmt.Errorf("unrecognized document shape: %s", s)
	}
}

// Detect inspects a decoded token document and reports its shape. A document
// is Token-Studio shaped if any level carries a $-prefixed key; otherwise it
// is treated as flat.
func Detect(data map[string]any) Shape {
	if hasDollarKeys(data) {
		return TokenStudio
	}
	return Flat
}

func hasDollarKeys(data map[string]any) bool {
	for key, value := range data {
		if len(key) > 0 && key[0] == '$' {
			return true
		}
		if nested, ok := value.(map[string]any); ok {
			if hasDollarKeys(nested) {
				return true
			}
		}
	}
	return false
}
