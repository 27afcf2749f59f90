/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token types: descriptors, groups, and the
// category-ordered token tree.
package token

import "strings"

// Token value types.
const (
	TypeColor      = "color"
	TypeDimension  = "dimension"
	TypeFontWeight = "fontWeight"
	TypeFontFamily = "fontFamily"
	TypeSpacing    = "spacing"
	TypeOther      = "other"
)

// Descriptor is a single design token leaf. It is immutable once loaded;
// resolution produces a derived value and never mutates the descriptor.
type Descriptor struct {
	// Value is the raw value, possibly containing {reference} placeholders.
	Value string `json:"value"`

	// Type is the semantic kind (color, dimension, fontWeight, fontFamily, spacing, other).
	Type string `json:"type"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`
}

// IsAlias reports whether the descriptor's entire value is a single
// {reference} placeholder, i.e. the token merely renames another token.
func (d *Descriptor) IsAlias() bool {
	refs := ExtractAllRefs(d.Value)
	return len(refs) == 1 && "{"+refs[0]+"}" == d.Value
}

// CSSVariableName returns the CSS custom property name for a token path,
// e.g. "--colors-primary-500", or "--ds-colors-primary-500" with prefix "ds".
func CSSVariableName(dotPath, prefix string) string {
	name := strings.ReplaceAll(dotPath, ".", "-")
	if name == "" {
		return ""
	}
	if prefix != "" {
		return "--" + strings.ReplaceAll(prefix, ".", "-") + "-" + name
	}
	return "--" + name
}
