/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme emits design tokens as a nested JavaScript theming-config
// object mirroring the category/key structure of the tree.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Generator outputs a JS theme configuration module.
type Generator struct{}

// New creates a new theme-config generator.
func New() *Generator {
	return &Generator{}
}

// Filename returns the artifact file name.
func (g *Generator) Filename() string {
	return "theme.tokens.js"
}

// Generate converts a resolved tree to an ESM theme object. Keys are
// serialized in sorted order so output is stable across runs. Comma-separated
// fontFamily stacks become ordered arrays of unquoted family names.
func (g *Generator) Generate(tree *token.Tree, opts dialect.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("export const theme = {\n")

	for _, name := range tree.Categories() {
		group := tree.Category(name)
		if group == nil || group.Empty() {
			continue
		}
		fmt.Fprintf(&sb, "  %s: {\n", objectKey(name))
		writeGroup(&sb, group, 2)
		sb.WriteString("  },\n")
	}

	sb.WriteString("};\n")
	return []byte(sb.String()), nil
}

func writeGroup(sb *strings.Builder, group *token.Group, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, key := range group.TokenKeys() {
		d := group.Tokens[key]
		fmt.Fprintf(sb, "%s%s: %s,\n", indent, objectKey(key), tokenLiteral(d))
	}
	for _, key := range group.GroupKeys() {
		fmt.Fprintf(sb, "%s%s: {\n", indent, objectKey(key))
		writeGroup(sb, group.Groups[key], depth+1)
		fmt.Fprintf(sb, "%s},\n", indent)
	}
}

// tokenLiteral renders a token value. Font stacks become arrays; everything
// else is a plain string literal.
func tokenLiteral(d *token.Descriptor) string {
	if d.Type == token.TypeFontFamily && strings.Contains(d.Value, ",") {
		families := dialect.SplitFontFamily(d.Value)
		quoted := make([]string, len(families))
		for i, f := range families {
			quoted[i] = strconv.Quote(f)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	}
	return strconv.Quote(d.Value)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// objectKey quotes keys that are not valid JS identifiers (numeric shade
// keys like "500").
func objectKey(key string) string {
	if isIdentifier(key) {
		return key
	}
	return strconv.Quote(key)
}
