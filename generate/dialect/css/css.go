/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css emits design tokens as CSS custom properties under :root,
// grouped per category with a section comment.
package css

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Generator outputs CSS custom properties.
type Generator struct{}

// New creates a new CSS generator.
func New() *Generator {
	return &Generator{}
}

// Filename returns the artifact file name.
func (g *Generator) Filename() string {
	return "tokens.css"
}

// Generate converts a resolved tree to CSS custom properties. Empty or
// absent categories are omitted, section comments included.
func (g *Generator) Generate(tree *token.Tree, opts dialect.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(":root {\n")

	first := true
	for _, name := range tree.Categories() {
		group := tree.Category(name)
		if group == nil || group.Empty() {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false

		fmt.Fprintf(&sb, "  /* %s */\n", name)
		group.Walk([]string{name}, func(path []string, d *token.Descriptor) {
			if d.Description != "" {
				fmt.Fprintf(&sb, "  /* %s */\n", d.Description)
			}
			varName := token.CSSVariableName(strings.Join(path, "."), opts.Prefix)
			fmt.Fprintf(&sb, "  %s: %s;\n", varName, d.Value)
		})
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}
