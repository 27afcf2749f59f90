/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scss emits design tokens as SCSS variables with kebab-case names.
package scss

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Generator outputs SCSS variables.
type Generator struct{}

// New creates a new SCSS generator.
func New() *Generator {
	return &Generator{}
}

// Filename returns the artifact file name.
func (g *Generator) Filename() string {
	return "_tokens.scss"
}

// Generate converts a resolved tree to SCSS variable declarations.
func (g *Generator) Generate(tree *token.Tree, opts dialect.Options) ([]byte, error) {
	var sb strings.Builder

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

		fmt.Fprintf(&sb, "// %s\n", name)
		group.Walk([]string{name}, func(path []string, d *token.Descriptor) {
			if d.Description != "" {
				fmt.Fprintf(&sb, "// %s\n", d.Description)
			}
			varName := strings.Join(path, "-")
			if opts.Prefix != "" {
				varName = opts.Prefix + "-" + varName
			}
			fmt.Fprintf(&sb, "$%s: %s;\n", varName, d.Value)
		})
	}

	return []byte(sb.String()), nil
}
