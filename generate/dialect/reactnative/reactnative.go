/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package reactnative emits design tokens as a React Native TypeScript
// module. Dimensions become plain numbers (density-independent units);
// colors stay hex strings, which RN consumes natively.
package reactnative

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Generator outputs a React Native token module.
type Generator struct{}

// New creates a new React Native generator.
func New() *Generator {
	return &Generator{}
}

// Filename returns the artifact file name.
func (g *Generator) Filename() string {
	return "tokens.rn.ts"
}

// Generate converts a resolved tree to a TypeScript const object, one
// section per category, camelCase keys.
func (g *Generator) Generate(tree *token.Tree, opts dialect.Options) ([]byte, error) {
	var sb strings.Builder

	exportName := "tokens"
	if opts.Prefix != "" {
		exportName = dialect.ToCamelCase(opts.Prefix + "-tokens")
	}
	fmt.Fprintf(&sb, "export const %s = {\n", exportName)

	for _, name := range tree.Categories() {
		group := tree.Category(name)
		if group == nil || group.Empty() {
			continue
		}

		var body strings.Builder
		group.Walk(nil, func(path []string, d *token.Descriptor) {
			writeToken(&body, path, d)
		})
		if body.Len() == 0 {
			continue
		}

		fmt.Fprintf(&sb, "  %s: {\n", dialect.ToCamelCase(name))
		sb.WriteString(body.String())
		sb.WriteString("  },\n")
	}

	sb.WriteString("} as const;\n")
	return []byte(sb.String()), nil
}

func writeToken(sb *strings.Builder, path []string, d *token.Descriptor) {
	// Object keys, not identifiers: numeric shade keys stay as-is.
	name := dialect.ToCamelCase(strings.Join(path, "-"))

	switch d.Type {
	case token.TypeDimension, token.TypeSpacing, token.TypeFontWeight:
		n, ok := dialect.DimensionToUnits(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "    %s: %s,\n", name, dialect.FormatNumber(n))

	case token.TypeFontFamily:
		families := dialect.SplitFontFamily(d.Value)
		if len(families) == 0 {
			return
		}
		fmt.Fprintf(sb, "    %s: %s,\n", name, strconv.Quote(families[0]))

	default:
		if shadow, ok := dialect.ParseShadow(d.Value); ok {
			writeShadow(sb, name, shadow)
			return
		}
		fmt.Fprintf(sb, "    %s: %s,\n", name, strconv.Quote(d.Value))
	}
}

// writeShadow emits the RN shadow props shape.
func writeShadow(sb *strings.Builder, name string, s dialect.Shadow) {
	fmt.Fprintf(sb, "    %s: {\n", name)
	fmt.Fprintf(sb, "      shadowOffset: { width: %s, height: %s },\n",
		dialect.FormatNumber(s.OffsetX), dialect.FormatNumber(s.OffsetY))
	fmt.Fprintf(sb, "      shadowRadius: %s,\n", dialect.FormatNumber(s.Blur))
	if s.Color != "" {
		fmt.Fprintf(sb, "      shadowColor: %s,\n", strconv.Quote(s.Color))
	}
	sb.WriteString("    },\n")
}
