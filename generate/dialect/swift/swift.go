/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package swift emits design tokens as SwiftUI constants, one nested enum
// per category.
package swift

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Generator outputs SwiftUI token constants.
type Generator struct{}

// New creates a new Swift generator.
func New() *Generator {
	return &Generator{}
}

// Filename returns the artifact file name.
func (g *Generator) Filename() string {
	return "Tokens.swift"
}

// Generate converts a resolved tree to a Swift source file. Dimensions are
// converted to points, colors to Color initializers, shadows decomposed into
// offset/radius/color fields. Categories with no representable tokens are
// omitted.
func (g *Generator) Generate(tree *token.Tree, opts dialect.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("import SwiftUI\n\n")

	enumName := "DesignTokens"
	if opts.Prefix != "" {
		enumName = dialect.ToPascalCase(opts.Prefix) + "Tokens"
	}
	fmt.Fprintf(&sb, "public enum %s {\n", enumName)

	first := true
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

		if !first {
			sb.WriteString("\n")
		}
		first = false
		fmt.Fprintf(&sb, "    public enum %s {\n", dialect.ToPascalCase(name))
		sb.WriteString(body.String())
		sb.WriteString("    }\n")
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

func writeToken(sb *strings.Builder, path []string, d *token.Descriptor) {
	name := dialect.PathName(path, dialect.ToCamelCase)

	switch d.Type {
	case token.TypeColor:
		c, ok := dialect.ParseColor(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb,
			"        public static let %s = Color(red: %.3f, green: %.3f, blue: %.3f, opacity: %.3f)\n",
			name, dialect.Channel(c.R), dialect.Channel(c.G), dialect.Channel(c.B), dialect.Channel(c.A))

	case token.TypeDimension, token.TypeSpacing:
		n, ok := dialect.DimensionToUnits(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "        public static let %s: CGFloat = %s\n",
			name, dialect.FormatNumber(n))

	case token.TypeFontWeight:
		n, ok := dialect.DimensionToUnits(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "        public static let %s: CGFloat = %s\n",
			name, dialect.FormatNumber(n))

	case token.TypeFontFamily:
		families := dialect.SplitFontFamily(d.Value)
		if len(families) == 0 {
			return
		}
		fmt.Fprintf(sb, "        public static let %s = %q\n", name, families[0])

	default:
		if shadow, ok := dialect.ParseShadow(d.Value); ok {
			writeShadow(sb, name, shadow)
			return
		}
		fmt.Fprintf(sb, "        public static let %s = %q\n", name, d.Value)
	}
}

func writeShadow(sb *strings.Builder, name string, s dialect.Shadow) {
	fmt.Fprintf(sb, "        public static let %sOffsetX: CGFloat = %s\n", name, dialect.FormatNumber(s.OffsetX))
	fmt.Fprintf(sb, "        public static let %sOffsetY: CGFloat = %s\n", name, dialect.FormatNumber(s.OffsetY))
	fmt.Fprintf(sb, "        public static let %sRadius: CGFloat = %s\n", name, dialect.FormatNumber(s.Blur))
	if c, ok := dialect.ParseColor(s.Color); ok {
		fmt.Fprintf(sb,
			"        public static let %sColor = Color(red: %.3f, green: %.3f, blue: %.3f, opacity: %.3f)\n",
			name, dialect.Channel(c.R), dialect.Channel(c.G), dialect.Channel(c.B), dialect.Channel(c.A))
	}
}
