/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flutter emits design tokens as a Dart class of static constants.
package flutter

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Generator outputs Flutter/Dart token constants.
type Generator struct{}

// New creates a new Flutter generator.
func New() *Generator {
	return &Generator{}
}

// Filename returns the artifact file name.
func (g *Generator) Filename() string {
	return "tokens.dart"
}

// Generate converts a resolved tree to a Dart source file. Colors use the
// 0xAARRGGBB Color constructor, dimensions become doubles in logical pixels.
func (g *Generator) Generate(tree *token.Tree, opts dialect.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("import 'package:flutter/material.dart';\n\n")

	className := "DesignTokens"
	if opts.Prefix != "" {
		className = dialect.ToPascalCase(opts.Prefix) + "Tokens"
	}
	fmt.Fprintf(&sb, "abstract final class %s {\n", className)

	first := true
	for _, name := range tree.Categories() {
		group := tree.Category(name)
		if group == nil || group.Empty() {
			continue
		}

		var body strings.Builder
		group.Walk([]string{name}, func(path []string, d *token.Descriptor) {
			writeToken(&body, path, d)
		})
		if body.Len() == 0 {
			continue
		}

		if !first {
			sb.WriteString("\n")
		}
		first = false
		fmt.Fprintf(&sb, "  // %s\n", name)
		sb.WriteString(body.String())
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
		fmt.Fprintf(sb, "  static const Color %s = Color(0x%s);\n", name, c.ARGBHex())

	case token.TypeDimension, token.TypeSpacing, token.TypeFontWeight:
		n, ok := dialect.DimensionToUnits(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "  static const double %s = %s;\n", name, dialect.FormatNumber(n))

	case token.TypeFontFamily:
		families := dialect.SplitFontFamily(d.Value)
		if len(families) == 0 {
			return
		}
		fmt.Fprintf(sb, "  static const String %s = '%s';\n", name, families[0])

	default:
		if shadow, ok := dialect.ParseShadow(d.Value); ok {
			writeShadow(sb, name, shadow)
			return
		}
		fmt.Fprintf(sb, "  static const String %s = '%s';\n",
			name, strings.ReplaceAll(d.Value, "'", `\'`))
	}
}

func writeShadow(sb *strings.Builder, name string, s dialect.Shadow) {
	color := "Color(0xFF000000)"
	if c, ok := dialect.ParseColor(s.Color); ok {
		color = fmt.Sprintf("Color(0x%s)", c.ARGBHex())
	}
	fmt.Fprintf(sb, "  static const BoxShadow %s = BoxShadow(\n", name)
	fmt.Fprintf(sb, "    offset: Offset(%s, %s),\n",
		dialect.FormatNumber(s.OffsetX), dialect.FormatNumber(s.OffsetY))
	fmt.Fprintf(sb, "    blurRadius: %s,\n", dialect.FormatNumber(s.Blur))
	fmt.Fprintf(sb, "    spreadRadius: %s,\n", dialect.FormatNumber(s.Spread))
	fmt.Fprintf(sb, "    color: %s,\n", color)
	sb.WriteString("  );\n")
}
