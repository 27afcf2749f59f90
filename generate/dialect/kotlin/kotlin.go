/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package kotlin emits design tokens as a Jetpack Compose object, one nested
// object per category.
package kotlin

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Generator outputs Compose token constants.
type Generator struct{}

// New creates a new Kotlin generator.
func New() *Generator {
	return &Generator{}
}

// Filename returns the artifact file name.
func (g *Generator) Filename() string {
	return "Tokens.kt"
}

// Generate converts a resolved tree to a Kotlin source file. Colors use the
// Compose 0xAARRGGBB constructor, dimensions become dp values, shadows are
// decomposed into offset/blur/color fields.
func (g *Generator) Generate(tree *token.Tree, opts dialect.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("import androidx.compose.ui.graphics.Color\n")
	sb.WriteString("import androidx.compose.ui.unit.dp\n\n")

	objectName := "DesignTokens"
	if opts.Prefix != "" {
		objectName = dialect.ToPascalCase(opts.Prefix) + "Tokens"
	}
	fmt.Fprintf(&sb, "object %s {\n", objectName)

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
		fmt.Fprintf(&sb, "    object %s {\n", dialect.ToPascalCase(name))
		sb.WriteString(body.String())
		sb.WriteString("    }\n")
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

func writeToken(sb *strings.Builder, path []string, d *token.Descriptor) {
	name := dialect.PathName(path, dialect.ToPascalCase)

	switch d.Type {
	case token.TypeColor:
		c, ok := dialect.ParseColor(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "        val %s = Color(0x%s)\n", name, c.ARGBHex())

	case token.TypeDimension, token.TypeSpacing:
		n, ok := dialect.DimensionToUnits(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "        val %s = %s.dp\n", name, dialect.FormatNumber(n))

	case token.TypeFontWeight:
		n, ok := dialect.DimensionToUnits(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "        const val %s = %s\n", name, dialect.FormatNumber(n))

	case token.TypeFontFamily:
		families := dialect.SplitFontFamily(d.Value)
		if len(families) == 0 {
			return
		}
		fmt.Fprintf(sb, "        const val %s = %q\n", name, families[0])

	default:
		if shadow, ok := dialect.ParseShadow(d.Value); ok {
			writeShadow(sb, name, shadow)
			return
		}
		fmt.Fprintf(sb, "        const val %s = %q\n", name, d.Value)
	}
}

func writeShadow(sb *strings.Builder, name string, s dialect.Shadow) {
	fmt.Fprintf(sb, "        val %sOffsetX = %s.dp\n", name, dialect.FormatNumber(s.OffsetX))
	fmt.Fprintf(sb, "        val %sOffsetY = %s.dp\n", name, dialect.FormatNumber(s.OffsetY))
	fmt.Fprintf(sb, "        val %sBlur = %s.dp\n", name, dialect.FormatNumber(s.Blur))
	if c, ok := dialect.ParseColor(s.Color); ok {
		fmt.Fprintf(sb, "        val %sColor = Color(0x%s)\n", name, c.ARGBHex())
	}
}
