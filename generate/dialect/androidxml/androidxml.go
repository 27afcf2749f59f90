/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package androidxml emits design tokens as Android XML resources.
package androidxml

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Generator outputs Android XML resources.
type Generator struct{}

// New creates a new Android XML generator.
func New() *Generator {
	return &Generator{}
}

// Filename returns the artifact file name.
func (g *Generator) Filename() string {
	return "tokens.xml"
}

// Generate converts a resolved tree to an Android resources file. Colors
// emit #AARRGGBB, dimensions emit dp values, shadows decompose into dimen
// and color entries.
func (g *Generator) Generate(tree *token.Tree, opts dialect.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	sb.WriteString("\n<resources>\n")

	tree.Walk(func(path []string, d *token.Descriptor) {
		baseName := dialect.ToSnakeCase(strings.Join(path, "_"))
		if opts.Prefix != "" {
			baseName = dialect.ToSnakeCase(opts.Prefix) + "_" + baseName
		}
		writeToken(&sb, baseName, d)
	})

	sb.WriteString("</resources>\n")
	return []byte(sb.String()), nil
}

func writeToken(sb *strings.Builder, name string, d *token.Descriptor) {
	switch d.Type {
	case token.TypeColor:
		c, ok := dialect.ParseColor(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "    <color name=%q>#%s</color>\n", name, c.ARGBHex())

	case token.TypeDimension, token.TypeSpacing:
		n, ok := dialect.DimensionToUnits(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "    <dimen name=%q>%sdp</dimen>\n", name, dialect.FormatNumber(n))

	case token.TypeFontWeight:
		n, ok := dialect.DimensionToUnits(d.Value)
		if !ok {
			return
		}
		fmt.Fprintf(sb, "    <integer name=%q>%s</integer>\n", name, dialect.FormatNumber(n))

	default:
		if shadow, ok := dialect.ParseShadow(d.Value); ok {
			writeShadow(sb, name, shadow)
			return
		}
		fmt.Fprintf(sb, "    <string name=%q>%s</string>\n",
			name, dialect.EscapeXML(d.Value))
	}
}

func writeShadow(sb *strings.Builder, name string, s dialect.Shadow) {
	fmt.Fprintf(sb, "    <dimen name=%q>%sdp</dimen>\n", name+"_offset_x", dialect.FormatNumber(s.OffsetX))
	fmt.Fprintf(sb, "    <dimen name=%q>%sdp</dimen>\n", name+"_offset_y", dialect.FormatNumber(s.OffsetY))
	fmt.Fprintf(sb, "    <dimen name=%q>%sdp</dimen>\n", name+"_blur", dialect.FormatNumber(s.Blur))
	if c, ok := dialect.ParseColor(s.Color); ok {
		fmt.Fprintf(sb, "    <color name=%q>#%s</color>\n", name+"_color", c.ARGBHex())
	}
}
