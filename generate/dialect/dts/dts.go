/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dts emits TypeScript declarations reflecting the shape of the
// token tree. Every leaf types as string, so the declarations only change
// when the set of keys changes, not when values do.
package dts

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Generator outputs .d.ts type declarations.
type Generator struct{}

// New creates a new declarations generator.
func New() *Generator {
	return &Generator{}
}

// Filename returns the artifact file name.
func (g *Generator) Filename() string {
	return "tokens.d.ts"
}

// Generate emits one named type per category plus an aggregate Theme type.
func (g *Generator) Generate(tree *token.Tree, opts dialect.Options) ([]byte, error) {
	var sb strings.Builder

	var typeNames []string
	for _, name := range tree.Categories() {
		group := tree.Category(name)
		if group == nil || group.Empty() {
			continue
		}
		typeName := dialect.ToPascalCase(name) + "Tokens"
		typeNames = append(typeNames, typeName)

		fmt.Fprintf(&sb, "export type %s = {\n", typeName)
		writeGroup(&sb, group, 1)
		sb.WriteString("};\n\n")
	}

	sb.WriteString("export type Theme = {\n")
	i := 0
	for _, name := range tree.Categories() {
		group := tree.Category(name)
		if group == nil || group.Empty() {
			continue
		}
		fmt.Fprintf(&sb, "  %s: %s;\n", memberKey(name), typeNames[i])
		i++
	}
	sb.WriteString("};\n")

	return []byte(sb.String()), nil
}

func writeGroup(sb *strings.Builder, group *token.Group, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, key := range group.TokenKeys() {
		fmt.Fprintf(sb, "%s%s: string;\n", indent, memberKey(key))
	}
	for _, key := range group.GroupKeys() {
		fmt.Fprintf(sb, "%s%s: {\n", indent, memberKey(key))
		writeGroup(sb, group.Groups[key], depth+1)
		fmt.Fprintf(sb, "%s};\n", indent)
	}
}

func memberKey(key string) string {
	for i, r := range key {
		valid := r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9' && i > 0)
		if !valid {
			return strconv.Quote(key)
		}
	}
	if key == "" {
		return `""`
	}
	return key
}
