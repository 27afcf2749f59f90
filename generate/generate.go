/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate turns a resolved token tree into output artifacts, one
// per requested dialect, and writes them idempotently.
package generate

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/generate/dialect/androidxml"
	"bennypowers.dev/tokensmith/generate/dialect/css"
	"bennypowers.dev/tokensmith/generate/dialect/dts"
	"bennypowers.dev/tokensmith/generate/dialect/flutter"
	"bennypowers.dev/tokensmith/generate/dialect/kotlin"
	"bennypowers.dev/tokensmith/generate/dialect/reactnative"
	"bennypowers.dev/tokensmith/generate/dialect/scss"
	"bennypowers.dev/tokensmith/generate/dialect/swift"
	"bennypowers.dev/tokensmith/generate/dialect/theme"
	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/token"
)

// Format represents an output dialect.
type Format string

const (
	// FormatCSS outputs CSS custom properties with :root selector.
	FormatCSS Format = "css"

	// FormatSCSS outputs SCSS variables with kebab-case names.
	FormatSCSS Format = "scss"

	// FormatTheme outputs a JS theming-config object.
	FormatTheme Format = "theme"

	// FormatDTS outputs TypeScript declarations describing the tree shape.
	FormatDTS Format = "dts"

	// FormatSwift outputs SwiftUI constants.
	FormatSwift Format = "swift"

	// FormatKotlin outputs a Jetpack Compose token object.
	FormatKotlin Format = "kotlin"

	// FormatAndroidXML outputs Android XML resources.
	FormatAndroidXML Format = "android"

	// FormatReactNative outputs a React Native TypeScript module.
	FormatReactNative Format = "react-native"

	// FormatFlutter outputs a Flutter/Dart constants class.
	FormatFlutter Format = "flutter"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSS),
		string(FormatSCSS),
		string(FormatTheme),
		string(FormatDTS),
		string(FormatSwift),
		string(FormatKotlin),
		string(FormatAndroidXML),
		string(FormatReactNative),
		string(FormatFlutter),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css":
		return FormatCSS, nil
	case "scss", "sass":
		return FormatSCSS, nil
	case "theme", "js":
		return FormatTheme, nil
	case "dts", "d.ts", "types":
		return FormatDTS, nil
	case "swift", "ios":
		return FormatSwift, nil
	case "kotlin", "compose":
		return FormatKotlin, nil
	case "android", "xml":
		return FormatAndroidXML, nil
	case "react-native", "reactnative", "rn":
		return FormatReactNative, nil
	case "flutter", "dart":
		return FormatFlutter, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)",
			s, strings.Join(ValidFormats(), ", "))
	}
}

// generatorFor returns the dialect generator for a format.
func generatorFor(format Format) (dialect.Generator, error) {
	switch format {
	case FormatCSS:
		return css.New(), nil
	case FormatSCSS:
		return scss.New(), nil
	case FormatTheme:
		return theme.New(), nil
	case FormatDTS:
		return dts.New(), nil
	case FormatSwift:
		return swift.New(), nil
	case FormatKotlin:
		return kotlin.New(), nil
	case FormatAndroidXML:
		return androidxml.New(), nil
	case FormatReactNative:
		return reactnative.New(), nil
	case FormatFlutter:
		return flutter.New(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Artifact is one generated output.
type Artifact struct {
	// Format identifies the dialect that produced the artifact.
	Format Format

	// Path is the artifact's file name relative to the output directory.
	Path string

	// Content is the generated bytes.
	Content []byte
}

// Run generates a single format.
func Run(tree *token.Tree, format Format, opts dialect.Options) (*Artifact, error) {
	g, err := generatorFor(format)
	if err != nil {
		return nil, err
	}
	content, err := g.Generate(tree, opts)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", format, err)
	}
	return &Artifact{Format: format, Path: g.Filename(), Content: content}, nil
}

// RunAll generates every requested format. A failing dialect (error or
// panic) is logged and its artifact omitted; the remaining dialects always
// run to completion.
func RunAll(tree *token.Tree, formats []Format, opts dialect.Options) []*Artifact {
	artifacts := make([]*Artifact, 0, len(formats))
	for _, format := range formats {
		artifact := runIsolated(tree, format, opts)
		if artifact != nil {
			artifacts = append(artifacts, artifact)
		}
	}
	return artifacts
}

func runIsolated(tree *token.Tree, format Format, opts dialect.Options) (artifact *Artifact) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("generator %s panicked: %v", format, r)
			artifact = nil
		}
	}()

	artifact, err := Run(tree, format, opts)
	if err != nil {
		logger.Warn("%v", err)
		return nil
	}
	return artifact
}
