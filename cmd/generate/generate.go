/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for tokensmith.
package generate

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensmith/config"
	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/generate"
	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/loader"
	"bennypowers.dev/tokensmith/resolver"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [tokens-file]",
	Short: "Generate platform artifacts from a token document",
	Long: `Generate platform artifacts from a design token document.

Output Formats:
  css          CSS custom properties with :root selector
  scss         SCSS variables with kebab-case names
  theme        JS theming-config object
  dts          TypeScript declarations (shape only)
  swift        SwiftUI constants
  kotlin       Jetpack Compose object
  android      Android XML resources
  react-native React Native TypeScript module
  flutter      Flutter/Dart constants class

Examples:
  # Generate the configured formats into the configured output dir
  tokensmith generate

  # Generate specific formats
  tokensmith generate --format css --format swift tokens.json

  # Generate everything with a prefix
  tokensmith generate --all --prefix ds -o dist tokens.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringArrayP("format", "f", nil, "Output format (repeatable): "+strings.Join(generate.ValidFormats(), ", "))
	Cmd.Flags().Bool("all", false, "Generate every supported format")
	Cmd.Flags().StringP("out", "o", "", "Output directory (default from config)")
}

func run(cmd *cobra.Command, args []string) error {
	formatFlags, _ := cmd.Flags().GetStringArray("format")
	all, _ := cmd.Flags().GetBool("all")
	outFlag, _ := cmd.Flags().GetString("out")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	tokensPath := cfg.Tokens
	if len(args) > 0 {
		tokensPath = args[0]
	} else if v := viper.GetString("tokens"); v != "" {
		tokensPath = v
	}

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = cfg.Prefix
	}

	outDir := cfg.Output.Dir
	if outFlag != "" {
		outDir = outFlag
	}

	formats, err := resolveFormats(formatFlags, cfg.Output.Formats, all)
	if err != nil {
		return err
	}

	result, err := loader.ParseFile(filesystem, tokensPath, loader.Options{
		RequiredCategories: cfg.RequiredCategories,
	})
	if err != nil {
		return err
	}
	if !result.Valid() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "Error: %s\n", e.Error())
		}
		return fmt.Errorf("%s has %d structural error(s); generation blocked", tokensPath, len(result.Errors))
	}

	r := resolver.New(result.Tree, result.ContentHash)
	resolved := r.ResolveTree()
	for _, warning := range r.Warnings() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	artifacts := generate.RunAll(resolved, formats, dialect.Options{Prefix: prefix})
	written, err := generate.WriteArtifacts(filesystem, outDir, artifacts)
	if err != nil {
		return err
	}

	for _, w := range written {
		status := "unchanged"
		if w.Changed {
			status = "written"
		}
		fmt.Printf("%s %s/%s (%d bytes, %s)\n",
			w.Artifact.Format, outDir, w.Artifact.Path, len(w.Artifact.Content), status)
	}

	if len(written) < len(formats) {
		return fmt.Errorf("%d of %d formats failed", len(formats)-len(written), len(formats))
	}
	return nil
}

// resolveFormats merges the --format flags, --all, and the config defaults.
func resolveFormats(flags, configured []string, all bool) ([]generate.Format, error) {
	var names []string
	switch {
	case all:
		names = generate.ValidFormats()
	case len(flags) > 0:
		names = flags
	case len(configured) > 0:
		names = configured
	default:
		return nil, fmt.Errorf("no formats requested; pass --format or configure output.formats")
	}

	formats := make([]generate.Format, 0, len(names))
	for _, name := range names {
		f, err := generate.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}
