/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokensmith.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensmith/config"
	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/loader"
	"bennypowers.dev/tokensmith/resolver"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token documents",
	Long:  `Validate design token documents for structural correctness and resolvable references.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on unresolvable references too")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
	if len(files) == 0 && cfg.Tokens != "" {
		files = []string{cfg.Tokens}
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no tokens file found in config")
	}

	hasErrors := false
	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		result, err := loader.ParseFile(filesystem, file, loader.Options{
			RequiredCategories: cfg.RequiredCategories,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", file, e.Error())
		}
		if !result.Valid() {
			hasErrors = true
			continue
		}

		r := resolver.New(result.Tree, result.ContentHash)
		r.ResolveTree()
		warnings := r.Warnings()
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "%s: warning: %s\n", file, w)
		}
		if strict && len(warnings) > 0 {
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Printf("  %d tokens, %s shape\n", result.Tree.Len(), result.Shape)
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}
	return nil
}
