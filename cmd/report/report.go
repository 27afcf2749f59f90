/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package report provides the report command for tokensmith.
package report

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensmith/classify"
	"bennypowers.dev/tokensmith/config"
	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/loader"
	"bennypowers.dev/tokensmith/report"
	"bennypowers.dev/tokensmith/scan"
)

// Cmd is the report cobra command.
var Cmd = &cobra.Command{
	Use:   "report [source-dirs...]",
	Short: "Scan a source tree for token usages and report adoption",
	Long: `Scan a source tree for literal design-token usages, cross-reference the
defined token set, and report which tokens are used, indirectly used, or
unused with a remove/review/keep recommendation per unused token.

The remove recommendation is a heuristic suggestion, not proof of non-use.

Examples:
  # Scan the configured directories
  tokensmith report

  # Scan specific directories, JSON output
  tokensmith report --format json src components

  # Export unused-token verdicts as CSV
  tokensmith report --format csv > unused.csv`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json, csv, usage-csv)")
	Cmd.Flags().Bool("no-color", false, "Disable colored output")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	noColor, _ := cmd.Flags().GetBool("no-color")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	tokensPath := cfg.Tokens
	if v := viper.GetString("tokens"); v != "" {
		tokensPath = v
	}

	dirs := args
	if len(dirs) == 0 {
		dirs = cfg.Scan.Dirs
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no source directories specified and none configured")
	}

	result, err := loader.ParseFile(filesystem, tokensPath, loader.Options{})
	if err != nil {
		return err
	}
	if !result.Valid() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "Error: %s\n", e.Error())
		}
		return fmt.Errorf("%s has %d structural error(s)", tokensPath, len(result.Errors))
	}

	table, stats, err := scan.Scan(cmd.Context(), filesystem, dirs, scan.Options{
		Include:      cfg.Scan.Include,
		Exclude:      cfg.Scan.Exclude,
		Extensions:   cfg.Scan.Extensions,
		Workers:      cfg.Scan.Workers,
		UseGitignore: cfg.Scan.Gitignore,
	})
	if err != nil {
		return err
	}

	classified := classify.Classify(classify.DefinedTokens(result.Tree), table)
	r := report.New(table, stats, classified)

	switch format {
	case "json":
		return r.WriteJSON(os.Stdout)
	case "csv":
		return r.WriteCSV(os.Stdout)
	case "usage-csv":
		return r.WriteUsageCSV(os.Stdout)
	case "text":
		return r.WriteText(os.Stdout, !noColor)
	default:
		return fmt.Errorf("unknown report format: %s (valid: text, json, csv, usage-csv)", format)
	}
}
