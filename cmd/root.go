/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokensmith.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensmith/cmd/generate"
	"bennypowers.dev/tokensmith/cmd/report"
	"bennypowers.dev/tokensmith/cmd/validate"
	"bennypowers.dev/tokensmith/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tokensmith",
	Short: "Generate platform artifacts from design tokens and audit their adoption",
	Long: `tokensmith loads a design token document (flat or Token-Studio shaped),
resolves {dot.path} references, and generates platform artifacts: CSS custom
properties, SCSS variables, a theming config, typed declarations, and mobile
dialects. It can also scan a source tree for token usages and report which
tokens go unused.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "Variable-name prefix for generated output")
	rootCmd.PersistentFlags().StringP("tokens", "t", "", "Token document path (overrides config)")
	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))
	_ = viper.BindPFlag("tokens", rootCmd.PersistentFlags().Lookup("tokens"))

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(report.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
