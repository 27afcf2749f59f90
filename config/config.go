/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the token toolchain.
package config

// Config represents the tokensmith configuration.
type Config struct {
	// Tokens is the path to the token document.
	Tokens string `yaml:"tokens" json:"tokens"`

	// Prefix is the global variable-name prefix for generated output.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Output configures artifact generation.
	Output OutputConfig `yaml:"output" json:"output"`

	// Scan configures the usage scanner.
	Scan ScanConfig `yaml:"scan" json:"scan"`

	// RequiredCategories lists categories that must be present in the
	// token document.
	RequiredCategories []string `yaml:"requiredCategories" json:"requiredCategories"`
}

// OutputConfig configures generated artifacts.
type OutputConfig struct {
	// Dir is the output directory for generated files.
	Dir string `yaml:"dir" json:"dir"`

	// Formats lists the dialects to generate.
	Formats []string `yaml:"formats" json:"formats"`
}

// ScanConfig configures the usage scanner.
type ScanConfig struct {
	// Dirs are the source directories to scan.
	Dirs []string `yaml:"dirs" json:"dirs"`

	// Extensions is the file extension allow-list (with leading dot).
	Extensions []string `yaml:"extensions" json:"extensions"`

	// Include filters files by glob, relative to each scanned directory.
	Include []string `yaml:"include" json:"include"`

	// Exclude filters out files by glob.
	Exclude []string `yaml:"exclude" json:"exclude"`

	// Gitignore honors .gitignore files at scan roots.
	Gitignore bool `yaml:"gitignore" json:"gitignore"`

	// Workers bounds scan concurrency; 0 means one worker per CPU.
	Workers int `yaml:"workers" json:"workers"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Tokens: "tokens.json",
		Output: OutputConfig{
			Dir:     "dist",
			Formats: []string{"css", "scss", "theme", "dts"},
		},
		Scan: ScanConfig{
			Dirs:      []string{"src"},
			Gitignore: true,
		},
	}
}
