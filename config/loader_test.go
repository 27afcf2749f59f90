/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"testing"

	"bennypowers.dev/tokensmith/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokensmith.yaml", `
tokens: design/tokens.json
prefix: ds
output:
  dir: generated
  formats: [css, swift]
scan:
  dirs: [src, components]
  exclude: ["**/*.test.tsx"]
  gitignore: true
requiredCategories: [colors, spacing]
`, 0o644)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.Tokens != "design/tokens.json" {
		t.Errorf("Tokens = %q", cfg.Tokens)
	}
	if cfg.Prefix != "ds" {
		t.Errorf("Prefix = %q", cfg.Prefix)
	}
	if cfg.Output.Dir != "generated" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if len(cfg.Output.Formats) != 2 || cfg.Output.Formats[1] != "swift" {
		t.Errorf("Output.Formats = %v", cfg.Output.Formats)
	}
	if len(cfg.Scan.Dirs) != 2 || cfg.Scan.Dirs[1] != "components" {
		t.Errorf("Scan.Dirs = %v", cfg.Scan.Dirs)
	}
	if len(cfg.RequiredCategories) != 2 {
		t.Errorf("RequiredCategories = %v", cfg.RequiredCategories)
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokensmith.json", `{
  "tokens": "tokens.json",
  "prefix": "app"
}`, 0o644)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}
	if cfg.Prefix != "app" {
		t.Errorf("Prefix = %q", cfg.Prefix)
	}
	// Unset fields keep defaults.
	if cfg.Output.Dir != "dist" {
		t.Errorf("Output.Dir = %q, want default", cfg.Output.Dir)
	}
}

func TestLoad_YAMLTakesPriorityOverJSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokensmith.yaml", "prefix: from-yaml\n", 0o644)
	mfs.AddFile("/project/.config/tokensmith.json", `{"prefix": "from-json"}`, 0o644)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prefix != "from-yaml" {
		t.Errorf("Prefix = %q, want from-yaml", cfg.Prefix)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}

	if got := LoadOrDefault(mapfs.New(), "/project"); got.Tokens != "tokens.json" {
		t.Errorf("LoadOrDefault Tokens = %q, want default", got.Tokens)
	}
}
