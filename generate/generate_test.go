/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"io"
	"strings"
	"testing"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/internal/mapfs"
	"bennypowers.dev/tokensmith/token"
)

func init() {
	logger.SetOutput(io.Discard)
}

func newTestTree() *token.Tree {
	tree := token.NewTree()

	colors := token.NewGroup("colors")
	primary := token.NewGroup("primary")
	primary.Tokens["500"] = &token.Descriptor{Value: "#3b82f6", Type: "color"}
	colors.Groups["primary"] = primary
	tree.Add("colors", colors)

	spacing := token.NewGroup("spacing")
	spacing.Tokens["4"] = &token.Descriptor{Value: "1rem", Type: "dimension"}
	tree.Add("spacing", spacing)

	return tree
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"css", FormatCSS, false},
		{"sass", FormatSCSS, false},
		{"theme", FormatTheme, false},
		{"rn", FormatReactNative, false},
		{"dart", FormatFlutter, false},
		{"COMPOSE", FormatKotlin, false},
		{"pdf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRun_CSS_EndToEnd(t *testing.T) {
	artifact, err := Run(newTestTree(), FormatCSS, dialect.Options{})
	if err != nil {
		t.Fatal(err)
	}

	out := string(artifact.Content)
	if !strings.Contains(out, "--colors-primary-500: #3b82f6;") {
		t.Errorf("css output missing color declaration:\n%s", out)
	}
	if !strings.Contains(out, "--spacing-4: 1rem;") {
		t.Errorf("css output missing spacing declaration:\n%s", out)
	}
	if !strings.Contains(out, "/* colors */") {
		t.Errorf("css output missing category section comment:\n%s", out)
	}
}

func TestRun_CSS_WithPrefix(t *testing.T) {
	artifact, err := Run(newTestTree(), FormatCSS, dialect.Options{Prefix: "ds"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(artifact.Content), "--ds-colors-primary-500") {
		t.Errorf("prefixed css output wrong:\n%s", artifact.Content)
	}
}

func TestRun_EmptyCategoryOmitted(t *testing.T) {
	tree := newTestTree()
	tree.Add("shadows", token.NewGroup("shadows"))

	for _, format := range []Format{FormatCSS, FormatSCSS, FormatTheme, FormatDTS} {
		artifact, err := Run(tree, format, dialect.Options{})
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(strings.ToLower(string(artifact.Content)), "shadows") {
			t.Errorf("%s output mentions an empty category:\n%s", format, artifact.Content)
		}
	}
}

func TestRun_MobileConversions(t *testing.T) {
	tree := newTestTree()

	kotlin, err := Run(tree, FormatKotlin, dialect.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(kotlin.Content), "Color(0xFF3B82F6)") {
		t.Errorf("kotlin output missing ARGB color:\n%s", kotlin.Content)
	}
	if !strings.Contains(string(kotlin.Content), "16.dp") {
		t.Errorf("kotlin output missing converted dimension:\n%s", kotlin.Content)
	}

	swift, err := Run(tree, FormatSwift, dialect.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(swift.Content), "CGFloat = 16") {
		t.Errorf("swift output missing converted dimension:\n%s", swift.Content)
	}

	rn, err := Run(tree, FormatReactNative, dialect.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rn.Content), `"4": 16,`) && !strings.Contains(string(rn.Content), "4: 16,") {
		t.Errorf("react-native output missing numeric dimension:\n%s", rn.Content)
	}
}

func TestRun_ThemeFontFamilySplit(t *testing.T) {
	tree := token.NewTree()
	typography := token.NewGroup("typography")
	typography.Tokens["sans"] = &token.Descriptor{
		Value: `"Inter", sans-serif`,
		Type:  "fontFamily",
	}
	tree.Add("typography", typography)

	artifact, err := Run(tree, FormatTheme, dialect.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(artifact.Content), `["Inter", "sans-serif"]`) {
		t.Errorf("theme output missing split font stack:\n%s", artifact.Content)
	}
}

func TestRun_DTSShapeOnly(t *testing.T) {
	a, err := Run(newTestTree(), FormatDTS, dialect.Options{})
	if err != nil {
		t.Fatal(err)
	}

	// Value changes must not change the declarations.
	changed := newTestTree()
	d, _ := changed.Lookup("colors.primary.500")
	d.Value = "#ff0000"
	b, err := Run(changed, FormatDTS, dialect.Options{})
	if err != nil {
		t.Fatal(err)
	}

	if string(a.Content) != string(b.Content) {
		t.Error("dts output changed when only a value changed")
	}
	if strings.Contains(string(a.Content), "#3b82f6") {
		t.Error("dts output leaks literal values")
	}
}

func TestRunAll_IsolatesFailures(t *testing.T) {
	artifacts := RunAll(newTestTree(), []Format{FormatCSS, Format("bogus"), FormatSCSS}, dialect.Options{})
	if len(artifacts) != 2 {
		t.Fatalf("RunAll returned %d artifacts, want 2", len(artifacts))
	}
	if artifacts[0].Format != FormatCSS || artifacts[1].Format != FormatSCSS {
		t.Errorf("RunAll artifacts = %v, %v", artifacts[0].Format, artifacts[1].Format)
	}
}

func TestWriteArtifacts_Idempotent(t *testing.T) {
	mfs := mapfs.New()
	artifacts := RunAll(newTestTree(), []Format{FormatCSS, FormatSCSS}, dialect.Options{})

	first, err := WriteArtifacts(mfs, "/out", artifacts)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range first {
		if !w.Changed {
			t.Errorf("first write of %s not marked changed", w.Artifact.Path)
		}
	}

	second, err := WriteArtifacts(mfs, "/out", artifacts)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range second {
		if w.Changed {
			t.Errorf("repeat write of %s marked changed", w.Artifact.Path)
		}
	}

	data, err := mfs.ReadFile("/out/tokens.css")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "--colors-primary-500") {
		t.Errorf("written css wrong:\n%s", data)
	}
}
