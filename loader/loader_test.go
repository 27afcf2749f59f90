/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import (
	"strings"
	"testing"

	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/testutil"
)

const flatDoc = `{
  "colors": {
    "white": { "value": "#ffffff", "type": "color" },
    "primary": {
      "500": { "value": "#3b82f6", "type": "color" },
      "600": { "value": "{colors.primary.500}", "type": "color" }
    }
  },
  "spacing": {
    "4": { "value": "1rem", "type": "spacing" }
  }
}`

const tokenStudioDoc = `{
  "$themes": [],
  "$metadata": { "tokenSetOrder": ["global"] },
  "colors": {
    "$description": "brand palette",
    "white": { "$value": "#ffffff", "$type": "color" },
    "primary": {
      "500": { "$value": "#3b82f6", "$type": "color" }
    }
  }
}`

func TestParse_FlatShape(t *testing.T) {
	result := Parse([]byte(flatDoc), Options{})
	if !result.Valid() {
		t.Fatalf("Parse() errors = %v, want none", result.Errors)
	}
	if result.Shape != schema.Flat {
		t.Errorf("Shape = %v, want %v", result.Shape, schema.Flat)
	}
	if result.Tree.Len() != 4 {
		t.Errorf("Len() = %d, want 4", result.Tree.Len())
	}

	d, ok := result.Tree.Lookup("colors.primary.500")
	if !ok {
		t.Fatal("Lookup(colors.primary.500) not found")
	}
	if d.Value != "#3b82f6" || d.Type != "color" {
		t.Errorf("descriptor = %+v, want #3b82f6/color", d)
	}
}

func TestParse_TokenStudioShape(t *testing.T) {
	result := Parse([]byte(tokenStudioDoc), Options{})
	if !result.Valid() {
		t.Fatalf("Parse() errors = %v, want none", result.Errors)
	}
	if result.Shape != schema.TokenStudio {
		t.Errorf("Shape = %v, want %v", result.Shape, schema.TokenStudio)
	}

	// $themes and $metadata must not become categories.
	for _, name := range result.Tree.Categories() {
		if strings.HasPrefix(name, "$") {
			t.Errorf("metadata key %q leaked into categories", name)
		}
	}

	d, ok := result.Tree.Lookup("colors.white")
	if !ok {
		t.Fatal("Lookup(colors.white) not found")
	}
	if d.Value != "#ffffff" {
		t.Errorf("Value = %q, want #ffffff", d.Value)
	}
}

func TestParse_YAML(t *testing.T) {
	doc := `
colors:
  white:
    value: "#ffffff"
    type: color
spacing:
  4:
    value: 1rem
`
	result := Parse([]byte(doc), Options{})
	if !result.Valid() {
		t.Fatalf("Parse() errors = %v, want none", result.Errors)
	}
	// Numeric YAML keys normalize to strings; omitted type is inferred
	// from the category.
	d, ok := result.Tree.Lookup("spacing.4")
	if !ok {
		t.Fatal("Lookup(spacing.4) not found")
	}
	if d.Type != "spacing" {
		t.Errorf("Type = %q, want spacing", d.Type)
	}
}

func TestParse_JSONC(t *testing.T) {
	doc := `{
  // brand colors
  "colors": {
    "white": { "value": "#ffffff", "type": "color" }
  }
}`
	result := Parse([]byte(doc), Options{})
	if !result.Valid() {
		t.Fatalf("Parse() errors = %v, want none", result.Errors)
	}
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPath string
		wantMsg  string
	}{
		{
			name:     "category is not an object",
			doc:      `{"colors": "oops"}`,
			wantPath: "colors",
			wantMsg:  "category must be an object",
		},
		{
			name:     "leaf is a bare scalar",
			doc:      `{"colors": {"white": "#ffffff"}}`,
			wantPath: "colors.white",
			wantMsg:  "token leaf must be an object",
		},
		{
			name:     "leaf has neither value nor type",
			doc:      `{"colors": {"white": {"$description": "blank"}}}`,
			wantPath: "colors.white",
			wantMsg:  "token leaf lacks both value and type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse([]byte(tt.doc), Options{})
			if result.Valid() {
				t.Fatal("Parse() valid, want structural errors")
			}
			found := false
			for _, e := range result.Errors {
				if e.Path == tt.wantPath && strings.Contains(e.Message, tt.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors = %v, want path %q message %q",
					result.Errors, tt.wantPath, tt.wantMsg)
			}
		})
	}
}

func TestParse_ErrorsAggregate(t *testing.T) {
	doc := `{
  "colors": "oops",
  "spacing": { "4": "1rem" }
}`
	result := Parse([]byte(doc), Options{})
	if len(result.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2: %v", len(result.Errors), result.Errors)
	}
}

func TestParse_RequiredCategories(t *testing.T) {
	result := Parse([]byte(flatDoc), Options{RequiredCategories: []string{"colors", "typography"}})
	if result.Valid() {
		t.Fatal("Parse() valid, want missing-category error")
	}
	if len(result.Errors) != 1 || result.Errors[0].Path != "typography" {
		t.Errorf("errors = %v, want single error for typography", result.Errors)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	result := Parse([]byte(`{"colors":`), Options{})
	if result.Tree != nil {
		t.Error("Tree != nil for undecodable document")
	}
	if len(result.Errors) == 0 {
		t.Error("want decode error")
	}
}

func TestParseFile_TokenStudioFixture(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "token-studio", "/project")

	result, err := ParseFile(mfs, "/project/tokens.json", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid() {
		t.Fatalf("ParseFile() errors = %v, want none", result.Errors)
	}
	if result.Shape != schema.TokenStudio {
		t.Errorf("Shape = %v, want %v", result.Shape, schema.TokenStudio)
	}
	if result.Tree.Len() != 6 {
		t.Errorf("Len() = %d, want 6", result.Tree.Len())
	}

	// Type omitted on a spacing leaf infers from the category.
	d, ok := result.Tree.Lookup("spacing.4")
	if !ok || d.Type != "spacing" {
		t.Errorf("spacing.4 = %+v, want inferred spacing type", d)
	}

	if _, err := ParseFile(mfs, "/project/missing.json", Options{}); err == nil {
		t.Error("ParseFile(missing) err = nil, want error")
	}
}

func TestParse_ContentHashStable(t *testing.T) {
	a := Parse([]byte(flatDoc), Options{})
	b := Parse([]byte(flatDoc), Options{})
	if a.ContentHash != b.ContentHash {
		t.Error("ContentHash differs for identical input")
	}
	c := Parse([]byte(tokenStudioDoc), Options{})
	if a.ContentHash == c.ContentHash {
		t.Error("ContentHash identical for different input")
	}
}
