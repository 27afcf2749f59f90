/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dialect

import "testing"

func TestDimensionToUnits(t *testing.T) {
	tests := []struct {
		value  string
		want   float64
		wantOK bool
	}{
		{"1rem", 16, true},
		{"0.5rem", 8, true},
		{"24px", 24, true},
		{"1.5rem", 24, true},
		{"700", 700, true},
		{"auto", 0, false},
		{"", 0, false},
		{"#3b82f6", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := DimensionToUnits(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("DimensionToUnits(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("DimensionToUnits(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseColor_ARGBHex(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"#3b82f6", "FF3B82F6"},
		{"#3b82f680", "803B82F6"},
		{"#fff", "FFFFFFFF"},
		{"rgb(59, 130, 246)", "FF3B82F6"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, ok := ParseColor(tt.value)
			if !ok {
				t.Fatalf("ParseColor(%q) failed", tt.value)
			}
			if got := c.ARGBHex(); got != tt.want {
				t.Errorf("ARGBHex() = %s, want %s", got, tt.want)
			}
		})
	}

	if _, ok := ParseColor("not-a-color"); ok {
		t.Error("ParseColor accepted garbage")
	}
}

func TestParseShadow(t *testing.T) {
	s, ok := ParseShadow("0 1px 2px rgba(0, 0, 0, 0.05)")
	if !ok {
		t.Fatal("ParseShadow failed")
	}
	if s.OffsetX != 0 || s.OffsetY != 1 || s.Blur != 2 || s.Spread != 0 {
		t.Errorf("shadow = %+v, want offsets 0/1, blur 2", s)
	}
	if s.Color != "rgba(0, 0, 0, 0.05)" {
		t.Errorf("Color = %q", s.Color)
	}

	s, ok = ParseShadow("0 4px 6px -1px #00000033")
	if !ok {
		t.Fatal("ParseShadow with spread failed")
	}
	if s.Spread != -1 || s.Color != "#00000033" {
		t.Errorf("shadow = %+v", s)
	}

	if _, ok := ParseShadow("#3b82f6"); ok {
		t.Error("ParseShadow accepted a plain color")
	}
}

func TestSplitFontFamily(t *testing.T) {
	got := SplitFontFamily(`"Inter", 'Helvetica Neue', sans-serif`)
	want := []string{"Inter", "Helvetica Neue", "sans-serif"}
	if len(got) != len(want) {
		t.Fatalf("SplitFontFamily = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SplitFontFamily[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCaseConversions(t *testing.T) {
	tests := []struct {
		in, camel, pascal, snake, kebab string
	}{
		{"primary-500", "primary500", "Primary500", "primary_500", "primary-500"},
		{"borderRadius", "borderRadius", "BorderRadius", "border_radius", "border-radius"},
		{"colors.primary.500", "colorsPrimary500", "ColorsPrimary500", "colors_primary_500", "colors-primary-500"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToCamelCase(tt.in); got != tt.camel {
				t.Errorf("ToCamelCase = %q, want %q", got, tt.camel)
			}
			if got := ToPascalCase(tt.in); got != tt.pascal {
				t.Errorf("ToPascalCase = %q, want %q", got, tt.pascal)
			}
			if got := ToSnakeCase(tt.in); got != tt.snake {
				t.Errorf("ToSnakeCase = %q, want %q", got, tt.snake)
			}
			if got := ToKebabCase(tt.in); got != tt.kebab {
				t.Errorf("ToKebabCase = %q, want %q", got, tt.kebab)
			}
		})
	}
}
