/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scan

import (
	"regexp"
	"strings"
)

// Pattern is one declarative detection rule: a regex whose first capture
// group is handed to Normalize to produce the usage-table key. Adding a new
// way tokens are referenced means adding a row here, not new scan logic.
type Pattern struct {
	// Name is the match-type label recorded on usage records.
	Name string

	// Regex finds candidate references; the first capture group is the
	// raw token name.
	Regex *regexp.Regexp

	// Category is the token category this pattern detects, or "" when the
	// category is derived from the match itself.
	Category string

	// Normalize maps the captured text to the normalized token name.
	Normalize func(match string) string
}

// hyphenated lowercases and keeps the match's hyphen form.
func hyphenated(match string) string {
	return strings.ToLower(strings.TrimSpace(match))
}

// cssVarName strips the custom-property dashes and any tool prefix segment
// is left in place: "--colors-primary-500" normalizes to "colors-primary-500".
func cssVarName(match string) string {
	return strings.TrimPrefix(hyphenated(match), "--")
}

// themePath converts a config access path such as "colors.primary[500]" or
// "colors.primary.500" to the hyphen form.
func themePath(match string) string {
	m := strings.NewReplacer(".", "-", "[", "-", "]", "", "'", "", `"`, "").Replace(match)
	return hyphenated(strings.Trim(m, "-"))
}

// DefaultPatterns returns the built-in detection table: CSS custom-property
// references, utility-class conventions per category, and theme config
// object access.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:      "css-variable",
			Regex:     regexp.MustCompile(`var\(\s*(--[a-zA-Z][\w-]*)`),
			Normalize: cssVarName,
		},
		{
			Name:      "color-class",
			Regex:     regexp.MustCompile(`\b(?:text|bg|border|fill|stroke|ring)-([a-z][a-z-]*-\d{2,3})\b`),
			Category:  "colors",
			Normalize: hyphenated,
		},
		{
			Name:      "spacing-class",
			Regex:     regexp.MustCompile(`\b(?:[pm][trblxy]?|gap|space-[xy]|w|h)-(\d+(?:\.\d+)?|px)\b`),
			Category:  "spacing",
			Normalize: hyphenated,
		},
		{
			Name:      "typography-class",
			Regex:     regexp.MustCompile(`\b(?:font|text|leading|tracking)-([a-z][a-z-]*)\b`),
			Category:  "typography",
			Normalize: hyphenated,
		},
		{
			Name:      "radius-class",
			Regex:     regexp.MustCompile(`\brounded-([a-z0-9]+)\b`),
			Category:  "borderRadius",
			Normalize: hyphenated,
		},
		{
			Name:      "theme-config",
			Regex:     regexp.MustCompile(`\btheme\.((?:\w+)(?:(?:\.\w+)|(?:\[['"]?\w+['"]?\]))+)`),
			Normalize: themePath,
		},
	}
}
