/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"bennypowers.dev/tokensmith/generate/dialect"
	"bennypowers.dev/tokensmith/token"
)

// Recommendation values.
const (
	RecommendRemove = "remove"
	RecommendReview = "review"
	RecommendKeep   = "keep"
)

// Rule is one predicate in the unused-token cascade. Rules are evaluated
// top to bottom; the first match wins.
type Rule struct {
	// Kind labels the verdict.
	Kind string

	// Matches reports whether the rule applies to the token.
	Matches func(d DefinedToken) bool

	// Recommendation is remove, review, or keep.
	Recommendation string

	// Reason is the supporting rationale.
	Reason string
}

// Lightness thresholds for the scale-edge color rule: near-white and
// near-black shades often serve subtle backgrounds and text extremes that
// literal pattern matching misses.
const (
	lightnessHigh = 0.95
	lightnessLow  = 0.10
)

// largeSpacingStep is the smallest numeric spacing key treated as a layout
// scale edge.
const largeSpacingStep = 32

// DefaultRules returns the built-in cascade. The final rule matches
// everything, so evaluation always yields a verdict.
func DefaultRules() []Rule {
	return []Rule{
		{
			Kind:           "structural-utility",
			Matches:        isStructuralUtility,
			Recommendation: RecommendKeep,
			Reason:         "system utility, may be used indirectly",
		},
		{
			Kind:           "scale-edge",
			Matches:        isScaleEdge,
			Recommendation: RecommendReview,
			Reason:         "edge of design scale, may serve subtle/layout use",
		},
		{
			Kind:           "mid-scale-color",
			Matches:        isMidScaleColor,
			Recommendation: RecommendRemove,
			Reason:         "not detected in codebase scan",
		},
		{
			Kind:           "unmatched",
			Matches:        func(DefinedToken) bool { return true },
			Recommendation: RecommendReview,
			Reason:         "no usages detected; verify manually before removing",
		},
	}
}

// isStructuralUtility matches zero/default values and font-family
// declarations, which frameworks consume without a literal reference.
func isStructuralUtility(d DefinedToken) bool {
	if d.Descriptor.Type == token.TypeFontFamily {
		return true
	}
	switch strings.TrimSpace(d.Descriptor.Value) {
	case "0", "0px", "0rem", "none", "normal", "transparent", "inherit", "current", "currentColor":
		return true
	}
	return false
}

// isScaleEdge matches the lightest and darkest steps of a color scale and
// large spacing steps.
func isScaleEdge(d DefinedToken) bool {
	if d.Descriptor.Type == token.TypeColor {
		if shade, ok := shadeNumber(d.Path); ok {
			if shade <= 100 || shade >= 900 {
				return true
			}
		}
		if l, ok := perceptualLightness(d.Descriptor.Value); ok {
			return l >= lightnessHigh || l <= lightnessLow
		}
		return false
	}

	if d.Category == "spacing" {
		key := finalSegment(d.Path)
		if n, err := strconv.ParseFloat(key, 64); err == nil {
			return n >= largeSpacingStep
		}
	}
	return false
}

// isMidScaleColor matches color tokens with a numeric shade strictly inside
// the scale.
func isMidScaleColor(d DefinedToken) bool {
	if d.Descriptor.Type != token.TypeColor {
		return false
	}
	shade, ok := shadeNumber(d.Path)
	return ok && shade > 100 && shade < 900
}

// shadeNumber extracts a numeric scale step from the final path segment.
func shadeNumber(path string) (int, bool) {
	n, err := strconv.Atoi(finalSegment(path))
	if err != nil {
		return 0, false
	}
	return n, true
}

func finalSegment(path string) string {
	segments := strings.Split(path, ".")
	return segments[len(segments)-1]
}

// perceptualLightness returns the CIE-Lab lightness of a color value,
// scaled 0..1.
func perceptualLightness(value string) (float64, bool) {
	c, ok := dialect.ParseColor(value)
	if !ok {
		return 0, false
	}
	l, _, _ := colorful.Color{
		R: dialect.Channel(c.R),
		G: dialect.Channel(c.G),
		B: dialect.Channel(c.B),
	}.Lab()
	return l, true
}
