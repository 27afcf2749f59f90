/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classify cross-references the defined token set against a usage
// table and recommends what to do with tokens the scan never found. The
// recommendations are heuristic: remove is a suggestion, never ground truth
// for automatic deletion.
package classify

import (
	"strings"

	"bennypowers.dev/tokensmith/scan"
	"bennypowers.dev/tokensmith/token"
)

// DefinedToken is one leaf of the token tree, flattened for classification.
type DefinedToken struct {
	// Path is the dot-separated token path.
	Path string

	// Category is the top-level category name.
	Category string

	// Descriptor is the loaded (unresolved) token.
	Descriptor *token.Descriptor
}

// DefinedTokens flattens a tree into the classifier's input.
func DefinedTokens(tree *token.Tree) []DefinedToken {
	var out []DefinedToken
	tree.Walk(func(path []string, d *token.Descriptor) {
		out = append(out, DefinedToken{
			Path:       strings.Join(path, "."),
			Category:   path[0],
			Descriptor: d,
		})
	})
	return out
}

// Verdict is the classification of one unused token.
type Verdict struct {
	// TokenPath is the dot-separated token path.
	TokenPath string `json:"tokenPath"`

	// Kind names the cascade rule that matched.
	Kind string `json:"kind"`

	// Reason is the rule's rationale.
	Reason string `json:"reason"`

	// Recommendation is remove, review, or keep.
	Recommendation string `json:"recommendation"`
}

// Summary aggregates the classification outcome.
type Summary struct {
	Defined        int `json:"defined"`
	DirectlyUsed   int `json:"directlyUsed"`
	IndirectlyUsed int `json:"indirectlyUsed"`
	Unused         int `json:"unused"`
	Remove         int `json:"remove"`
	Review         int `json:"review"`
	Keep           int `json:"keep"`
}

// Result partitions the defined tokens: every token lands in exactly one of
// DirectlyUsed, IndirectlyUsed, or Unused.
type Result struct {
	DirectlyUsed   []string  `json:"directlyUsed"`
	IndirectlyUsed []string  `json:"indirectlyUsed"`
	Unused         []Verdict `json:"unused"`
	Summary        Summary   `json:"summary"`
}

// indirectAllowList names structural defaults that frameworks consume
// implicitly, so their absence from a literal scan proves nothing.
var indirectAllowList = map[string]struct{}{
	"spacing.0":          {},
	"spacing.px":         {},
	"opacity.0":          {},
	"opacity.100":        {},
	"colors.transparent": {},
	"colors.current":     {},
	"colors.inherit":     {},
}

// Classify partitions defined tokens against the usage table using
// DefaultRules for the unused cascade.
func Classify(defined []DefinedToken, table scan.Table) *Result {
	return ClassifyWithRules(defined, table, DefaultRules())
}

// ClassifyWithRules is Classify with a caller-supplied cascade.
func ClassifyWithRules(defined []DefinedToken, table scan.Table, rules []Rule) *Result {
	result := &Result{}
	referenced := referencedPaths(defined)

	for _, d := range defined {
		switch {
		case usedDirectly(d, table):
			result.DirectlyUsed = append(result.DirectlyUsed, d.Path)
		case usedIndirectly(d, referenced):
			result.IndirectlyUsed = append(result.IndirectlyUsed, d.Path)
		default:
			result.Unused = append(result.Unused, applyRules(d, rules))
		}
	}

	result.Summary = summarize(result, len(defined))
	return result
}

func usedDirectly(d DefinedToken, table scan.Table) bool {
	for _, spelling := range AlternateSpellings(d) {
		if table.Used(spelling) {
			return true
		}
	}
	return false
}

// usedIndirectly treats aliases, alias targets, and structural allow-list
// entries as used even though the scan never saw them.
func usedIndirectly(d DefinedToken, referenced map[string]struct{}) bool {
	if d.Descriptor.IsAlias() {
		return true
	}
	if _, ok := referenced[d.Path]; ok {
		return true
	}
	_, ok := indirectAllowList[d.Path]
	return ok
}

// referencedPaths collects every reference target appearing in any defined
// token's raw value.
func referencedPaths(defined []DefinedToken) map[string]struct{} {
	out := make(map[string]struct{})
	for _, d := range defined {
		for _, ref := range token.ExtractAllRefs(d.Descriptor.Value) {
			out[ref] = struct{}{}
		}
	}
	return out
}

func applyRules(d DefinedToken, rules []Rule) Verdict {
	for _, rule := range rules {
		if rule.Matches(d) {
			return Verdict{
				TokenPath:      d.Path,
				Kind:           rule.Kind,
				Reason:         rule.Reason,
				Recommendation: rule.Recommendation,
			}
		}
	}
	// DefaultRules ends with a catch-all; a custom cascade may not.
	return Verdict{
		TokenPath:      d.Path,
		Kind:           "unmatched",
		Reason:         "no usages detected; verify manually before removing",
		Recommendation: RecommendReview,
	}
}

func summarize(result *Result, defined int) Summary {
	s := Summary{
		Defined:        defined,
		DirectlyUsed:   len(result.DirectlyUsed),
		IndirectlyUsed: len(result.IndirectlyUsed),
		Unused:         len(result.Unused),
	}
	for _, v := range result.Unused {
		switch v.Recommendation {
		case RecommendRemove:
			s.Remove++
		case RecommendReview:
			s.Review++
		case RecommendKeep:
			s.Keep++
		}
	}
	return s
}
