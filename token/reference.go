/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "regexp"

// referencePattern matches well-formed {token.path} references. Malformed
// braces (nested, unbalanced, empty) do not match and pass through verbatim.
var referencePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// HasRef returns true if the value contains a well-formed reference.
func HasRef(value string) bool {
	return referencePattern.MatchString(value)
}

// ExtractAllRefs extracts all reference paths from a string.
func ExtractAllRefs(value string) []string {
	matches := referencePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}

// ReplaceRefs substitutes each well-formed {reference} in value using the
// supplied function. The function receives the reference path and returns
// the replacement text.
func ReplaceRefs(value string, replace func(ref string) string) string {
	return referencePattern.ReplaceAllStringFunc(value, func(match string) string {
		return replace(match[1 : len(match)-1])
	})
}
