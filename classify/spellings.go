/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import "strings"

// AlternateSpellings returns every form of a token's name a developer might
// plausibly have written in source: the raw dot-path, the hyphenated path,
// the final segment alone, and the category-specific shorthand (the path
// with the category stripped, hyphenated — "colors.primary.500" is also
// spelled "primary-500"; for single-key categories like spacing this is the
// bare key).
func AlternateSpellings(d DefinedToken) []string {
	segments := strings.Split(d.Path, ".")

	forms := []string{
		d.Path,
		strings.Join(segments, "-"),
		segments[len(segments)-1],
	}
	if len(segments) > 1 {
		forms = append(forms, strings.Join(segments[1:], "-"))
	}

	seen := make(map[string]struct{}, len(forms))
	out := forms[:0]
	for _, f := range forms {
		f = strings.ToLower(f)
		if _, dup := seen[f]; dup || f == "" {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
