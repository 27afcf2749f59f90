/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import (
	"fmt"
	"strconv"
)

// The functions in this file are the single translation point for the dual
// flat / Token-Studio leaf shape. Past this boundary the rest of the core
// operates on one canonical token.Descriptor shape only.

// leafValue returns the value field of a leaf map, accepting "value" and
// "$value" interchangeably. Non-string scalars are stringified.
func leafValue(m map[string]any) (string, bool) {
	for _, key := range [...]string{"value", "$value"} {
		if raw, ok := m[key]; ok {
			return stringify(raw), true
		}
	}
	return "", false
}

// leafType returns the type field of a leaf map, accepting "type" and
// "$type" interchangeably.
func leafType(m map[string]any) (string, bool) {
	for _, key := range [...]string{"type", "$type"} {
		if raw, ok := m[key]; ok {
			if s, isString := raw.(string); isString {
				return s, true
			}
		}
	}
	return "", false
}

// leafDescription returns the optional description field of a leaf map.
func leafDescription(m map[string]any) string {
	for _, key := range [...]string{"description", "$description"} {
		if raw, ok := m[key]; ok {
			if s, isString := raw.(string); isString {
				return s
			}
		}
	}
	return ""
}

// isLeaf reports whether a map carries a value field in either spelling.
func isLeaf(m map[string]any) bool {
	_, ok := leafValue(m)
	return ok
}

// stringify converts a raw JSON/YAML scalar to its token string form.
func stringify(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
