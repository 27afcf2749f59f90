/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package loader reads design token documents and produces a normalized
// token tree. Both the flat category/key shape and the Token-Studio nested
// shape are accepted; $-prefixed metadata keys are ignored during flattening.
package loader

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/token"
)

// Options configures document loading.
type Options struct {
	// RequiredCategories lists top-level categories that must be present.
	// An absent required category is a structural error.
	RequiredCategories []string
}

// Result is the outcome of loading a token document.
type Result struct {
	// Tree is the normalized token tree. Nil when the document could not
	// be decoded at all.
	Tree *token.Tree

	// Shape is the detected document shape.
	Shape schema.Shape

	// ContentHash is the FNV-1a hash of the raw document bytes, used to
	// invalidate resolution caches.
	ContentHash uint64

	// Errors holds every structural problem found, collected in one pass.
	// Generation must be blocked while this is non-empty.
	Errors []schema.StructuralError
}

// Valid reports whether the document passed structural validation.
func (r *Result) Valid() bool {
	return r.Tree != nil && len(r.Errors) == 0
}

// Parse decodes JSON (with comment tolerance) or YAML token data and returns
// the normalized tree together with all structural errors found.
func Parse(data []byte, opts Options) *Result {
	result := &Result{ContentHash: fs.ContentHash(data)}

	raw, err := decode(data)
	if err != nil {
		result.Errors = append(result.Errors, schema.StructuralError{
			Message: err.Error(),
		})
		return result
	}

	result.Shape = schema.Detect(raw)
	result.Tree = token.NewTree()

	// Categories in sorted key order: encoding/json does not preserve
	// object order, and generators need a stable category sequence.
	names := make([]string, 0, len(raw))
	for name := range raw {
		if strings.HasPrefix(name, "$") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		categoryMap, ok := raw[name].(map[string]any)
		if !ok {
			result.Errors = append(result.Errors, schema.StructuralError{
				Path:       name,
				Message:    "category must be an object",
				Suggestion: "wrap token values in { value, type } objects",
			})
			continue
		}
		group := token.NewGroup(name)
		extractGroup(categoryMap, []string{name}, name, group, result)
		result.Tree.Add(name, group)
	}

	for _, required := range opts.RequiredCategories {
		if result.Tree.Category(required) == nil {
			result.Errors = append(result.Errors, schema.StructuralError{
				Path:       required,
				Message:    "required category is missing",
				Suggestion: "add the category to the token document",
			})
		}
	}

	return result
}

// ParseFile loads and parses a token document from the filesystem.
func ParseFile(filesystem fs.FileSystem, path string, opts Options) (*Result, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Parse(data, opts), nil
}

// decode parses JSON (stripping comments) or YAML into a string-keyed map.
func decode(data []byte) (map[string]any, error) {
	var raw map[string]any

	if isLikelyJSON(data) {
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return raw, nil
	}

	var yamlRaw any
	if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	normalized := normalizeMap(yamlRaw)
	raw, ok := normalized.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be an object")
	}
	return raw, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to map[string]any.
// YAML with numeric keys (like "10:") creates map[interface{}]interface{},
// which must be normalized for our string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// extractGroup recursively normalizes a category subtree into group,
// accumulating structural errors as it goes.
func extractGroup(data map[string]any, path []string, category string, group *token.Group, result *Result) {
	keys := make([]string, 0, len(data))
	for k := range data {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		childPath := append(append([]string{}, path...), key)
		pathStr := strings.Join(childPath, ".")

		valueMap, ok := data[key].(map[string]any)
		if !ok {
			result.Errors = append(result.Errors, schema.StructuralError{
				Path:       pathStr,
				Message:    "token leaf must be an object",
				Suggestion: "use { value, type } or Token-Studio { $value, $type }",
			})
			continue
		}

		if isLeaf(valueMap) {
			group.Tokens[key] = newDescriptor(valueMap, category)
			continue
		}

		if hasOnlyMetadata(valueMap) {
			result.Errors = append(result.Errors, schema.StructuralError{
				Path:       pathStr,
				Message:    "token leaf lacks both value and type",
				Suggestion: "add a value field (or $value for Token-Studio documents)",
			})
			continue
		}

		nested := token.NewGroup(key)
		extractGroup(valueMap, childPath, category, nested, result)
		group.Groups[key] = nested
	}
}

// newDescriptor builds the canonical descriptor from a leaf map.
func newDescriptor(valueMap map[string]any, category string) *token.Descriptor {
	value, _ := leafValue(valueMap)

	typ, ok := leafType(valueMap)
	if !ok {
		typ = inferType(category)
	}

	return &token.Descriptor{
		Value:       value,
		Type:        typ,
		Description: leafDescription(valueMap),
	}
}

// hasOnlyMetadata reports whether a map has no non-$ children at all, which
// means it can be neither a leaf nor a group.
func hasOnlyMetadata(m map[string]any) bool {
	for key := range m {
		if !strings.HasPrefix(key, "$") {
			return false
		}
	}
	return true
}

// inferType guesses a token type from its category when the leaf omits one.
func inferType(category string) string {
	switch category {
	case "colors", "color":
		return token.TypeColor
	case "spacing":
		return token.TypeSpacing
	case "borderRadius", "radii", "sizing":
		return token.TypeDimension
	default:
		return token.TypeOther
	}
}
