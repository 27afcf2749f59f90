/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// Tree maps category names (colors, spacing, typography, ...) to nested token
// groups. Category iteration order is insertion order, which bare-name
// reference resolution depends on.
type Tree struct {
	names      []string
	categories map[string]*Group
}

// NewTree creates an empty token tree.
func NewTree() *Tree {
	return &Tree{categories: make(map[string]*Group)}
}

// Add inserts a category group. Re-adding an existing category replaces its
// group without changing its position in the iteration order.
func (t *Tree) Add(name string, g *Group) {
	if _, exists := t.categories[name]; !exists {
		t.names = append(t.names, name)
	}
	t.categories[name] = g
}

// Categories returns category names in insertion order.
func (t *Tree) Categories() []string {
	return t.names
}

// Category returns the group for a category name, or nil.
func (t *Tree) Category(name string) *Group {
	return t.categories[name]
}

// Lookup walks a dot-separated path from the tree root and returns the leaf
// descriptor, if any.
func (t *Tree) Lookup(dotPath string) (*Descriptor, bool) {
	segments := strings.Split(dotPath, ".")
	if len(segments) < 2 {
		return nil, false
	}

	group, ok := t.categories[segments[0]]
	if !ok {
		return nil, false
	}

	for _, segment := range segments[1 : len(segments)-1] {
		group = group.Groups[segment]
		if group == nil {
			return nil, false
		}
	}

	d, ok := group.Tokens[segments[len(segments)-1]]
	return d, ok
}

// LookupBare searches every category for a direct child token named key.
// Categories are searched in insertion order; the first match wins.
func (t *Tree) LookupBare(key string) (*Descriptor, bool) {
	for _, name := range t.names {
		if d, ok := t.categories[name].Tokens[key]; ok {
			return d, true
		}
	}
	return nil, false
}

// Walk visits every leaf in the tree: categories in insertion order, keys
// within each group sorted, so traversal is deterministic.
func (t *Tree) Walk(fn func(path []string, d *Descriptor)) {
	for _, name := range t.names {
		t.categories[name].Walk([]string{name}, fn)
	}
}

// Len returns the total number of leaf tokens.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func([]string, *Descriptor) { n++ })
	return n
}
