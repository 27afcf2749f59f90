/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "sort"

// Group represents a group of tokens (can be nested).
type Group struct {
	// Name is the group's identifier.
	Name string

	// Tokens contains the leaf tokens in this group.
	Tokens map[string]*Descriptor

	// Groups contains nested groups.
	Groups map[string]*Group
}

// NewGroup creates a new empty token group.
func NewGroup(name string) *Group {
	return &Group{
		Name:   name,
		Tokens: make(map[string]*Descriptor),
		Groups: make(map[string]*Group),
	}
}

// TokenKeys returns the leaf token keys in sorted order.
func (g *Group) TokenKeys() []string {
	keys := make([]string, 0, len(g.Tokens))
	for k := range g.Tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GroupKeys returns the nested group keys in sorted order.
func (g *Group) GroupKeys() []string {
	keys := make([]string, 0, len(g.Groups))
	for k := range g.Groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Empty reports whether the group contains no tokens, directly or nested.
func (g *Group) Empty() bool {
	if len(g.Tokens) > 0 {
		return false
	}
	for _, nested := range g.Groups {
		if !nested.Empty() {
			return false
		}
	}
	return true
}

// Walk visits every leaf under the group in sorted key order, direct tokens
// before nested groups. path is prepended to every leaf path.
func (g *Group) Walk(path []string, fn func(path []string, d *Descriptor)) {
	for _, key := range g.TokenKeys() {
		leafPath := append(append([]string{}, path...), key)
		fn(leafPath, g.Tokens[key])
	}
	for _, key := range g.GroupKeys() {
		g.Groups[key].Walk(append(append([]string{}, path...), key), fn)
	}
}
