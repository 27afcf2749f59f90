/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver substitutes {dot.path} references in token values with
// the values of the tokens they name. Resolution is purely textual: values
// stay strings throughout, and the source tree is never mutated.
package resolver

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/token"
)

// MaxDepth bounds recursive reference chains. A chain deeper than this
// (including a reference cycle) stops resolving and the innermost
// placeholder is kept verbatim.
const MaxDepth = 10

const memoSize = 4096

type memoKey struct {
	raw   string
	depth int
}

// Resolver resolves token references against a single tree. Results are
// memoized per (raw value, depth) pair; the memo is dropped when the
// document content hash changes.
type Resolver struct {
	tree *token.Tree
	memo *lru.Cache[memoKey, string]

	contentHash uint64
	warned      map[string]struct{}
	warnings    []string
}

// New creates a resolver for the given tree. contentHash identifies the
// document the tree was loaded from, for cache invalidation.
func New(tree *token.Tree, contentHash uint64) *Resolver {
	memo, _ := lru.New[memoKey, string](memoSize)
	return &Resolver{
		tree:        tree,
		memo:        memo,
		contentHash: contentHash,
		warned:      make(map[string]struct{}),
	}
}

// Invalidate drops the memo cache if contentHash differs from the hash the
// resolver was created with, and adopts the new hash. Cached entries remain
// valid for as long as the document bytes are unchanged.
func (r *Resolver) Invalidate(contentHash uint64) {
	if contentHash == r.contentHash {
		return
	}
	r.contentHash = contentHash
	r.memo.Purge()
	r.warned = make(map[string]struct{})
	r.warnings = nil
}

// Resolve substitutes every {reference} in rawValue, recursing into the
// referenced values with depth+1. Values without a brace are returned
// unchanged. Beyond MaxDepth the placeholder is returned as-is, which
// terminates reference cycles without an error.
func (r *Resolver) Resolve(rawValue string, depth int) string {
	if !token.HasRef(rawValue) {
		return rawValue
	}
	if depth > MaxDepth {
		return rawValue
	}

	key := memoKey{raw: rawValue, depth: depth}
	if cached, ok := r.memo.Get(key); ok {
		return cached
	}

	resolved := token.ReplaceRefs(rawValue, func(ref string) string {
		d, ok := r.lookup(ref)
		if !ok {
			r.warnRef(ref)
			return "{" + ref + "}"
		}
		return r.Resolve(d.Value, depth+1)
	})

	r.memo.Add(key, resolved)
	return resolved
}

// ResolveTree returns a new tree in which every token value has its
// references substituted. Descriptors are copied; the source tree is
// untouched.
func (r *Resolver) ResolveTree() *token.Tree {
	out := token.NewTree()
	for _, name := range r.tree.Categories() {
		out.Add(name, r.resolveGroup(r.tree.Category(name)))
	}
	return out
}

// Warnings returns one message per distinct unresolvable reference seen so
// far, in sorted order.
func (r *Resolver) Warnings() []string {
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	sort.Strings(out)
	return out
}

func (r *Resolver) resolveGroup(group *token.Group) *token.Group {
	out := token.NewGroup(group.Name)
	for _, key := range group.TokenKeys() {
		d := group.Tokens[key]
		out.Tokens[key] = &token.Descriptor{
			Value:       r.Resolve(d.Value, 0),
			Type:        d.Type,
			Description: d.Description,
		}
	}
	for _, key := range group.GroupKeys() {
		out.Groups[key] = r.resolveGroup(group.Groups[key])
	}
	return out
}

// lookup finds the descriptor a reference names. Dotted references walk
// from the root; bare names search every category's direct children in
// category order.
func (r *Resolver) lookup(ref string) (*token.Descriptor, bool) {
	if d, ok := r.tree.Lookup(ref); ok {
		return d, true
	}
	return r.tree.LookupBare(ref)
}

func (r *Resolver) warnRef(ref string) {
	if _, seen := r.warned[ref]; seen {
		return
	}
	r.warned[ref] = struct{}{}
	msg := fmt.Sprintf("unresolvable reference {%s}", ref)
	r.warnings = append(r.warnings, msg)
	logger.Warn("%s", msg)
}
