/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scan

import "sort"

// UsageRecord aggregates every detection of one normalized token name.
type UsageRecord struct {
	// Count is the total number of matches, at least 1.
	Count int

	// Files is the set of files the token appeared in.
	Files map[string]struct{}

	// MatchType is the name of the pattern that first detected the token.
	MatchType string

	// Category is the token category, when the pattern implies one.
	Category string
}

// Table maps normalized token names to usage records. It is rebuilt from
// scratch on every scan.
type Table map[string]*UsageRecord

// Record adds one match to the table.
func (t Table) Record(name, file, matchType, category string) {
	rec, ok := t[name]
	if !ok {
		rec = &UsageRecord{
			Files:     make(map[string]struct{}),
			MatchType: matchType,
			Category:  category,
		}
		t[name] = rec
	}
	rec.Count++
	rec.Files[file] = struct{}{}
}

// Merge folds another table into this one. Counts add and file sets union,
// so merging is commutative over partial tables regardless of the order
// files finished scanning.
func (t Table) Merge(other Table) {
	for name, rec := range other {
		existing, ok := t[name]
		if !ok {
			t[name] = rec
			continue
		}
		existing.Count += rec.Count
		for file := range rec.Files {
			existing.Files[file] = struct{}{}
		}
	}
}

// Names returns the recorded token names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Used reports whether a normalized name appears in the table.
func (t Table) Used(name string) bool {
	_, ok := t[name]
	return ok
}
