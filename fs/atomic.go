/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs

import (
	"fmt"
	"hash/fnv"
	"io/fs"
	"path/filepath"
)

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it into place, so a concurrent reader never observes a partially
// written file.
func WriteFileAtomic(filesystem FileSystem, name string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(name)
	if err := filesystem.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%08x", filepath.Base(name), ContentHash(data)))
	if err := filesystem.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write temp file for %s: %w", name, err)
	}

	if err := filesystem.Rename(tmp, name); err != nil {
		// Best effort cleanup; the rename error is the one that matters.
		_ = filesystem.Remove(tmp)
		return fmt.Errorf("failed to rename temp file into %s: %w", name, err)
	}

	return nil
}

// ContentHash returns a 64-bit FNV-1a hash of the data. Used to key
// resolution caches to the source document's content.
func ContentHash(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}
