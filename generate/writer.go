/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"bytes"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokensmith/fs"
)

// Written pairs an artifact with the outcome of writing it.
type Written struct {
	Artifact *Artifact

	// Changed reports whether the bytes on disk differed. An identical
	// existing file is left untouched.
	Changed bool
}

// WriteArtifacts persists artifacts under outDir. Each file is compared
// byte-for-byte against what is already on disk; only differing content is
// written, via a temp file renamed into place, so readers never observe a
// partial artifact and repeat runs are no-ops.
func WriteArtifacts(filesystem fs.FileSystem, outDir string, artifacts []*Artifact) ([]Written, error) {
	results := make([]Written, 0, len(artifacts))

	for _, artifact := range artifacts {
		path := filepath.Join(outDir, artifact.Path)

		existing, err := filesystem.ReadFile(path)
		if err == nil && bytes.Equal(existing, artifact.Content) {
			results = append(results, Written{Artifact: artifact, Changed: false})
			continue
		}

		if err := fs.WriteFileAtomic(filesystem, path, artifact.Content, 0o644); err != nil {
			return results, fmt.Errorf("failed to write %s: %w", path, err)
		}
		results = append(results, Written{Artifact: artifact, Changed: true})
	}

	return results, nil
}
