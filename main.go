/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tokensmith generates platform artifacts from design tokens and
// audits their adoption in a source tree.
package main

import (
	"os"

	"bennypowers.dev/tokensmith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
