/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scan

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/internal/mapfs"
)

func init() {
	logger.SetOutput(io.Discard)
}

func newSourceTree() *mapfs.MapFileSystem {
	mfs := mapfs.New()
	mfs.AddFile("/src/app.css", `
.card {
  color: var(--colors-primary-500);
  padding: var( --spacing-4 );
}
`, 0o644)
	mfs.AddFile("/src/Button.tsx", `
export const Button = () => (
  <button className="bg-primary-500 p-4 rounded-lg font-bold">ok</button>
);
`, 0o644)
	mfs.AddFile("/src/theme.ts", `
const accent = theme.colors.primary[500];
const gap = theme.spacing["4"];
`, 0o644)
	mfs.AddFile("/src/node_modules/dep/index.js", `var(--colors-primary-900)`, 0o644)
	mfs.AddFile("/src/.hidden.js", `var(--colors-primary-900)`, 0o644)
	mfs.AddFile("/src/README.md", `uses bg-primary-900 in prose`, 0o644)
	return mfs
}

func TestScan_DetectsPatterns(t *testing.T) {
	table, stats, err := Scan(context.Background(), newSourceTree(), []string{"/src"}, Options{})
	require.NoError(t, err)

	// CSS custom-property references.
	require.True(t, table.Used("colors-primary-500"), "names: %v", table.Names())
	assert.Equal(t, "css-variable", table["colors-primary-500"].MatchType)

	// Utility classes.
	assert.True(t, table.Used("primary-500"))
	assert.Equal(t, "colors", table["primary-500"].Category)
	assert.True(t, table.Used("4"))
	assert.True(t, table.Used("lg"))
	assert.True(t, table.Used("bold"))

	// Theme config access, both dot and bracket forms.
	assert.True(t, table.Used("colors-primary-500"))
	assert.True(t, table.Used("spacing-4"))

	// Deny-listed and hidden entries never contribute.
	assert.False(t, table.Used("colors-primary-900"))
	assert.False(t, table.Used("primary-900"))

	assert.Equal(t, 4, stats.FilesDiscovered, "md file discovered but skipped")
	assert.Equal(t, 3, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
}

func TestScan_CountsAndFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/src/a.css", `a { color: var(--colors-white); border: var(--colors-white); }`, 0o644)
	mfs.AddFile("/src/b.css", `b { color: var(--colors-white); }`, 0o644)

	table, _, err := Scan(context.Background(), mfs, []string{"/src"}, Options{})
	require.NoError(t, err)

	rec := table["colors-white"]
	require.NotNil(t, rec)
	assert.Equal(t, 3, rec.Count)
	assert.Len(t, rec.Files, 2)
}

func TestScan_ExcludeAndInclude(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/src/keep.css", `a { color: var(--colors-kept); }`, 0o644)
	mfs.AddFile("/src/drop.test.css", `a { color: var(--colors-dropped); }`, 0o644)

	table, _, err := Scan(context.Background(), mfs, []string{"/src"}, Options{
		Exclude: []string{"**/*.test.css"},
	})
	require.NoError(t, err)
	assert.True(t, table.Used("colors-kept"))
	assert.False(t, table.Used("colors-dropped"))

	table, _, err = Scan(context.Background(), mfs, []string{"/src"}, Options{
		Include: []string{"drop.*"},
	})
	require.NoError(t, err)
	assert.False(t, table.Used("colors-kept"))
	assert.True(t, table.Used("colors-dropped"))
}

func TestScan_Gitignore(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/src/.gitignore", "generated.css\n", 0o644)
	mfs.AddFile("/src/generated.css", `a { color: var(--colors-generated); }`, 0o644)
	mfs.AddFile("/src/hand.css", `a { color: var(--colors-hand); }`, 0o644)

	table, _, err := Scan(context.Background(), mfs, []string{"/src"}, Options{UseGitignore: true})
	require.NoError(t, err)
	assert.False(t, table.Used("colors-generated"))
	assert.True(t, table.Used("colors-hand"))
}

func TestTable_MergeCommutative(t *testing.T) {
	build := func() (Table, Table) {
		a := make(Table)
		a.Record("primary-500", "a.css", "css-variable", "colors")
		a.Record("primary-500", "b.css", "css-variable", "colors")
		b := make(Table)
		b.Record("primary-500", "b.css", "css-variable", "colors")
		b.Record("spacing-4", "c.css", "css-variable", "spacing")
		return a, b
	}

	a1, b1 := build()
	a1.Merge(b1)
	a2, b2 := build()
	b2.Merge(a2)

	assert.Equal(t, a1["primary-500"].Count, b2["primary-500"].Count)
	assert.Equal(t, len(a1["primary-500"].Files), len(b2["primary-500"].Files))
	assert.ElementsMatch(t, a1.Names(), b2.Names())
}

func TestScan_ConcurrencyStable(t *testing.T) {
	mfs := mapfs.New()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		mfs.AddFile("/src/"+name+".css",
			`x { color: var(--colors-primary-500); gap: var(--spacing-4); }`, 0o644)
	}

	first, _, err := Scan(context.Background(), mfs, []string{"/src"}, Options{Workers: 8})
	require.NoError(t, err)
	second, _, err := Scan(context.Background(), mfs, []string{"/src"}, Options{Workers: 1})
	require.NoError(t, err)

	require.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		assert.Equal(t, first[name].Count, second[name].Count, name)
		assert.Equal(t, len(first[name].Files), len(second[name].Files), name)
	}
}
