/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensmith/classify"
	"bennypowers.dev/tokensmith/scan"
	"bennypowers.dev/tokensmith/token"
)

func newTestReport() *Report {
	table := make(scan.Table)
	table.Record("primary-500", "src/app.tsx", "color-class", "colors")
	table.Record("primary-500", "src/other.tsx", "color-class", "colors")

	defined := []classify.DefinedToken{
		{
			Path:       "colors.primary.500",
			Category:   "colors",
			Descriptor: &token.Descriptor{Value: "#3b82f6", Type: "color"},
		},
		{
			Path:       "colors.secondary.300",
			Category:   "colors",
			Descriptor: &token.Descriptor{Value: "#fbbf24", Type: "color"},
		},
	}
	result := classify.Classify(defined, table)
	stats := &scan.Stats{FilesDiscovered: 3, FilesScanned: 2, FilesSkipped: 1}
	return New(table, stats, result)
}

func TestReport_JSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestReport().WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Usages, 1)
	assert.Equal(t, "primary-500", decoded.Usages[0].Token)
	assert.Equal(t, 2, decoded.Usages[0].Count)
	assert.Len(t, decoded.Usages[0].Files, 2)
	assert.Equal(t, 2, decoded.Stats.FilesScanned)
	assert.Equal(t, 1, decoded.Classification.Summary.Unused)
}

func TestReport_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestReport().WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "token,kind,recommendation,reason", lines[0])
	assert.Contains(t, lines[1], "colors.secondary.300")
	assert.Contains(t, lines[1], "remove")
}

func TestReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestReport().WriteText(&buf, false))

	out := buf.String()
	assert.Contains(t, out, "2 tokens defined: 1 used, 0 indirectly used, 1 unused")
	assert.Contains(t, out, "[remove] colors.secondary.300")
	assert.Contains(t, out, "remove 1, review 0, keep 0")
}

func TestReport_TextAllUsed(t *testing.T) {
	table := make(scan.Table)
	table.Record("primary-500", "a.tsx", "color-class", "colors")
	result := classify.Classify([]classify.DefinedToken{
		{
			Path:       "colors.primary.500",
			Category:   "colors",
			Descriptor: &token.Descriptor{Value: "#3b82f6", Type: "color"},
		},
	}, table)

	var buf bytes.Buffer
	r := New(table, &scan.Stats{FilesScanned: 1, FilesDiscovered: 1}, result)
	require.NoError(t, r.WriteText(&buf, false))
	assert.Contains(t, buf.String(), "Every defined token is in use.")
}
