/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package report assembles scan and classification results into a token
// adoption report and serializes it as JSON, CSV, or styled terminal text.
package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"time"

	"bennypowers.dev/tokensmith/classify"
	"bennypowers.dev/tokensmith/internal/version"
	"bennypowers.dev/tokensmith/scan"
)

// Usage is one usage-table row, flattened for serialization.
type Usage struct {
	Token     string   `json:"token"`
	Count     int      `json:"count"`
	Files     []string `json:"files"`
	MatchType string   `json:"matchType"`
	Category  string   `json:"category,omitempty"`
}

// Report is the full adoption report.
type Report struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`

	Stats          scan.Stats       `json:"stats"`
	Usages         []Usage          `json:"usages"`
	Classification *classify.Result `json:"classification"`
}

// New assembles a report. Usage rows are sorted by token name so output is
// stable.
func New(table scan.Table, stats *scan.Stats, result *classify.Result) *Report {
	usages := make([]Usage, 0, len(table))
	for _, name := range table.Names() {
		rec := table[name]
		files := make([]string, 0, len(rec.Files))
		for f := range rec.Files {
			files = append(files, f)
		}
		sort.Strings(files)
		usages = append(usages, Usage{
			Token:     name,
			Count:     rec.Count,
			Files:     files,
			MatchType: rec.MatchType,
			Category:  rec.Category,
		})
	}

	return &Report{
		Version:        version.Get(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Stats:          *stats,
		Usages:         usages,
		Classification: result,
	}
}

// WriteJSON serializes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// WriteCSV serializes the unused-token verdicts as CSV, one row per verdict.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"token", "kind", "recommendation", "reason"}); err != nil {
		return err
	}
	for _, v := range r.Classification.Unused {
		if err := cw.Write([]string{v.TokenPath, v.Kind, v.Recommendation, v.Reason}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteUsageCSV serializes the usage table as CSV.
func (r *Report) WriteUsageCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"token", "count", "files", "matchType", "category"}); err != nil {
		return err
	}
	for _, u := range r.Usages {
		row := []string{
			u.Token,
			strconv.Itoa(u.Count),
			strconv.Itoa(len(u.Files)),
			u.MatchType,
			u.Category,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
