/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"bennypowers.dev/tokensmith/classify"
)

// Terminal styles. Lipgloss degrades colors based on terminal capabilities.
var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleRemove = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleReview = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleKeep   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// render applies a style unless colors are disabled.
func render(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// WriteText renders the report for a terminal.
func (r *Report) WriteText(w io.Writer, useColors bool) error {
	s := r.Classification.Summary

	fmt.Fprintln(w, render(styleHeader, "Token adoption report", useColors))
	fmt.Fprintf(w, "  scanned %d files (%d discovered, %d skipped)\n",
		r.Stats.FilesScanned, r.Stats.FilesDiscovered, r.Stats.FilesSkipped)
	fmt.Fprintf(w, "  %d tokens defined: %d used, %d indirectly used, %d unused\n\n",
		s.Defined, s.DirectlyUsed, s.IndirectlyUsed, s.Unused)

	if s.Unused == 0 {
		fmt.Fprintln(w, render(styleKeep, "Every defined token is in use.", useColors))
		return nil
	}

	fmt.Fprintln(w, render(styleHeader, "Unused tokens", useColors))
	for _, v := range r.Classification.Unused {
		label := recommendationLabel(v, useColors)
		fmt.Fprintf(w, "  %s %s %s\n",
			label, v.TokenPath, render(styleDim, v.Reason, useColors))
	}

	fmt.Fprintf(w, "\n%s remove %d, review %d, keep %d\n",
		render(styleHeader, "Recommendations:", useColors), s.Remove, s.Review, s.Keep)
	return nil
}

func recommendationLabel(v classify.Verdict, useColors bool) string {
	text := fmt.Sprintf("[%s]", v.Recommendation)
	switch v.Recommendation {
	case classify.RecommendRemove:
		return render(styleRemove, text, useColors)
	case classify.RecommendReview:
		return render(styleReview, text, useColors)
	default:
		return render(styleKeep, text, useColors)
	}
}
