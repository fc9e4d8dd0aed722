package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// fmtInt renders n with thousands separators (e.g. 1,234,567).
func fmtInt(n int64) string {
	return humanize.Comma(n)
}

// printTable writes rows as a column-aligned plain-text table: first
// column left-aligned, remaining columns right-aligned, a dash rule after
// the header row, columns joined by two spaces. Widths are the maximum
// cell width per column across all rows.
func printTable(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	rule := make([]string, len(widths))
	for i, wd := range widths {
		rule[i] = strings.Repeat("-", wd)
	}

	cells := make([]string, len(widths))
	for idx, row := range rows {
		for i, cell := range row {
			pad := strings.Repeat(" ", widths[i]-len(cell))
			if i == 0 {
				cells[i] = cell + pad
			} else {
				cells[i] = pad + cell
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
		if idx == 0 {
			fmt.Fprintln(w, strings.Join(rule, "  "))
		}
	}
}

// renderReport writes the full human-readable report to w: header lines,
// per-extension breakdown, largest files, and the summary token line.
func renderReport(w io.Writer, rep Report) {
	fmt.Fprintf(w, "Root: %s\n", rep.Root)
	fmt.Fprintf(w, "Files counted: %d\n", rep.TotalFiles)
	fmt.Fprintf(w, "Bytes counted: %s\n", fmtInt(rep.TotalBytes))
	fmt.Fprintln(w)

	rows := [][]string{{"ext", "files", "bytes", "tok_low", "tok_high"}}
	for _, g := range rep.ByExt {
		rows = append(rows, []string{
			g.Ext,
			fmtInt(int64(g.Files)),
			fmtInt(g.Bytes),
			fmtInt(g.TokLow),
			fmtInt(g.TokHigh),
		})
	}
	fmt.Fprintln(w, "By extension:")
	printTable(w, rows)
	fmt.Fprintln(w)

	if len(rep.Top) > 0 {
		fmt.Fprintf(w, "Top %d largest files:\n", len(rep.Top))
		rows = [][]string{{"bytes", "tok_low", "tok_high", "path"}}
		for _, r := range rep.Top {
			rel, err := filepath.Rel(rep.Root, r.Path)
			if err != nil || strings.HasPrefix(rel, "..") {
				rel = r.Path
			}
			lo, hi := estimateTokens(r.Size)
			rows = append(rows, []string{fmtInt(r.Size), fmtInt(lo), fmtInt(hi), rel})
		}
		printTable(w, rows)
	}

	avg, spread := summarize(rep.TokLow, rep.TokHigh)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Tokens: %s (+/-%d%%)\n", fmtInt(avg), spread)
}
