package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmtInt(t *testing.T) {
	assert.Equal(t, "0", fmtInt(0))
	assert.Equal(t, "400", fmtInt(400))
	assert.Equal(t, "1,234", fmtInt(1234))
	assert.Equal(t, "1,234,567", fmtInt(1234567))
}

func TestPrintTableAlignment(t *testing.T) {
	var sb strings.Builder
	printTable(&sb, [][]string{
		{"ext", "files", "bytes"},
		{".go", "2", "1,234"},
		{"<none>", "10", "56"},
	})

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	// First column left-aligned, the rest right-aligned, dash rule under
	// the header, two spaces between columns.
	assert.Equal(t, "ext     files  bytes", lines[0])
	assert.Equal(t, "------  -----  -----", lines[1])
	assert.Equal(t, ".go         2  1,234", lines[2])
	assert.Equal(t, "<none>     10     56", lines[3])
}

func TestPrintTableEmpty(t *testing.T) {
	var sb strings.Builder
	printTable(&sb, nil)
	assert.Empty(t, sb.String())
}

func TestRenderReport(t *testing.T) {
	rep := Report{
		Root:       "/repo",
		TotalFiles: 2,
		TotalBytes: 700,
		TokLow:     175,
		TokHigh:    233,
		ByExt: []ExtGroup{
			{Ext: ".go", Files: 1, Bytes: 400, TokLow: 100, TokHigh: 133},
			{Ext: ".md", Files: 1, Bytes: 300, TokLow: 75, TokHigh: 100},
		},
		Top: []FileRecord{
			{Path: "/repo/main.go", Size: 400, Ext: ".go"},
			{Path: "/repo/README.md", Size: 300, Ext: ".md"},
		},
	}

	var sb strings.Builder
	renderReport(&sb, rep)
	out := sb.String()

	assert.Contains(t, out, "Root: /repo\n")
	assert.Contains(t, out, "Files counted: 2\n")
	assert.Contains(t, out, "Bytes counted: 700\n")
	assert.Contains(t, out, "By extension:\n")
	assert.Contains(t, out, "Top 2 largest files:\n")
	// Paths are rendered relative to the root.
	assert.Contains(t, out, "main.go")
	assert.NotContains(t, out, "/repo/main.go")
	// avg = (175+233)/2 = 204, spread = round(29/204*100) = 14
	assert.Contains(t, out, "Tokens: 204 (+/-14%)\n")
}

func TestRenderReportEmpty(t *testing.T) {
	var sb strings.Builder
	renderReport(&sb, Report{Root: "/empty"})
	out := sb.String()

	assert.Contains(t, out, "Files counted: 0\n")
	assert.Contains(t, out, "Bytes counted: 0\n")
	// The extension table still prints its header; the top-files section
	// is omitted entirely.
	assert.Contains(t, out, "ext  files  bytes  tok_low  tok_high\n")
	assert.NotContains(t, out, "largest files")
	assert.Contains(t, out, "Tokens: 0 (+/-0%)\n")
}
