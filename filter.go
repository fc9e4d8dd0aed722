package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Binary-handling policies for the --binary flag.
const (
	binarySkip    = "skip"
	binaryInclude = "include"
)

// binarySniffBytes is how much of a file the binary sniff reads.
const binarySniffBytes = 4096

// defaultExtensions is the stock allow-list of text-like, token-relevant
// suffixes, used when neither --ext nor --no-ext-filter is given.
var defaultExtensions = []string{
	// Python
	".py", ".pyi",
	// JS/TS
	".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs",
	// JVM
	".java", ".kt", ".kts", ".scala",
	// Go/Rust/C/C++
	".go", ".rs", ".c", ".cc", ".cpp", ".h", ".hpp",
	// Shell
	".sh", ".bash", ".zsh",
	// Data / configs (often token-expensive but commonly "relevant")
	".json", ".yaml", ".yml", ".toml", ".ini", ".cfg", ".conf",
	// Docs
	".md", ".rst", ".txt", ".adoc",
	// SQL
	".sql",
	// Misc
	".proto", ".graphql",
}

// skipFilenames are lockfiles: large, machine-generated, and a poor proxy
// for the source text a model would actually see. Always excluded.
var skipFilenames = map[string]struct{}{
	// JS/TS
	"package-lock.json":   {},
	"npm-shrinkwrap.json": {},
	"yarn.lock":           {},
	"pnpm-lock.yaml":      {},
	"pnpm-lock.yml":       {},
	"deno.lock":           {},
	"bun.lockb":           {},
	"bun.lock":            {},
	// Python
	"Pipfile.lock": {},
	"poetry.lock":  {},
	"uv.lock":      {},
	// Rust
	"Cargo.lock": {},
	// Ruby
	"Gemfile.lock": {},
	// PHP
	"composer.lock": {},
	// Go
	"go.sum":      {},
	"go.work.sum": {},
}

// isProbablyBinary sniffs for a NUL byte in the first 4096 bytes.
// Unreadable files count as binary. Intentionally crude and fast: text
// with embedded NULs is misclassified, and some binary formats slip
// through, but it needs no external tooling.
func isProbablyBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, binarySniffBytes)
	n, _ := io.ReadFull(f, buf)
	return bytes.IndexByte(buf[:n], 0) >= 0
}

// hasHiddenSegment reports whether any segment of the slash-form relative
// path begins with a dot.
func hasHiddenSegment(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if part == "." || part == ".." {
			continue
		}
		if len(part) > 0 && part[0] == '.' {
			return true
		}
	}
	return false
}

// matchesExclude checks a single pattern against the base name and the
// slash-form relative path: glob semantics when the pattern contains a
// wildcard metacharacter, plain substring otherwise.
func matchesExclude(pat, name, rel string) bool {
	if strings.ContainsAny(pat, "*?[]") {
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
		ok, _ := filepath.Match(pat, name)
		return ok
	}
	return strings.Contains(name, pat) || strings.Contains(rel, pat)
}

// excludedByPatterns rejects on the first matching pattern.
func excludedByPatterns(patterns []string, name, rel string) bool {
	for _, pat := range patterns {
		if matchesExclude(pat, name, rel) {
			return true
		}
	}
	return false
}

// filterFiles applies the filter chain to the candidate paths, cheapest
// checks first so that string tests short-circuit before any file I/O,
// and emits one FileRecord per survivor.
func filterFiles(paths []string, opts Options) []FileRecord {
	var records []FileRecord
	for _, p := range paths {
		rel, err := filepath.Rel(opts.Root, p)
		if err != nil {
			rel = p
		}
		rel = filepath.ToSlash(rel)
		name := filepath.Base(p)

		if !opts.IncludeHidden && hasHiddenSegment(rel) {
			continue
		}
		if _, skip := skipFilenames[name]; skip {
			continue
		}
		if excludedByPatterns(opts.Excludes, name, rel) {
			continue
		}

		ext := strings.ToLower(filepath.Ext(p))
		if len(opts.Exts) > 0 {
			if _, ok := opts.Exts[ext]; !ok {
				continue
			}
		}

		if opts.BinaryPolicy == binarySkip && isProbablyBinary(p) {
			continue
		}

		st, err := os.Stat(p)
		if err != nil || st.Size() <= 0 {
			continue
		}

		if ext == "" {
			ext = extNone
		}
		records = append(records, FileRecord{Path: p, Size: st.Size(), Ext: ext})
	}
	return records
}
