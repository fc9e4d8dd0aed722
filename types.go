package main

// extNone is the extension sentinel for files without a suffix.
const extNone = "<none>"

// FileRecord holds the stats for a single file that survived filtering.
// Records are created once during filtering and never mutated.
type FileRecord struct {
	Path string // absolute path
	Size int64  // always > 0; zero-byte and unreadable files are filtered out
	Ext  string // lowercase, with leading dot, or extNone
}

// Options is the resolved set of run options. It is built once from the
// command-line flags and threaded read-only through the pipeline.
type Options struct {
	Root          string              // absolute root path
	ScanAll       bool                // force directory walk instead of git ls-files
	Exts          map[string]struct{} // extension allow-list; empty means no filtering
	IncludeHidden bool
	Excludes      []string // glob-or-substring exclusion patterns
	BinaryPolicy  string   // binarySkip or binaryInclude
	TopN          int
	NoIgnore      bool // don't respect .gitignore during the walk
}

// ExtGroup is the per-extension slice of the aggregate report.
type ExtGroup struct {
	Ext     string
	Files   int
	Bytes   int64
	TokLow  int64
	TokHigh int64
}

// Report holds everything the renderer needs. Rebuilt from scratch each
// run; nothing persists across invocations.
type Report struct {
	Root       string
	TotalFiles int
	TotalBytes int64
	TokLow     int64
	TokHigh    int64
	ByExt      []ExtGroup
	Top        []FileRecord
}
