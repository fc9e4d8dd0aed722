package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
)

// pruneDirs are well-known junk directories that the full walk never
// descends into: VCS metadata, dependency caches, build output, editor state.
var pruneDirs = map[string]struct{}{
	".git": {}, ".hg": {}, ".svn": {},
	"node_modules": {}, ".venv": {}, "venv": {},
	"__pycache__": {}, ".pytest_cache": {}, ".mypy_cache": {},
	"dist": {}, "build": {}, "target": {}, ".gradle": {},
	".idea": {}, ".vscode": {},
}

// gitTrackedFiles returns the absolute paths of the files tracked in root,
// parsed from the NUL-delimited output of `git ls-files -z`.
func gitTrackedFiles(root string) ([]string, error) {
	cmd := exec.Command("git", "-C", root, "ls-files", "-z")
	out, err := cmd.Output() // git's own stderr is discarded
	if err != nil {
		return nil, fmt.Errorf("not a git repo (or git not found), use --all to scan directory")
	}

	var paths []string
	for _, p := range bytes.Split(out, []byte{0}) {
		if len(p) == 0 {
			continue
		}
		paths = append(paths, filepath.Join(root, string(p)))
	}
	return paths, nil
}

// walkAllFiles walks the tree under root and returns every file path that
// is not inside a pruned directory. No extension or hidden-path filtering
// happens here; that is the filter stage's job. A root-level .gitignore is
// honored unless noIgnore is set.
func walkAllFiles(root string, noIgnore bool, errw io.Writer) []string {
	var matcher gitignore.IgnoreMatcher
	if !noIgnore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			m, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(errw, "warning: could not parse %s: %v\n", gitIgnorePath, err)
			} else {
				matcher = m
			}
		}
	}

	var paths []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Best-effort estimate: unreadable entries are simply absent.
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if _, prune := pruneDirs[d.Name()]; prune {
				return fs.SkipDir
			}
			if matcher != nil && matcher.Match(rel, true) {
				return fs.SkipDir
			}
			return nil
		}

		if matcher != nil && matcher.Match(rel, false) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths
}
