package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// pickRootDirectory runs a fuzzy finder over the directories under the
// current working directory and returns the chosen one as the scan root.
// Returns "" with a nil error when the user aborts the picker.
func pickRootDirectory() (string, error) {
	candidates := []string{"."}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries just don't show up
		}
		if path == "." || !d.IsDir() {
			return nil
		}
		name := d.Name()
		if !includeHidden && len(name) > 0 && name[0] == '.' {
			return fs.SkipDir
		}
		if _, prune := pruneDirs[name]; prune {
			return fs.SkipDir
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error scanning for directories: %w", err)
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the directory to estimate. Enter to confirm, Esc to abort."
			}
			path := candidates[i]
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return fmt.Sprintf("Path: %s\nError reading directory: %v", path, readErr)
			}
			return fmt.Sprintf("Path: %s\nEntries: %d", path, len(entries))
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort { // Esc or Ctrl+C
			fmt.Fprintln(os.Stderr, "Interactive selection aborted.")
			return "", nil
		}
		return "", fmt.Errorf("fuzzy finder error: %w", err)
	}

	return candidates[idx], nil
}
