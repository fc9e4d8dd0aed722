package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL checks if the input string looks like a Git repository URL.
// Only the unambiguous forms count: a .git suffix or the git@ SSH prefix.
// Plain https:// is not treated as a repo URL.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") ||
		strings.HasPrefix(input, "git@")
}

// cloneGitRepo clones a Git repository URL into a temporary directory and
// returns its path. The caller is responsible for removing the directory.
func cloneGitRepo(url string) (string, error) {
	tempDir, err := os.MkdirTemp("", "tokencount-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Cloning %s into %s...\n", url, tempDir)

	// Shallow single-branch clone: only the working tree matters for a
	// byte count, not the history.
	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Progress:      os.Stderr, // keep stdout clean for the report
		Depth:         1,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository %s: %w", url, err)
	}

	return tempDir, nil
}
