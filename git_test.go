package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGitURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://github.com/golang/go.git", true},
		{"git@github.com:golang/go.git", true},
		{"git@example.com:repo", true},
		{"https://example.com/page", false},
		{"./local/dir", false},
		{"repo.git", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isGitURL(tt.input), "input %q", tt.input)
	}
}
