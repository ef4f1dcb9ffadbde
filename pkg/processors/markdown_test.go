package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveBaseURLs(t *testing.T) {
	tests := []struct {
		name        string
		repository  string
		contentBase string
		imagesBase  string
		ok          bool
	}{
		{
			name:        "github",
			repository:  "https://github.com/username/repository",
			contentBase: "https://github.com/username/repository/blob/master",
			imagesBase:  "https://github.com/username/repository/raw/master",
			ok:          true,
		},
		{
			name:        "git suffix stripped",
			repository:  "https://github.com/username/repository.git",
			contentBase: "https://github.com/username/repository/blob/master",
			imagesBase:  "https://github.com/username/repository/raw/master",
			ok:          true,
		},
		{
			name:        "trailing slash",
			repository:  "https://gitlab.com/owner/repo/",
			contentBase: "https://gitlab.com/owner/repo/blob/master",
			imagesBase:  "https://gitlab.com/owner/repo/raw/master",
			ok:          true,
		},
		{
			name:       "not https",
			repository: "git@github.com:username/repository.git",
			ok:         false,
		},
		{
			name:       "too many segments",
			repository: "https://github.com/username/repository/tree/main",
			ok:         false,
		},
		{
			name:       "empty",
			repository: "",
			ok:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, images, ok := deriveBaseURLs(tt.repository)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.contentBase, content)
				assert.Equal(t, tt.imagesBase, images)
			}
		})
	}
}

func TestRewriteMarkdown(t *testing.T) {
	const contentBase = "https://github.com/u/r/blob/master"
	const imagesBase = "https://github.com/u/r/raw/master"

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "relative link",
			input:    "see [docs](docs/guide.md)",
			expected: "see [docs](https://github.com/u/r/blob/master/docs/guide.md)",
		},
		{
			name:     "relative image",
			input:    "![logo](images/logo.png)",
			expected: "![logo](https://github.com/u/r/raw/master/images/logo.png)",
		},
		{
			name:     "absolute link untouched",
			input:    "[site](https://example.com/page)",
			expected: "[site](https://example.com/page)",
		},
		{
			name:     "anchor untouched",
			input:    "[usage](#usage)",
			expected: "[usage](#usage)",
		},
		{
			name:     "dot-relative path resolved",
			input:    "![shot](./images/shot.png)",
			expected: "![shot](https://github.com/u/r/raw/master/images/shot.png)",
		},
		{
			name:     "mixed content",
			input:    "![a](a.png) and [b](b.md) and [c](http://c.io)",
			expected: "![a](https://github.com/u/r/raw/master/a.png) and [b](https://github.com/u/r/blob/master/b.md) and [c](http://c.io)",
		},
		{
			name:     "no links",
			input:    "plain text only",
			expected: "plain text only",
		},
		{
			name:     "linked badge image",
			input:    "[![build](badge.png)](docs/status.md)",
			expected: "[![build](https://github.com/u/r/raw/master/badge.png)](https://github.com/u/r/blob/master/docs/status.md)",
		},
		{
			name:     "linked badge with absolute target",
			input:    "[![build](badge.png)](https://ci.example.com/job)",
			expected: "[![build](https://github.com/u/r/raw/master/badge.png)](https://ci.example.com/job)",
		},
		{
			name:     "badge row",
			input:    "[![a](a.svg)](a.md) [![b](https://img.example.com/b.svg)](b.md)",
			expected: "[![a](https://github.com/u/r/raw/master/a.svg)](https://github.com/u/r/blob/master/a.md) [![b](https://img.example.com/b.svg)](https://github.com/u/r/blob/master/b.md)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rewriteMarkdown(tt.input, contentBase, imagesBase))
		})
	}
}

func TestRewriteMarkdownIsPure(t *testing.T) {
	input := "![a](a.png) [b](b.md)"
	first := rewriteMarkdown(input, "https://h/o/r/blob/master", "https://h/o/r/raw/master")
	second := rewriteMarkdown(input, "https://h/o/r/blob/master", "https://h/o/r/raw/master")
	assert.Equal(t, first, second)

	// Already-absolute output is a fixed point for the same bases
	third := rewriteMarkdown(first, "https://h/o/r/blob/master", "https://h/o/r/raw/master")
	assert.Equal(t, first, third)
}

func TestRewriteMarkdownEmptyBases(t *testing.T) {
	input := "![a](a.png) [b](b.md)"
	assert.Equal(t, input, rewriteMarkdown(input, "", ""))
}
