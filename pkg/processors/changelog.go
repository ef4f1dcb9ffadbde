package processors

import (
	"strings"

	"github.com/extpack/extpack/pkg/types"
)

const changelogPath = "extension/changelog.md"

// ChangelogProcessor mirrors the readme processor for the extension's
// changelog, contributing the changelog asset type.
type ChangelogProcessor struct {
	base
	contentBase string
	imagesBase  string
}

// NewChangelogProcessor creates a changelog processor
func NewChangelogProcessor(m *types.Manifest, opts Options) *ChangelogProcessor {
	contentBase, imagesBase := resolveBases(m, opts)
	return &ChangelogProcessor{
		base:        newBase("changelog"),
		contentBase: contentBase,
		imagesBase:  imagesBase,
	}
}

// OnFile rewrites the changelog's markdown and returns the replacement
func (p *ChangelogProcessor) OnFile(file types.File) (types.File, error) {
	if !strings.EqualFold(file.Path(), changelogPath) {
		return file, nil
	}

	p.addAsset(types.AssetChangelog, file.Path())
	return rewriteFile(p.Name(), file, p.contentBase, p.imagesBase)
}
