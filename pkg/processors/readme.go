package processors

import (
	"strings"

	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/files"
	"github.com/extpack/extpack/pkg/logging"
	"github.com/extpack/extpack/pkg/types"
)

const readmePath = "extension/readme.md"

// ReadmeProcessor detects the extension's README, rewrites its relative
// links and image sources to absolute URLs, and contributes the
// content-details asset. Non-README files pass through untouched.
type ReadmeProcessor struct {
	base
	contentBase string
	imagesBase  string
}

// NewReadmeProcessor creates a readme processor. Explicit base URLs in
// opts win; when both are absent the bases are derived from the
// manifest's repository URL if it matches a recognized provider.
func NewReadmeProcessor(m *types.Manifest, opts Options) *ReadmeProcessor {
	contentBase, imagesBase := resolveBases(m, opts)
	return &ReadmeProcessor{
		base:        newBase("readme"),
		contentBase: contentBase,
		imagesBase:  imagesBase,
	}
}

// OnFile rewrites the README's markdown and returns the replacement
func (p *ReadmeProcessor) OnFile(file types.File) (types.File, error) {
	if !strings.EqualFold(file.Path(), readmePath) {
		return file, nil
	}

	p.addAsset(types.AssetDetails, file.Path())
	return rewriteFile(p.Name(), file, p.contentBase, p.imagesBase)
}

// resolveBases applies the base-URL precedence shared by the readme and
// changelog processors
func resolveBases(m *types.Manifest, opts Options) (contentBase, imagesBase string) {
	if opts.BaseContentURL != "" || opts.BaseImagesURL != "" {
		return opts.BaseContentURL, opts.BaseImagesURL
	}
	if content, images, ok := deriveBaseURLs(m.RepositoryURL()); ok {
		return content, images
	}
	return "", ""
}

// rewriteFile reads a markdown file, rewrites its links, and returns
// the replacement record. With no bases the file is returned unchanged.
func rewriteFile(processor string, file types.File, contentBase, imagesBase string) (types.File, error) {
	if contentBase == "" && imagesBase == "" {
		return file, nil
	}

	content, err := files.ReadString(file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProcessing, "processor %q cannot read %s", processor, file.Path())
	}

	rewritten := rewriteMarkdown(content, contentBase, imagesBase)

	logger := logging.GetLogger("processors." + processor)
	logger.Debug().
		Str("path", file.Path()).
		Str("contentBase", contentBase).
		Str("imagesBase", imagesBase).
		Msg("rewrote markdown links")

	return types.NewMemoryFile(file.Path(), []byte(rewritten)), nil
}
