package processors

import (
	"github.com/extpack/extpack/pkg/logging"
	"github.com/extpack/extpack/pkg/types"
)

// IconProcessor watches for the file referenced by the manifest's icon
// field and contributes the default-icon asset and property. Like the
// license processor, a declared icon that matches no file is tolerated.
type IconProcessor struct {
	base
	expected string
	found    bool
}

// NewIconProcessor creates an icon processor for the given manifest
func NewIconProcessor(m *types.Manifest) *IconProcessor {
	return &IconProcessor{
		base:     newBase("icon"),
		expected: types.NormalizePath(m.Icon),
	}
}

// OnFile contributes the icon asset and property when the declared file
// appears in the stream
func (p *IconProcessor) OnFile(file types.File) (types.File, error) {
	if p.expected == "" || p.found {
		return file, nil
	}
	if !pathEndsWith(file.Path(), p.expected) {
		return file, nil
	}

	logger := logging.GetLogger("processors.icon")
	logger.Debug().Str("path", file.Path()).Msg("icon file matched")

	p.found = true
	p.addAsset(types.AssetIcon, file.Path())
	p.addProperty(types.PropertyIcon, file.Path())
	return file, nil
}
