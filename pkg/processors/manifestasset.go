package processors

import (
	"github.com/extpack/extpack/pkg/manifest"
	"github.com/extpack/extpack/pkg/types"
)

// ManifestAssetProcessor declares the manifest itself as a package
// asset. It never rewrites file content.
type ManifestAssetProcessor struct {
	base
}

// NewManifestAssetProcessor creates the manifest-asset processor
func NewManifestAssetProcessor() *ManifestAssetProcessor {
	p := &ManifestAssetProcessor{base: newBase("manifest-asset")}
	p.addAsset(types.AssetManifest, manifest.LogicalPath)
	return p
}
