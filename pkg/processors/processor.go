// Package processors contains the pluggable units of the packaging
// pipeline. Each processor may rewrite files as they stream through and
// accumulates asset declarations and descriptor properties that the
// descriptor builder merges once the stream completes.
package processors

import (
	"fmt"

	"github.com/extpack/extpack/pkg/types"
)

// phase tags the accumulation state of a processor: contributions are
// written during streaming and become readable only after finalize.
type phase int

const (
	streaming phase = iota
	finalized
)

// base carries the accumulation state shared by all processor variants
type base struct {
	name       string
	phase      phase
	assets     []types.Asset
	properties []types.Property
}

func newBase(name string) base {
	return base{name: name}
}

// Name returns the unique name of this processor
func (b *base) Name() string {
	return b.name
}

// OnFile passes the file through unchanged. Variants that rewrite
// content override this.
func (b *base) OnFile(file types.File) (types.File, error) {
	return file, nil
}

// OnEnd finalizes the processor. Variants overriding OnEnd must call
// finish before returning.
func (b *base) OnEnd() error {
	b.finish()
	return nil
}

// Assets returns the accumulated asset declarations
func (b *base) Assets() []types.Asset {
	b.mustBeFinalized("Assets")
	return b.assets
}

// Properties returns the accumulated descriptor properties
func (b *base) Properties() []types.Property {
	b.mustBeFinalized("Properties")
	return b.properties
}

func (b *base) addAsset(assetType types.AssetType, path string) {
	if b.phase == finalized {
		panic(fmt.Sprintf("processor %q: contribution after finalize", b.name))
	}
	b.assets = append(b.assets, types.Asset{Type: assetType, Path: path})
}

func (b *base) addProperty(id types.PropertyID, value string) {
	if b.phase == finalized {
		panic(fmt.Sprintf("processor %q: contribution after finalize", b.name))
	}
	b.properties = append(b.properties, types.Property{ID: id, Value: value})
}

func (b *base) finish() {
	b.phase = finalized
}

func (b *base) mustBeFinalized(method string) {
	if b.phase != finalized {
		panic(fmt.Sprintf("processor %q: %s read before the stream completed", b.name, method))
	}
}

// Options carries the per-run settings processors are constructed with
type Options struct {
	// BaseContentURL and BaseImagesURL are the explicit bases used to
	// rewrite relative README/CHANGELOG links. When both are empty the
	// readme and changelog processors try to derive them from the
	// manifest's repository URL.
	BaseContentURL string
	BaseImagesURL  string
}

// Default returns the standard processor set for a packaging run, in
// the order their contributions appear in the descriptor.
func Default(m *types.Manifest, opts Options) []types.Processor {
	return []types.Processor{
		NewManifestAssetProcessor(),
		NewReadmeProcessor(m, opts),
		NewChangelogProcessor(m, opts),
		NewLicenseProcessor(m),
		NewIconProcessor(m),
		NewLinksProcessor(m),
		NewBrandingProcessor(m),
		NewCategoriesProcessor(m),
	}
}
