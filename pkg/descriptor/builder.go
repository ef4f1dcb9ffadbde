// Package descriptor assembles and serializes the package descriptor
// and the content-types declaration that accompany the packaged files.
package descriptor

import (
	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/logging"
	"github.com/extpack/extpack/pkg/types"
)

// InstallationTarget is the single well-known target identifier every
// package installs into.
const InstallationTarget = "Microsoft.VisualStudio.Code"

// GalleryFlags is the fixed flags block value
const GalleryFlags = "Public"

// Descriptor is the root document describing the package as a whole.
// It is built once per packaging run and never mutated afterwards.
type Descriptor struct {
	ID          string
	Publisher   string
	Version     string
	DisplayName string
	Description string
	Tags        []string

	Flags              string
	InstallationTarget string

	// Dependencies is presently always empty, a reserved extension point
	Dependencies []string

	Properties []types.Property
	Assets     []types.Asset
}

// Build merges the manifest's scalar fields with the assets and
// properties accumulated by the processors into the final descriptor.
// Assembly is deterministic and pure: asset and property lists are kept
// verbatim, order-preserving and without deduplication.
//
// Missing identity fields indicate a broken upstream contract; the
// manifest must have been validated before packaging began.
func Build(m *types.Manifest, assets []types.Asset, properties []types.Property) (*Descriptor, error) {
	if m.Name == "" || m.Publisher == "" || m.Version == "" {
		return nil, errors.New(errors.ErrInternal, "descriptor built from an unvalidated manifest").
			WithDetail("name", m.Name).
			WithDetail("publisher", m.Publisher).
			WithDetail("version", m.Version)
	}

	displayName := m.DisplayName
	if displayName == "" {
		displayName = m.Name
	}

	d := &Descriptor{
		ID:                 m.Name,
		Publisher:          m.Publisher,
		Version:            m.Version,
		DisplayName:        displayName,
		Description:        m.Description,
		Tags:               m.Keywords,
		Flags:              GalleryFlags,
		InstallationTarget: InstallationTarget,
		Dependencies:       nil,
		Properties:         properties,
		Assets:             assets,
	}

	logger := logging.GetLogger("descriptor")
	logger.Debug().
		Str("id", d.ID).
		Str("publisher", d.Publisher).
		Str("version", d.Version).
		Int("assets", len(d.Assets)).
		Int("properties", len(d.Properties)).
		Msg("Descriptor assembled")

	return d, nil
}
