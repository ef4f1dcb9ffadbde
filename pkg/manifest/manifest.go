// Package manifest reads and validates the extension's package.json.
package manifest

import (
	"encoding/json"
	"os"

	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/logging"
	"github.com/extpack/extpack/pkg/types"
)

const (
	// FileName is the manifest's name inside the extension directory
	FileName = "package.json"

	// LogicalPath is the manifest's logical path inside the package
	LogicalPath = "extension/package.json"
)

// Read loads and parses a package.json manifest from path. The result
// is not validated; call Validate separately.
func Read(path string) (*types.Manifest, error) {
	logger := logging.GetLogger("manifest")
	logger.Trace().Str("path", path).Msg("Reading manifest")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "manifest not found").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrManifestRead, "cannot read manifest").
			WithDetail("path", path)
	}

	var m types.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "manifest is not valid JSON").
			WithDetail("path", path)
	}

	logger.Debug().
		Str("name", m.Name).
		Str("publisher", m.Publisher).
		Str("version", m.Version).
		Msg("Manifest loaded")

	return &m, nil
}
