package manifest

import (
	"regexp"

	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/types"
)

var (
	// Names and publishers are alphanumeric with interior hyphens.
	// No leading/trailing hyphen, no whitespace, no dots.
	namePattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)

	// Three dot-separated numeric components with an optional
	// -prefixed pre-release suffix.
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[\w.-]+)?$`)
)

// ValidatePublisher checks the publisher identifier's format
func ValidatePublisher(publisher string) error {
	if publisher == "" {
		return errors.New(errors.ErrManifestInvalid, "manifest is missing the 'publisher' field")
	}
	if !namePattern.MatchString(publisher) {
		return errors.Newf(errors.ErrManifestInvalid, "invalid publisher %q", publisher).
			WithDetail("field", "publisher")
	}
	return nil
}

// ValidateExtensionName checks the extension name's format
func ValidateExtensionName(name string) error {
	if name == "" {
		return errors.New(errors.ErrManifestInvalid, "manifest is missing the 'name' field")
	}
	if !namePattern.MatchString(name) {
		return errors.Newf(errors.ErrManifestInvalid, "invalid extension name %q", name).
			WithDetail("field", "name")
	}
	return nil
}

// ValidateVersion checks the version string's format
func ValidateVersion(version string) error {
	if version == "" {
		return errors.New(errors.ErrManifestInvalid, "manifest is missing the 'version' field")
	}
	if !versionPattern.MatchString(version) {
		return errors.Newf(errors.ErrManifestInvalid, "invalid version %q", version).
			WithDetail("field", "version")
	}
	return nil
}

// Validate checks the manifest's required identity fields: publisher,
// name and version formats plus the engines.vscode declaration.
func Validate(m *types.Manifest) error {
	if err := ValidatePublisher(m.Publisher); err != nil {
		return err
	}
	if err := ValidateExtensionName(m.Name); err != nil {
		return err
	}
	if err := ValidateVersion(m.Version); err != nil {
		return err
	}
	if m.Engines.VSCode == nil {
		return errors.New(errors.ErrManifestInvalid, "manifest is missing the 'engines.vscode' field").
			WithDetail("field", "engines.vscode")
	}
	return nil
}
