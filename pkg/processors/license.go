package processors

import (
	"regexp"
	"strings"

	"github.com/extpack/extpack/pkg/logging"
	"github.com/extpack/extpack/pkg/types"
)

// seeLicensePattern matches SPDX "SEE LICENSE IN <path>" expressions
var seeLicensePattern = regexp.MustCompile(`(?i)^SEE LICENSE IN (.+)$`)

// LicenseProcessor watches for the file referenced by a
// "SEE LICENSE IN <path>" license expression. On match it contributes a
// license asset and a license property. A declared path that matches no
// file is tolerated: license handling is file-driven, not assertive.
type LicenseProcessor struct {
	base
	expected string
	found    bool
}

// NewLicenseProcessor creates a license processor for the given manifest
func NewLicenseProcessor(m *types.Manifest) *LicenseProcessor {
	expected := ""
	if match := seeLicensePattern.FindStringSubmatch(strings.TrimSpace(m.License)); match != nil {
		expected = types.NormalizePath(strings.TrimSpace(match[1]))
	}

	return &LicenseProcessor{
		base:     newBase("license"),
		expected: expected,
	}
}

// OnFile contributes the license asset and property when the declared
// file appears in the stream. Content is never rewritten.
func (p *LicenseProcessor) OnFile(file types.File) (types.File, error) {
	if p.expected == "" || p.found {
		return file, nil
	}
	if !pathEndsWith(file.Path(), p.expected) {
		return file, nil
	}

	logger := logging.GetLogger("processors.license")
	logger.Debug().Str("path", file.Path()).Msg("license file matched")

	p.found = true
	p.addAsset(types.AssetLicense, file.Path())
	p.addProperty(types.PropertyLicense, file.Path())
	return file, nil
}

// pathEndsWith reports whether path equals rel or ends with a
// "/"-separated rel suffix.
func pathEndsWith(path, rel string) bool {
	return path == rel || strings.HasSuffix(path, "/"+rel)
}
