package processors

import (
	"testing"

	"github.com/extpack/extpack/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStream(t *testing.T, p types.Processor, files ...types.File) []types.File {
	t.Helper()
	out := make([]types.File, 0, len(files))
	for _, f := range files {
		result, err := p.OnFile(f)
		require.NoError(t, err)
		out = append(out, result)
	}
	require.NoError(t, p.OnEnd())
	return out
}

func TestLicenseProcessorMatch(t *testing.T) {
	m := &types.Manifest{License: "SEE LICENSE IN thelicense.md"}
	p := NewLicenseProcessor(m)

	runStream(t, p,
		types.NewMemoryFile("extension/main.js", nil),
		types.NewMemoryFile("extension/thelicense.md", []byte("MIT-ish")),
	)

	require.Len(t, p.Assets(), 1)
	assert.Equal(t, types.AssetLicense, p.Assets()[0].Type)
	assert.Equal(t, "extension/thelicense.md", p.Assets()[0].Path)

	require.Len(t, p.Properties(), 1)
	assert.Equal(t, types.PropertyLicense, p.Properties()[0].ID)
	assert.Equal(t, "extension/thelicense.md", p.Properties()[0].Value)
}

func TestLicenseProcessorCaseInsensitiveExpression(t *testing.T) {
	m := &types.Manifest{License: "see license in LICENSE.txt"}
	p := NewLicenseProcessor(m)

	runStream(t, p, types.NewMemoryFile("extension/LICENSE.txt", nil))
	assert.Len(t, p.Assets(), 1)
}

func TestLicenseProcessorNoMatchTolerated(t *testing.T) {
	m := &types.Manifest{License: "SEE LICENSE IN missing.md"}
	p := NewLicenseProcessor(m)

	runStream(t, p, types.NewMemoryFile("extension/main.js", nil))

	assert.Empty(t, p.Assets())
	assert.Empty(t, p.Properties())
}

func TestLicenseProcessorPlainExpressionIgnored(t *testing.T) {
	m := &types.Manifest{License: "MIT"}
	p := NewLicenseProcessor(m)

	runStream(t, p, types.NewMemoryFile("extension/LICENSE", nil))

	assert.Empty(t, p.Assets())
	assert.Empty(t, p.Properties())
}

func TestLicenseProcessorFirstMatchWins(t *testing.T) {
	m := &types.Manifest{License: "SEE LICENSE IN license.md"}
	p := NewLicenseProcessor(m)

	runStream(t, p,
		types.NewMemoryFile("extension/license.md", nil),
		types.NewMemoryFile("extension/vendor/license.md", nil),
	)

	require.Len(t, p.Assets(), 1)
	assert.Equal(t, "extension/license.md", p.Assets()[0].Path)
}

func TestIconProcessorMatch(t *testing.T) {
	m := &types.Manifest{Icon: "images/icon.png"}
	p := NewIconProcessor(m)

	runStream(t, p,
		types.NewMemoryFile("extension/main.js", nil),
		types.NewMemoryFile("extension/images/icon.png", nil),
	)

	require.Len(t, p.Assets(), 1)
	assert.Equal(t, types.AssetIcon, p.Assets()[0].Type)
	assert.Equal(t, "extension/images/icon.png", p.Assets()[0].Path)

	require.Len(t, p.Properties(), 1)
	assert.Equal(t, types.PropertyIcon, p.Properties()[0].ID)
	assert.Equal(t, "extension/images/icon.png", p.Properties()[0].Value)
}

func TestIconProcessorAbsenceTolerated(t *testing.T) {
	m := &types.Manifest{Icon: "images/icon.png"}
	p := NewIconProcessor(m)

	runStream(t, p, types.NewMemoryFile("extension/main.js", nil))

	assert.Empty(t, p.Assets())
	assert.Empty(t, p.Properties())
}

func TestIconProcessorNoIconDeclared(t *testing.T) {
	p := NewIconProcessor(&types.Manifest{})

	runStream(t, p, types.NewMemoryFile("extension/images/icon.png", nil))

	assert.Empty(t, p.Assets())
}
