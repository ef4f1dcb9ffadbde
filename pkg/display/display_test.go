package display

import (
	"testing"

	"github.com/extpack/extpack/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range []string{"Header", "Success", "Error", "FilePath"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "missing style %q", name)
	}
}

func TestGetStyleUnknown(t *testing.T) {
	// Unknown names return a usable zero style
	style := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromDataInvalid(t *testing.T) {
	assert.Error(t, LoadStylesFromData([]byte("{not yaml")))
}

func TestRenderPackageSummary(t *testing.T) {
	out := RenderPackageSummary(PackageSummary{
		Extension:  "joaomoreno.uuid-1.2.3",
		OutputPath: "uuid-1.2.3.vsix",
		FileCount:  4,
		Assets: []types.Asset{
			{Type: types.AssetManifest, Path: "extension/package.json"},
		},
	})

	assert.Contains(t, out, "joaomoreno.uuid-1.2.3")
	assert.Contains(t, out, "uuid-1.2.3.vsix")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "extension/package.json")
}

func TestRenderFileList(t *testing.T) {
	out := RenderFileList([]types.File{
		types.NewMemoryFile("extension/a.txt", nil),
		types.NewMemoryFile("extension/b.txt", nil),
	})
	assert.Contains(t, out, "extension/a.txt")
	assert.Contains(t, out, "extension/b.txt")
}
