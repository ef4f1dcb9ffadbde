package descriptor

import (
	"testing"

	"github.com/extpack/extpack/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	d := &Descriptor{
		ID:                 "uuid",
		Publisher:          "joaomoreno",
		Version:            "1.2.3",
		DisplayName:        "UUID Tools",
		Description:        "Generates UUIDs",
		Flags:              GalleryFlags,
		InstallationTarget: InstallationTarget,
		Properties: []types.Property{
			{ID: types.PropertyLinkSource, Value: "https://github.com/u/r"},
			{ID: types.PropertyCategory, Value: "hello,world"},
			{ID: types.PropertyLicense, Value: "extension/thelicense.md"},
			{ID: types.PropertyIcon, Value: "extension/images/icon.png"},
		},
		Assets: []types.Asset{
			{Type: types.AssetManifest, Path: "extension/package.json"},
			{Type: types.AssetLicense, Path: "extension/thelicense.md"},
		},
	}

	data, err := Serialize(d)
	require.NoError(t, err)
	xml := string(data)

	assert.Contains(t, xml, `<?xml version="1.0" encoding="utf-8"?>`)
	assert.Contains(t, xml, `<PackageManifest Version="2.0.0" xmlns="http://schemas.microsoft.com/developer/vsx-schema/2011" xmlns:d="http://schemas.microsoft.com/developer/vsx-schema-design/2011">`)
	assert.Contains(t, xml, `<Identity Language="en-US" Id="uuid" Version="1.2.3" Publisher="joaomoreno"/>`)
	assert.Contains(t, xml, `<DisplayName>UUID Tools</DisplayName>`)
	assert.Contains(t, xml, `<Description xml:space="preserve">Generates UUIDs</Description>`)
	assert.Contains(t, xml, `<Categories>hello,world</Categories>`)
	assert.Contains(t, xml, `<License>extension/thelicense.md</License>`)
	assert.Contains(t, xml, `<Icon>extension/images/icon.png</Icon>`)
	assert.Contains(t, xml, `<GalleryFlags>Public</GalleryFlags>`)
	assert.Contains(t, xml, `<Property Id="Microsoft.VisualStudio.Services.Links.Source" Value="https://github.com/u/r"/>`)
	assert.Contains(t, xml, `<InstallationTarget Id="Microsoft.VisualStudio.Code"/>`)
	assert.Contains(t, xml, `<Dependencies`)
	assert.Contains(t, xml, `<Asset Type="Microsoft.VisualStudio.Code.Manifest" Path="extension/package.json"/>`)
	assert.Contains(t, xml, `<Asset Type="Microsoft.VisualStudio.Services.Content.License" Path="extension/thelicense.md"/>`)

	// License and icon render as metadata elements, not Property entries
	assert.NotContains(t, xml, `Property Id="Microsoft.VisualStudio.Services.Content.License"`)
	assert.NotContains(t, xml, `Property Id="Microsoft.VisualStudio.Services.Icons.Default"`)
}

func TestSerializeDeterministic(t *testing.T) {
	d := &Descriptor{
		ID:                 "uuid",
		Publisher:          "joaomoreno",
		Version:            "1.2.3",
		DisplayName:        "uuid",
		Flags:              GalleryFlags,
		InstallationTarget: InstallationTarget,
		Assets: []types.Asset{
			{Type: types.AssetManifest, Path: "extension/package.json"},
		},
	}

	first, err := Serialize(d)
	require.NoError(t, err)
	second, err := Serialize(d)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSerializeContentTypes(t *testing.T) {
	entries := []ContentType{
		{Extension: ".vsixmanifest", MimeType: "text/xml"},
		{Extension: ".json", MimeType: "application/json"},
		{Extension: ".png", MimeType: "image/png"},
	}

	data, err := SerializeContentTypes(entries)
	require.NoError(t, err)
	xml := string(data)

	assert.Contains(t, xml, `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	assert.Contains(t, xml, `<Default Extension=".vsixmanifest" ContentType="text/xml"/>`)
	assert.Contains(t, xml, `<Default Extension=".json" ContentType="application/json"/>`)
	assert.Contains(t, xml, `<Default Extension=".png" ContentType="image/png"/>`)
}
