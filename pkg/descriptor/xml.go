package descriptor

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/types"
)

const (
	vsxNamespace       = "http://schemas.microsoft.com/developer/vsx-schema/2011"
	vsxDesignNamespace = "http://schemas.microsoft.com/developer/vsx-schema-design/2011"
	typesNamespace     = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Serialize renders the descriptor as the extension.vsixmanifest XML
// document. Output is deterministic for a fixed descriptor.
func Serialize(d *Descriptor) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("PackageManifest")
	root.CreateAttr("Version", "2.0.0")
	root.CreateAttr("xmlns", vsxNamespace)
	root.CreateAttr("xmlns:d", vsxDesignNamespace)

	metadata := root.CreateElement("Metadata")

	identity := metadata.CreateElement("Identity")
	identity.CreateAttr("Language", "en-US")
	identity.CreateAttr("Id", d.ID)
	identity.CreateAttr("Version", d.Version)
	identity.CreateAttr("Publisher", d.Publisher)

	metadata.CreateElement("DisplayName").SetText(d.DisplayName)

	if d.Description != "" {
		description := metadata.CreateElement("Description")
		description.CreateAttr("xml:space", "preserve")
		description.SetText(d.Description)
	}

	if len(d.Tags) > 0 {
		metadata.CreateElement("Tags").SetText(strings.Join(d.Tags, ","))
	}

	// License, icon and category properties render as dedicated
	// metadata elements; everything else lands in the Properties block.
	var plain []types.Property
	for _, property := range d.Properties {
		switch property.ID {
		case types.PropertyCategory:
			metadata.CreateElement("Categories").SetText(property.Value)
		case types.PropertyLicense:
			metadata.CreateElement("License").SetText(property.Value)
		case types.PropertyIcon:
			metadata.CreateElement("Icon").SetText(property.Value)
		default:
			plain = append(plain, property)
		}
	}

	metadata.CreateElement("GalleryFlags").SetText(d.Flags)

	properties := metadata.CreateElement("Properties")
	for _, property := range plain {
		element := properties.CreateElement("Property")
		element.CreateAttr("Id", string(property.ID))
		element.CreateAttr("Value", property.Value)
	}

	installation := root.CreateElement("Installation")
	target := installation.CreateElement("InstallationTarget")
	target.CreateAttr("Id", d.InstallationTarget)

	dependencies := root.CreateElement("Dependencies")
	for _, dependency := range d.Dependencies {
		dependencies.CreateElement("Dependency").SetText(dependency)
	}

	assets := root.CreateElement("Assets")
	for _, asset := range d.Assets {
		element := assets.CreateElement("Asset")
		element.CreateAttr("Type", string(asset.Type))
		element.CreateAttr("Path", asset.Path)
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot serialize package descriptor")
	}
	return data, nil
}

// SerializeContentTypes renders the content-type map as the
// [Content_Types].xml document.
func SerializeContentTypes(entries []ContentType) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("Types")
	root.CreateAttr("xmlns", typesNamespace)

	for _, entry := range entries {
		element := root.CreateElement("Default")
		element.CreateAttr("Extension", entry.Extension)
		element.CreateAttr("ContentType", entry.MimeType)
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot serialize content types")
	}
	return data, nil
}
